// Package config loads the resolver configuration used by the nri CLI and
// by applications embedding the resolver, from an HCL file:
//
//	project_root = "/home/me/projects/demo"
//
//	thumbnails {
//	  directory = ".thumbnails"
//	  query_key = "thumbnail"
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/hashicorp-forge/nri/pkg/resolver"
)

// Config is the resolver configuration from HCL.
type Config struct {
	// ProjectRoot is the root used for project-relative identifiers when
	// no project path is passed per resolution.
	ProjectRoot string `hcl:"project_root,optional"`

	// Thumbnails configures the directory-convention thumbnail
	// transformer.
	Thumbnails *ThumbnailsConfig `hcl:"thumbnails,block"`
}

// ThumbnailsConfig configures thumbnail path computation.
type ThumbnailsConfig struct {
	// Directory is the thumbnail directory name kept beside originals.
	Directory string `hcl:"directory,optional"`

	// QueryKey is the identifier query key that requests a thumbnail.
	QueryKey string `hcl:"query_key,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{}
}

// LoadFile loads and validates configuration from an HCL file.
func LoadFile(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	var cfg Config
	if err := hclsimple.DecodeFile(filename, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks field-level rules and reports every violation at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := validation.Validate(c.ProjectRoot,
		validation.By(noIdentifierDelimiters)); err != nil {
		result = multierror.Append(result, fmt.Errorf("project_root: %w", err))
	}

	if c.Thumbnails != nil {
		if err := validation.ValidateStruct(c.Thumbnails,
			validation.Field(&c.Thumbnails.Directory, validation.By(singlePathSegment)),
			validation.Field(&c.Thumbnails.QueryKey, validation.By(noIdentifierDelimiters)),
		); err != nil {
			result = multierror.Append(result, fmt.Errorf("thumbnails: %w", err))
		}
	}

	return result.ErrorOrNil()
}

// Thumbnailer builds the configured thumbnail transformer.
func (c *Config) Thumbnailer() resolver.ThumbnailTransformer {
	t := resolver.DirTransformer{}
	if c.Thumbnails != nil {
		t.Dir = c.Thumbnails.Directory
		t.Key = c.Thumbnails.QueryKey
	}
	return t
}

// ProjectContext builds a project context reporting the configured root, or
// no project when project_root is unset.
func (c *Config) ProjectContext() resolver.ProjectContext {
	return resolver.StaticProjectContext{Root: c.ProjectRoot}
}

// Configured values end up inside identifier strings, so they must not
// collide with the grammar's delimiters.

func noIdentifierDelimiters(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if strings.Contains(s, "::") || strings.ContainsAny(s, "?&=") {
		return errors.New(`must not contain "::", "?", "&" or "="`)
	}
	return nil
}

func singlePathSegment(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if err := noIdentifierDelimiters(s); err != nil {
		return err
	}
	if strings.Contains(s, "/") {
		return errors.New("must be a single path segment")
	}
	return nil
}
