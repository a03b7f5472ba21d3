package nri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackageIdentifier(t *testing.T) {
	t.Run("package and path split", func(t *testing.T) {
		id, err := Parse("npkrs::mypkg/assets/icon.png")
		require.NoError(t, err)

		pkg, err := NewPackageIdentifier(id)
		require.NoError(t, err)

		assert.Equal(t, "mypkg", pkg.Package())
		assert.Equal(t, "assets/icon.png", pkg.Path())
		assert.True(t, pkg.Identifier().Equal(id))
	})

	t.Run("single segment has empty path", func(t *testing.T) {
		id, err := Parse("npkrs::mypkg")
		require.NoError(t, err)

		pkg, err := NewPackageIdentifier(id)
		require.NoError(t, err)

		assert.Equal(t, "mypkg", pkg.Package())
		assert.Equal(t, "", pkg.Path())
	})

	t.Run("leading slash yields empty package name", func(t *testing.T) {
		id, err := Parse("npkrs::/icon.png")
		require.NoError(t, err)

		pkg, err := NewPackageIdentifier(id)
		require.NoError(t, err)

		assert.Equal(t, "", pkg.Package())
		assert.Equal(t, "icon.png", pkg.Path())
	})

	t.Run("non-package scheme is rejected", func(t *testing.T) {
		id, err := Parse("nars::assets/icon.png")
		require.NoError(t, err)

		_, err = NewPackageIdentifier(id)
		assert.ErrorIs(t, err, ErrInvalidScheme)
	})
}
