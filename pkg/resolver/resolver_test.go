package resolver

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/nri/pkg/nri"
)

func mustParse(t *testing.T, raw string) nri.Identifier {
	t.Helper()
	id, err := nri.Parse(raw)
	require.NoError(t, err)
	return id
}

func newMemFs(t *testing.T, paths ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, path := range paths {
		require.NoError(t, afero.WriteFile(fs, path, []byte("x"), 0o644))
	}
	return fs
}

func TestResolver_AppResource(t *testing.T) {
	r := New(Config{})

	t.Run("scale-free lookup without scale", func(t *testing.T) {
		ref, err := r.Resolve(mustParse(t, "nars::assets/a.png"), Hints{})
		require.NoError(t, err)

		assert.Equal(t, KindBundledAsset, ref.Kind)
		assert.Equal(t, "assets/a.png", ref.Path)
		assert.Equal(t, "", ref.Package)
		assert.Equal(t, 0.0, ref.Scale)
	})

	t.Run("hint scale selects exact variant", func(t *testing.T) {
		ref, err := r.Resolve(mustParse(t, "nars::assets/a.png"), Hints{Scale: 2.0})
		require.NoError(t, err)

		assert.Equal(t, 2.0, ref.Scale)
	})

	t.Run("query scale wins over hint", func(t *testing.T) {
		ref, err := r.Resolve(mustParse(t, "nars::assets/a.png?scale=3.0"), Hints{Scale: 2.0})
		require.NoError(t, err)

		assert.Equal(t, 3.0, ref.Scale)
	})

	t.Run("unparseable query scale falls back to hint", func(t *testing.T) {
		ref, err := r.Resolve(mustParse(t, "nars::assets/a.png?scale=big"), Hints{Scale: 2.0})
		require.NoError(t, err)

		assert.Equal(t, 2.0, ref.Scale)
	})
}

func TestResolver_PackageResource(t *testing.T) {
	r := New(Config{})

	t.Run("package-scoped asset", func(t *testing.T) {
		ref, err := r.Resolve(mustParse(t, "npkrs::mypkg/assets/icon.png?scale=2.0"), Hints{})
		require.NoError(t, err)

		assert.Equal(t, KindBundledAsset, ref.Kind)
		assert.Equal(t, "mypkg", ref.Package)
		assert.Equal(t, "assets/icon.png", ref.Path)
		assert.Equal(t, 2.0, ref.Scale)
	})

	t.Run("empty package segment fails", func(t *testing.T) {
		_, err := r.Resolve(mustParse(t, "npkrs::/icon.png"), Hints{})
		assert.ErrorIs(t, err, ErrPackageMalformed)
	})
}

func TestResolver_UserResource(t *testing.T) {
	t.Run("plain file with default scale", func(t *testing.T) {
		r := New(Config{})

		ref, err := r.Resolve(mustParse(t, "nurs::/home/me/img.png"), Hints{})
		require.NoError(t, err)

		assert.Equal(t, KindFile, ref.Kind)
		assert.Equal(t, "/home/me/img.png", ref.Path)
		assert.Equal(t, DefaultScale, ref.Scale)
	})

	t.Run("scale query applies", func(t *testing.T) {
		r := New(Config{})

		ref, err := r.Resolve(mustParse(t, "nurs::/home/me/img.png?scale=2.0"), Hints{})
		require.NoError(t, err)

		assert.Equal(t, 2.0, ref.Scale)
	})

	t.Run("thumbnail hint resolves to existing thumbnail", func(t *testing.T) {
		r := New(Config{
			Fs:         newMemFs(t, "/home/me/.thumbnails/img.png"),
			Thumbnails: DirTransformer{},
		})

		ref, err := r.Resolve(mustParse(t, "nurs::/home/me/img.png"),
			Hints{Thumbnail: &ThumbnailSpec{}})
		require.NoError(t, err)

		assert.Equal(t, "/home/me/.thumbnails/img.png", ref.Path)
	})

	t.Run("missing thumbnail falls back to original", func(t *testing.T) {
		r := New(Config{
			Fs:         afero.NewMemMapFs(),
			Thumbnails: DirTransformer{},
		})

		ref, err := r.Resolve(mustParse(t, "nurs::/home/me/img.png"),
			Hints{Thumbnail: &ThumbnailSpec{}})
		require.NoError(t, err)

		assert.Equal(t, "/home/me/img.png", ref.Path)
	})

	t.Run("thumbnail query wins over hint variant", func(t *testing.T) {
		r := New(Config{
			Fs:         newMemFs(t, "/home/me/.thumbnails/small/img.png"),
			Thumbnails: DirTransformer{},
		})

		ref, err := r.Resolve(mustParse(t, "nurs::/home/me/img.png?thumbnail=small"),
			Hints{Thumbnail: &ThumbnailSpec{Variant: "large"}})
		require.NoError(t, err)

		assert.Equal(t, "/home/me/.thumbnails/small/img.png", ref.Path)
	})

	t.Run("no transformer ignores thumbnail hint", func(t *testing.T) {
		r := New(Config{Fs: afero.NewMemMapFs()})

		ref, err := r.Resolve(mustParse(t, "nurs::/home/me/img.png"),
			Hints{Thumbnail: &ThumbnailSpec{}})
		require.NoError(t, err)

		assert.Equal(t, "/home/me/img.png", ref.Path)
	})
}

func TestResolver_NetworkResource(t *testing.T) {
	r := New(Config{})

	t.Run("location keeps its query tail", func(t *testing.T) {
		ref, err := r.Resolve(mustParse(t, "uri::example.com/a.png?scale=2.0"), Hints{})
		require.NoError(t, err)

		assert.Equal(t, KindRemote, ref.Kind)
		assert.Equal(t, "example.com/a.png?scale=2.0", ref.Path)
		assert.Equal(t, 2.0, ref.Scale)
	})

	t.Run("default scale", func(t *testing.T) {
		ref, err := r.Resolve(mustParse(t, "uri::example.com/a.png"), Hints{})
		require.NoError(t, err)

		assert.Equal(t, DefaultScale, ref.Scale)
	})
}

func TestResolver_ProjectResource(t *testing.T) {
	t.Run("explicit project path", func(t *testing.T) {
		r := New(Config{})

		ref, err := r.Resolve(mustParse(t, "nprs::img.png"), Hints{ProjectPath: "/proj"})
		require.NoError(t, err)

		assert.Equal(t, KindFile, ref.Kind)
		assert.Equal(t, "/proj/img.png", ref.Path)
		assert.Equal(t, DefaultScale, ref.Scale)
	})

	t.Run("falls back to project context", func(t *testing.T) {
		r := New(Config{Projects: StaticProjectContext{Root: "/ctx"}})

		ref, err := r.Resolve(mustParse(t, "nprs::sub/img.png"), Hints{})
		require.NoError(t, err)

		assert.Equal(t, "/ctx/sub/img.png", ref.Path)
	})

	t.Run("explicit path wins over context", func(t *testing.T) {
		r := New(Config{Projects: StaticProjectContext{Root: "/ctx"}})

		ref, err := r.Resolve(mustParse(t, "nprs::img.png"), Hints{ProjectPath: "/proj"})
		require.NoError(t, err)

		assert.Equal(t, "/proj/img.png", ref.Path)
	})

	t.Run("no project anywhere fails", func(t *testing.T) {
		r := New(Config{})

		_, err := r.Resolve(mustParse(t, "nprs::img.png"), Hints{})
		assert.ErrorIs(t, err, ErrMissingProjectContext)
	})

	t.Run("empty context also fails", func(t *testing.T) {
		r := New(Config{Projects: ProjectContextFunc(func() (string, bool) {
			return "", false
		})})

		_, err := r.Resolve(mustParse(t, "nprs::img.png"), Hints{})
		assert.ErrorIs(t, err, ErrMissingProjectContext)
	})

	t.Run("thumbnail of project file", func(t *testing.T) {
		r := New(Config{
			Fs:         newMemFs(t, "/proj/images/.thumbnails/img.png"),
			Thumbnails: DirTransformer{},
		})

		ref, err := r.Resolve(mustParse(t, "nprs::images/img.png"),
			Hints{ProjectPath: "/proj", Thumbnail: &ThumbnailSpec{}})
		require.NoError(t, err)

		assert.Equal(t, "/proj/images/.thumbnails/img.png", ref.Path)
	})

	t.Run("missing project thumbnail falls back to full path", func(t *testing.T) {
		r := New(Config{
			Fs:         afero.NewMemMapFs(),
			Thumbnails: DirTransformer{},
		})

		ref, err := r.Resolve(mustParse(t, "nprs::images/img.png"),
			Hints{ProjectPath: "/proj", Thumbnail: &ThumbnailSpec{}})
		require.NoError(t, err)

		assert.Equal(t, "/proj/images/img.png", ref.Path)
	})
}

func TestResolver_Deterministic(t *testing.T) {
	// The same identifier and hints always select the same branch and
	// produce the same reference.
	r := New(Config{Projects: StaticProjectContext{Root: "/ctx"}})
	id := mustParse(t, "nprs::img.png?scale=2.0")

	first, err := r.Resolve(id, Hints{})
	require.NoError(t, err)
	second, err := r.Resolve(id, Hints{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
