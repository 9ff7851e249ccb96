package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	require.NotNil(t, cfg.GalleryConfig)
	assert.Equal(t, "./data", cfg.GalleryConfig.InputDir)
	assert.Equal(t, "*.md", cfg.GalleryConfig.Pattern)
	assert.Equal(t, "prompts.json", cfg.GalleryConfig.Output)
	assert.Equal(t, DefaultImageBaseURL, cfg.GalleryConfig.ImageBaseURL)
	assert.Equal(t, 3, cfg.GalleryConfig.MaxCategories)
	assert.Equal(t, "", cfg.DuckDBConfig.DSN())
	assert.Empty(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, NewDefaultGlobalConfig(), cfg)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("yaml overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
gallery:
  inputDir: ./docs
  output: gallery.json
  maxCategories: 2
log:
  level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "./docs", cfg.GalleryConfig.InputDir)
		assert.Equal(t, "gallery.json", cfg.GalleryConfig.Output)
		assert.Equal(t, 2, cfg.GalleryConfig.MaxCategories)
		assert.Equal(t, "*.md", cfg.GalleryConfig.Pattern, "unset keys keep their defaults")
		assert.Equal(t, "debug", cfg.LogConfig.Level)
		assert.Equal(t, "console", cfg.LogConfig.Format)
	})

	t.Run("yml and json extensions", func(t *testing.T) {
		files := map[string]string{
			"config.yml":  "gallery:\n  output: gallery.json\n  maxCategories: 2\n",
			"config.json": `{"gallery": {"output": "gallery.json", "maxCategories": 2}}`,
		}
		for name, content := range files {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			cfg, err := Load(path)
			require.NoError(t, err, name)
			assert.Equal(t, "gallery.json", cfg.GalleryConfig.Output, name)
			assert.Equal(t, 2, cfg.GalleryConfig.MaxCategories, name)
			assert.Equal(t, "*.md", cfg.GalleryConfig.Pattern, name)
		}
	})

	t.Run("env overrides without a file", func(t *testing.T) {
		t.Setenv("PROMPT_GALLERY_GALLERY_OUTPUT", "gallery.json")
		t.Setenv("PROMPT_GALLERY_GALLERY_MAXCATEGORIES", "2")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "gallery.json", cfg.GalleryConfig.Output)
		assert.Equal(t, 2, cfg.GalleryConfig.MaxCategories)
		assert.Equal(t, "./data", cfg.GalleryConfig.InputDir)
	})

	t.Run("env overrides keys missing from the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("gallery:\n  inputDir: ./docs\n"), 0o644))
		t.Setenv("PROMPT_GALLERY_LOG_LEVEL", "warn")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "./docs", cfg.GalleryConfig.InputDir)
		assert.Equal(t, "warn", cfg.LogConfig.Level)
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("gallery: [unclosed"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestGalleryConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GalleryConfig)
		wantErr int
	}{
		{name: "defaults", mutate: func(*GalleryConfig) {}, wantErr: 0},
		{name: "empty input dir", mutate: func(g *GalleryConfig) { g.InputDir = "" }, wantErr: 1},
		{name: "bad pattern", mutate: func(g *GalleryConfig) { g.Pattern = "[" }, wantErr: 1},
		{name: "output with path", mutate: func(g *GalleryConfig) { g.Output = "out/prompts.json" }, wantErr: 1},
		{name: "relative image base", mutate: func(g *GalleryConfig) { g.ImageBaseURL = "images/" }, wantErr: 1},
		{name: "empty image base allowed", mutate: func(g *GalleryConfig) { g.ImageBaseURL = "" }, wantErr: 0},
		{name: "zero cap", mutate: func(g *GalleryConfig) { g.MaxCategories = 0 }, wantErr: 1},
		{name: "cap above limit", mutate: func(g *GalleryConfig) { g.MaxCategories = 4 }, wantErr: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGalleryConfig()
			tt.mutate(cfg)
			assert.Len(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestGalleryConfig_OutputPath(t *testing.T) {
	cfg := NewDefaultGalleryConfig()
	assert.Equal(t, filepath.Join("data", "prompts.json"), cfg.OutputPath(""))
	assert.Equal(t, filepath.Join("docs", "prompts.json"), cfg.OutputPath("docs"))
}

func TestLogConfig_Validate(t *testing.T) {
	assert.Empty(t, NewDefaultLogConfig().Validate())
	assert.Len(t, (&LogConfig{Level: "loud", Format: "xml"}).Validate(), 2)
}

func TestDuckDBConfig_Validate(t *testing.T) {
	assert.Empty(t, NewDefaultDuckDBConfig().Validate())

	path := filepath.Join(t.TempDir(), "nested", "stats.duckdb")
	cfg := &DuckDBConfig{DBPath: path}
	assert.Empty(t, cfg.Validate())
	assert.DirExists(t, filepath.Dir(path))
}
