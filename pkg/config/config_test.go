package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/cloud"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/tokenize"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Cloud.DefaultCount)
	assert.Equal(t, tokenize.DefaultAlphabet, cfg.Cloud.Separators)
	assert.Equal(t, cloud.MinFont, cfg.Render.MinFont)
	assert.Equal(t, cloud.MaxFont, cfg.Render.MaxFont)
	assert.Equal(t, cloud.DefaultStylesheet, cfg.Render.Stylesheet)
	assert.False(t, cfg.Render.EscapeWords)
}

func TestValidateRejectsBadFontRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.MinFont = 20
	cfg.Render.MaxFont = 10
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Render.MinFont = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptySeparators(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cloud.Separators = ""
	assert.Error(t, cfg.Validate())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Cloud.DefaultCount = 25
	cfg.Render.MaxFont = 72
	cfg.Render.EscapeWords = true
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 25, loaded.Cloud.DefaultCount)
	assert.Equal(t, 72, loaded.Render.MaxFont)
	assert.True(t, loaded.Render.EscapeWords)
	assert.Equal(t, tokenize.DefaultAlphabet, loaded.Cloud.Separators)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[render]\nmin_font = \"big\"\nmax_font = 30\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	// the unparsable key keeps its default, the valid one is applied
	assert.Equal(t, cloud.MinFont, cfg.Render.MinFont)
	assert.Equal(t, 30, cfg.Render.MaxFont)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg, err := InitConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.FileExists(t, path)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("TAGCLOUD_MAX_FONT", "72")
	t.Setenv("TAGCLOUD_ESCAPE_WORDS", "true")
	t.Setenv("TAGCLOUD_MAX_COUNT", "500")
	t.Setenv("TAGCLOUD_MIN_FONT", "not-a-number")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	assert.Equal(t, 72, cfg.Render.MaxFont)
	assert.True(t, cfg.Render.EscapeWords)
	assert.Equal(t, 500, cfg.Server.MaxCount)
	assert.Equal(t, cloud.MinFont, cfg.Render.MinFont)
}

func TestGeneratorOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.Stylesheet = "local/cloud.css"
	cfg.Render.MinFont = 8
	cfg.Render.MaxFont = 16

	g := cloud.NewGenerator(cfg.GeneratorOptions()...)
	got, err := g.Generate("a a b", "doc.txt", 2)
	require.NoError(t, err)
	assert.Contains(t, got, `href="local/cloud.css"`)
	assert.Contains(t, got, `class="f16" title="count: 2">a<`)
	assert.Contains(t, got, `class="f8" title="count: 1">b<`)
}

func TestUpdatePersistsServerLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	require.NoError(t, SaveConfig(cfg, path))

	maxCount := 64
	require.NoError(t, cfg.Update(path, &maxCount, nil))
	assert.Equal(t, 64, cfg.Server.MaxCount)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, loaded.Server.MaxCount)
	assert.Equal(t, DefaultConfig().Server.MaxTextBytes, loaded.Server.MaxTextBytes)
}
