package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessageEnglish(t *testing.T) {
	trans, err := NewTranslations("en")
	require.NoError(t, err)

	msg := trans.GetMessage("error_invalid_model", 0, map[string]interface{}{"Model": "gpt-5"})
	assert.Contains(t, msg, "gpt-5")
	assert.Contains(t, msg, "Invalid model")
}

func TestGetMessageSpanish(t *testing.T) {
	trans, err := NewTranslations("es")
	require.NoError(t, err)

	msg := trans.GetMessage("error_missing_credential", 0, map[string]interface{}{"Model": "gpt-4o"})
	assert.Contains(t, msg, "gpt-4o")
	assert.Contains(t, msg, "API key")
}

func TestSetLanguage(t *testing.T) {
	trans, err := NewTranslations("en")
	require.NoError(t, err)

	require.NoError(t, trans.SetLanguage("es"))
	msg := trans.GetMessage("error_upstream", 0, nil)
	assert.Contains(t, msg, "Probá")

	assert.Error(t, trans.SetLanguage("fr"))
}

func TestLocalesDirOverridesEmbeddedMessages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "locales"), 0o755))

	override := "[error_upstream]\nother = \"custom upstream message\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locales", "active.en.toml"), []byte(override), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() {
		require.NoError(t, os.Chdir(wd))
	}()

	trans, err := NewTranslations("en")
	require.NoError(t, err)

	assert.Equal(t, "custom upstream message", trans.GetMessage("error_upstream", 0, nil))
}

func TestGetMessageMissing(t *testing.T) {
	trans, err := NewTranslations("en")
	require.NoError(t, err)

	msg := trans.GetMessage("no_such_message", 0, nil)
	assert.Contains(t, msg, "no_such_message")
}
