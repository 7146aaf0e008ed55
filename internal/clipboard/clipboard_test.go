package clipboard

import (
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireClipboard skips tests in environments without clipboard access
// (headless CI, no xclip/xsel on Linux).
func requireClipboard(t *testing.T) {
	t.Helper()
	if clipboard.Unsupported {
		t.Skip("clipboard not supported on this platform")
	}
	if err := clipboard.WriteAll("cctrans-clipboard-check"); err != nil {
		t.Skipf("clipboard unavailable: %v", err)
	}
}

func TestSetTextRoundTrip(t *testing.T) {
	requireClipboard(t)
	c := NewSystemClipboard()

	require.NoError(t, c.SetText("translated text"))

	content, err := c.Current()
	require.NoError(t, err)
	assert.Equal(t, "translated text", content.Text)
	assert.False(t, content.Empty)
}

func TestTextForTranslationTrimsWhitespace(t *testing.T) {
	requireClipboard(t)
	c := NewSystemClipboard()

	require.NoError(t, c.SetText("  hello world \n"))
	text, ok := c.TextForTranslation()
	require.True(t, ok)
	assert.Equal(t, "hello world", text)
}

func TestTextForTranslationRejectsWhitespaceOnly(t *testing.T) {
	requireClipboard(t)
	c := NewSystemClipboard()

	require.NoError(t, c.SetText("   \n\t  "))
	_, ok := c.TextForTranslation()
	assert.False(t, ok)
}
