package clipboard

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// Content is a snapshot of the system clipboard at read time.
type Content struct {
	Text       string
	CapturedAt time.Time
	Length     int
	Empty      bool
}

// Reader abstracts clipboard access so the daemon can be tested without
// touching the real clipboard.
type Reader interface {
	// TextForTranslation returns the trimmed clipboard text, or ok=false
	// when the clipboard is empty or holds only whitespace.
	TextForTranslation() (text string, ok bool)
}

// SystemClipboard reads and writes the OS clipboard. atotto/clipboard
// shells out to the platform primitives (pbcopy/pbpaste, xclip/xsel,
// Win32), which keeps this package free of OS-specific code.
type SystemClipboard struct{}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Current returns the clipboard snapshot. Read failures are frequent and
// usually transient (another app holding the clipboard lock), so they are
// reported as an error for the caller to decide on.
func (c *SystemClipboard) Current() (Content, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return Content{}, fmt.Errorf("reading clipboard: %v", err)
	}

	trimmed := strings.TrimSpace(text)
	return Content{
		Text:       text,
		CapturedAt: time.Now(),
		Length:     len(text),
		Empty:      trimmed == "",
	}, nil
}

func (c *SystemClipboard) TextForTranslation() (string, bool) {
	content, err := c.Current()
	if err != nil {
		log.Printf("[CLIP] Clipboard read failed: %v", err)
		return "", false
	}
	if content.Empty {
		log.Printf("[CLIP] Clipboard empty or whitespace-only, nothing to translate")
		return "", false
	}

	text := strings.TrimSpace(content.Text)
	log.Printf("[CLIP] Captured %d chars for translation", len(text))
	return text, true
}

// SetText places text on the system clipboard.
func (c *SystemClipboard) SetText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %v", err)
	}
	return nil
}
