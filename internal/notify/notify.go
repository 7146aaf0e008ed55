package notify

import (
	"log"

	"github.com/gen2brain/beeep"
)

const appTitle = "cctrans"

// Notifier shows desktop notifications for translation results. It can be
// disabled via config; the daemon always prints to the console regardless.
type Notifier struct {
	enabled bool
}

func NewNotifier(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// Result shows the translated text. The source text goes in the title line
// so both halves of the translation are visible at a glance.
func (n *Notifier) Result(sourceText, translatedText string) {
	if !n.enabled {
		return
	}
	if err := beeep.Notify(appTitle, truncate(sourceText, 60)+"\n"+translatedText, ""); err != nil {
		log.Printf("[NOTIFY] Notification failed: %v", err)
	}
}

// Error reports a failed or timed-out translation.
func (n *Notifier) Error(message string) {
	if !n.enabled {
		return
	}
	if err := beeep.Alert(appTitle, message, ""); err != nil {
		log.Printf("[NOTIFY] Notification failed: %v", err)
	}
}

// Beep gives quick audio feedback when a double copy is accepted.
func (n *Notifier) Beep() {
	if !n.enabled {
		return
	}
	if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration/2); err != nil {
		log.Printf("[NOTIFY] Beep failed: %v", err)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
