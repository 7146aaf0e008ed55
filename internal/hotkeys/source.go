package hotkeys

import "time"

// Source delivers one signal per qualifying Ctrl+C key-down from the OS
// input subsystem. Implementations run their listener on a dedicated
// goroutine; the onSignal callback executes on that latency-sensitive
// goroutine and must never block.
type Source interface {
	// Start begins listening and returns immediately. onSignal is called
	// once per Ctrl+C key-down with the event timestamp.
	Start(onSignal func(time.Time)) error

	// Stop cancels listening and releases the hook. Idempotent.
	Stop()

	// IsAvailable reports whether the hook is installed and healthy.
	// Missing OS privileges or repeated callback faults degrade the
	// feature to unavailable instead of crashing the host process.
	IsAvailable() bool
}

// The hook reports the platform raw code: a Windows virtual-key code, an X11
// keysym, or a macOS virtual key. The per-platform tables live in the
// keys_*.go files; the matchers below are shared.
//
// The IME/layout-switching key family fires at high frequency on JIS
// keyboards and must never be mistaken for Ctrl or C, nor be allowed to
// destabilize the hook loop, so those keys are dropped on every code path.

func isExcludedKey(rawcode uint16) bool {
	_, excluded := excludedRawcodes[rawcode]
	return excluded
}

func isControlKey(rawcode uint16) bool {
	_, ok := controlRawcodes[rawcode]
	return ok
}

func isCopyKey(rawcode uint16, keychar rune) bool {
	if _, ok := copyRawcodes[rawcode]; ok {
		return true
	}
	return keychar == 'c' || keychar == 'C'
}
