//go:build darwin

package hotkeys

// macOS virtual keys (HIToolbox Events.h).
var (
	controlRawcodes = map[uint16]struct{}{
		0x3B: {}, // kVK_Control
		0x3E: {}, // kVK_RightControl
	}

	copyRawcodes = map[uint16]struct{}{
		0x08: {}, // kVK_ANSI_C
	}

	excludedRawcodes = map[uint16]struct{}{
		0x66: {}, // kVK_JIS_Eisu
		0x68: {}, // kVK_JIS_Kana
	}
)
