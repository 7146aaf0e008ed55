//go:build windows

package hotkeys

// Windows virtual-key codes (winuser.h).
var (
	controlRawcodes = map[uint16]struct{}{
		0x11: {}, // VK_CONTROL
		0xA2: {}, // VK_LCONTROL
		0xA3: {}, // VK_RCONTROL
	}

	copyRawcodes = map[uint16]struct{}{
		0x43: {}, // 'C'
	}

	excludedRawcodes = map[uint16]struct{}{
		0x15: {}, // VK_KANA (katakana/hiragana)
		0x19: {}, // VK_KANJI (zenkaku/hankaku)
		0x1C: {}, // VK_CONVERT (henkan)
		0x1D: {}, // VK_NONCONVERT (muhenkan)
		0xF3: {}, // VK_DBE_SBCSCHAR (half-width toggle)
		0xF4: {}, // VK_DBE_DBCSCHAR (full-width toggle)
	}
)
