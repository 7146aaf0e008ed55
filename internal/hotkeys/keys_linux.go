//go:build !windows && !darwin

package hotkeys

// X11 keysyms (keysymdef.h); the hook reports the keysym as the raw code.
var (
	controlRawcodes = map[uint16]struct{}{
		0xFFE3: {}, // XK_Control_L
		0xFFE4: {}, // XK_Control_R
	}

	copyRawcodes = map[uint16]struct{}{
		0x63: {}, // XK_c
		0x43: {}, // XK_C
	}

	excludedRawcodes = map[uint16]struct{}{
		0xFF21: {}, // XK_Kanji (zenkaku/hankaku)
		0xFF22: {}, // XK_Muhenkan
		0xFF23: {}, // XK_Henkan_Mode
		0xFF27: {}, // XK_Hiragana_Katakana
		0xFF2A: {}, // XK_Zenkaku_Hankaku
		0xFF2D: {}, // XK_Kana_Lock
	}
)
