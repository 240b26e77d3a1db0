package textutil

import "strings"

// bidiLabels names the bidirectional controls that can visually reorder a
// diagnostic line (for example a file name containing RLO).
var bidiLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
}

// SanitizeTerminalText replaces control characters so user-controlled text
// (file names, argument tokens) cannot inject terminal escape sequences into
// an error message.
func SanitizeTerminalText(text string) string {
	clean := true
	for _, r := range text {
		if needsSanitizing(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	for _, r := range text {
		if label, ok := bidiLabels[r]; ok {
			b.WriteString(label)
			continue
		}
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(r rune) bool {
	if _, ok := bidiLabels[r]; ok {
		return true
	}
	return r < 0x20 || r == 0x7f
}
