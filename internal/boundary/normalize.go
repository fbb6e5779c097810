package boundary

import "strings"

// Normalize prepares text for boundary detection: runs of whitespace
// collapse to a single space, stray carriage returns become newlines, and
// leading/trailing whitespace is trimmed. Chunk offsets are always taken
// against normalized text.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	inSpace := false
	for i := 0; i < len(text); i++ {
		if isSpace(text[i]) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteByte(text[i])
	}

	out := b.String()
	out = strings.ReplaceAll(out, "\r\n", "\n")
	out = strings.ReplaceAll(out, "\r", "\n")
	return out
}
