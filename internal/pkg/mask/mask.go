package mask

import "strings"

const maskRune = '*'

// Value redacts a sensitive string for telemetry tags and logs.
// Values of three characters or fewer keep only the first character;
// longer values keep the first three. The output has the same length
// as the input, so masked values remain distinguishable by shape but
// the original is not recoverable. Empty input is returned unchanged.
func Value(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	visible := 3
	if len(runes) <= 3 {
		visible = 1
	}

	var b strings.Builder
	b.Grow(len(runes))
	for i, r := range runes {
		if i < visible {
			b.WriteRune(r)
		} else {
			b.WriteRune(maskRune)
		}
	}
	return b.String()
}

// UUID masks a UUID-shaped value while preserving its structure: the
// first and last dash-separated segments stay visible so operators can
// correlate the same identity across metrics without recovering it.
// Values that are not UUID-shaped fall back to Value.
func UUID(s string) string {
	parts := strings.Split(s, "-")
	if len(parts) != 5 {
		return Value(s)
	}

	masked := make([]string, len(parts))
	masked[0] = parts[0]
	masked[len(parts)-1] = parts[len(parts)-1]
	for i := 1; i < len(parts)-1; i++ {
		masked[i] = strings.Repeat(string(maskRune), len(parts[i]))
	}
	return strings.Join(masked, "-")
}

// Email masks an email address keeping the first character of the
// local part and the full domain. Values without an "@" fall back to
// Value.
func Email(s string) string {
	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return Value(s)
	}

	local := []rune(s[:at])
	var b strings.Builder
	b.WriteRune(local[0])
	for range local[1:] {
		b.WriteRune(maskRune)
	}
	b.WriteString(s[at:])
	return b.String()
}
