package csvparse

import "strings"

var cellReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", `"`, "'")

// FormatLine joins fields into one line that ParseLine reads back field for field.
// Line breaks become spaces, double quotes become single quotes, and only
// fields containing a comma are quoted.
func FormatLine(fields []string) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		f = cellReplacer.Replace(f)
		if strings.Contains(f, ",") {
			b.WriteByte('"')
			b.WriteString(f)
			b.WriteByte('"')
			continue
		}
		b.WriteString(f)
	}
	return b.String()
}
