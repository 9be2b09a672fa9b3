package export

import (
	"io"
	"strings"
)

// writeRow serializes one CSV row with every field quoted, matching the
// output contract of the original exporter. Interior quotes are doubled per
// RFC 4180.
func writeRow(w io.Writer, fields []string) error {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
