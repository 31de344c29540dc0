// SPDX-License-Identifier: MIT
package exprtree

import (
	"strings"
)

// Source transforms expressions back into the text they were parsed from.
//
// Delimiters, commas & quotes are implied by the tree's shape; for balanced, properly quoted input
// without empty groups the output equals the parsed source. Skipped commas & unterminated
// delimiters or quotes are not reproduced faithfully.
func Source(exprs Group) string {
	var buffer strings.Builder
	writeGroup(&buffer, exprs)

	return buffer.String()
}

func writeGroup(buffer *strings.Builder, group Group) {
	for _, e := range group {
		writeExpr(buffer, e)
	}
}

func writeExpr(buffer *strings.Builder, e Expr) {
	if groups, open, end, ok := delimiters(e); ok {
		buffer.WriteRune(open)
		for index, group := range groups {
			if index > 0 {
				buffer.WriteByte(',')
			}
			writeGroup(buffer, group)
		}
		buffer.WriteRune(end)

		return
	}

	switch v := e.(type) {
	case StringLit:
		buffer.WriteByte('"')
		buffer.WriteString(v.Text)
		buffer.WriteByte('"')
	case CharLit:
		buffer.WriteByte('\'')
		buffer.WriteString(v.Text)
		buffer.WriteByte('\'')
	case nil:
	default:
		buffer.WriteString(Text(e))
	}
}
