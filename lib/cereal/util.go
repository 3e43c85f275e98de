package cereal

import (
	"bytes"
)

/*
	Tab2space expands leading tabs into two-space indents.

	Yaml refuses tab indentation outright, which is a rude thing to fling at
	someone hand-writing a build profile; we normalize before parsing.  Only
	indentation is touched: a tab appearing after the first non-tab byte of a
	line is content and passes through.
*/
func Tab2space(x []byte) []byte {
	var buf bytes.Buffer
	atIndent := true
	for _, b := range x {
		switch {
		case b == '\n':
			atIndent = true
			buf.WriteByte(b)
		case atIndent && b == '\t':
			buf.WriteString("  ")
		default:
			atIndent = false
			buf.WriteByte(b)
		}
	}
	return buf.Bytes()
}
