//go:build rawstr_noalloc

package rawstr

import (
	"fmt"
	"io"
	"strings"
)

const hexDigits = "0123456789abcdef"

// String returns the text if the bytes are valid UTF-8, or a hex dump of the
// bytes otherwise. See [RawStr.Format].
func (s RawStr) String() string {
	if str, ok := s.Str(); ok {
		return str
	}
	var sb strings.Builder
	writeHex(&sb, s)
	return sb.String()
}

// Format implements [fmt.Formatter]. Valid UTF-8 is formatted as a string,
// so %s and %v print the text and %q and %#v print it quoted and escaped.
// Bytes that are not valid UTF-8 are printed as a hex dump such as
// [48, 65, ff], whatever the verb. %x and %X always print the raw bytes in
// hexadecimal.
func (s RawStr) Format(f fmt.State, verb rune) {
	if verb == 'x' || verb == 'X' {
		fmt.Fprintf(f, fmt.FormatString(f, verb), []byte(s))
		return
	}
	if str, ok := s.Str(); ok {
		fmt.Fprintf(f, fmt.FormatString(f, verb), str)
		return
	}
	writeHex(f, s)
}

// writeHex writes b as a bracketed, comma-separated list of two-digit hex
// bytes.
func writeHex(w io.Writer, b []byte) {
	var buf [4]byte
	buf[0] = '['
	n := 1
	for _, c := range b {
		buf[n], buf[n+1] = hexDigits[c>>4], hexDigits[c&0xf]
		w.Write(buf[:n+2])
		buf[0], buf[1], n = ',', ' ', 2
	}
	if n == 1 {
		w.Write(buf[:1])
	}
	buf[0] = ']'
	w.Write(buf[:1])
}
