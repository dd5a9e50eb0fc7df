//go:build !rawstr_noalloc

package rawstr

import (
	"fmt"

	"github.com/goccy/go-json"
)

// StrLossy returns the bytes as a string, replacing ill-formed sequences as
// [RawStr.AppendLossy] does.
//
// If the bytes are valid UTF-8, the result shares memory with the view and
// nothing is allocated. Otherwise a new string is allocated.
//
// StrLossy is not available when building with the rawstr_noalloc tag.
func (s RawStr) StrLossy() string {
	valid := validUpTo(s)
	if valid == len(s) {
		return bytesToString(s)
	}
	buf := make([]byte, 0, len(s)+len(replacement))
	buf = append(buf, s[:valid]...)
	return bytesToString(appendLossy(buf, s[valid:]))
}

// String returns the lossily converted text. See [RawStr.StrLossy].
func (s RawStr) String() string {
	return s.StrLossy()
}

// Format implements [fmt.Formatter]. The verbs %s and %v print the lossily
// converted text, %q and %#v print it as a double-quoted, escaped Go string
// literal, and %x and %X print the raw bytes in hexadecimal. Width, precision
// and flags are honoured as they are for strings.
func (s RawStr) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), []byte(s))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), s.StrLossy())
	}
}

// MarshalJSON encodes the lossily converted text as a JSON string.
func (s RawStr) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.StrLossy())
}
