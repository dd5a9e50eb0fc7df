package rawstr

import (
	"bytes"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// RawStr is a read-only view of bytes which are believed to hold UTF-8 text
// but which have not been validated.
//
// A RawStr never copies or owns its bytes. The bytes must not be modified
// while the view, or a string obtained from it without copying, is in use.
//
// Go's == does not apply to slices. Use [RawStr.Equal], [RawStr.EqualString]
// and [RawStr.Compare] instead; all of them compare bytes, not text.
type RawStr []byte

// FromBytes wraps b as a RawStr. No validation takes place.
func FromBytes(b []byte) RawStr {
	return RawStr(b)
}

// FromString wraps the bytes of s as a RawStr without copying them. Since s
// is a Go string, the view must never be modified.
func FromString(s string) RawStr {
	return RawStr(stringToBytes(s))
}

// From is like [FromString] but accepts any type whose underlying type is
// string.
func From[S ~string](s S) RawStr {
	return FromString(string(s))
}

// Bytes returns the underlying bytes without copying.
func (s RawStr) Bytes() []byte {
	return s
}

// Len returns the length of the view in bytes, not in characters.
func (s RawStr) Len() int {
	return len(s)
}

// IsEmpty reports whether the view has no bytes.
func (s RawStr) IsEmpty() bool {
	return len(s) == 0
}

// Valid reports whether the bytes are entirely valid UTF-8.
func (s RawStr) Valid() bool {
	return utf8.Valid(s)
}

// ValidUpTo returns the length of the longest prefix of the view which is
// valid UTF-8. It equals [RawStr.Len] if and only if the view is valid.
func (s RawStr) ValidUpTo() int {
	return validUpTo(s)
}

// Str returns the bytes as a string if they are valid UTF-8. Overlong forms,
// surrogates, code points above U+10FFFF and misplaced continuation bytes are
// all rejected. The returned string shares memory with the view.
//
// If the bytes are not valid UTF-8, Str returns "" and false.
func (s RawStr) Str() (string, bool) {
	if !utf8.Valid(s) {
		return "", false
	}
	return bytesToString(s), true
}

// AppendLossy appends the bytes to dst, replacing each ill-formed sequence with
// U+FFFD, and returns the extended buffer. Each maximal subpart of an
// ill-formed sequence yields exactly one replacement character, following the
// "U+FFFD Substitution of Maximal Subparts" practice of the Unicode Standard.
func (s RawStr) AppendLossy(dst []byte) []byte {
	return appendLossy(dst, s)
}

// Equal reports whether s and t hold the same bytes. A nil view equals an
// empty one.
func (s RawStr) Equal(t RawStr) bool {
	return bytes.Equal(s, t)
}

// EqualString reports whether the bytes of s equal the bytes of str.
func (s RawStr) EqualString(str string) bool {
	return string(s) == str
}

// Compare compares s and t byte by byte. The result is 0 if s == t, -1 if
// s < t, and +1 if s > t. A proper prefix sorts before the longer view.
//
// RawStr.Compare can be passed to [slices.SortFunc] directly.
func (s RawStr) Compare(t RawStr) int {
	return bytes.Compare(s, t)
}

// Hash returns the 64-bit xxHash of the bytes. Views which are [RawStr.Equal]
// have the same hash.
func (s RawStr) Hash() uint64 {
	return xxhash.Sum64(s)
}

// EqualFoldASCII reports whether s and t are equal when ASCII letters are
// folded to lower case. Bytes outside A-Z and a-z, including all bytes of
// 0x80 and above, must match exactly. Views of different lengths are never
// equal.
func (s RawStr) EqualFoldASCII(t RawStr) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if lowerASCII(s[i]) != lowerASCII(t[i]) {
			return false
		}
	}
	return true
}

// HasSuffix reports whether s ends with suffix. An empty suffix always
// matches; a suffix longer than s never does.
func (s RawStr) HasSuffix(suffix RawStr) bool {
	return bytes.HasSuffix(s, suffix)
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
