package rawstr

import "unicode/utf8"

// Special values of the first table.
const (
	as = 0xf0 // ASCII, size 1.
	xx = 0xf1 // Never starts a well-formed sequence, size 1.
)

// The default bounds of a continuation byte.
const (
	locb = 0x80
	hicb = 0xbf
)

// replacement is U+FFFD encoded as UTF-8.
const replacement = "\uFFFD"

// acceptRange gives the range of valid values for the second byte in a UTF-8
// sequence.
type acceptRange struct {
	lo uint8 // Lowest value for second byte.
	hi uint8 // Highest value for second byte.
}

// decode classifies the sequence at the start of b, which must not be empty.
//
// If ok is true, the first n bytes are one well-formed sequence. Otherwise
// the first n bytes (at least one) are a maximal subpart of an ill-formed
// sequence: the longest prefix of a well-formed sequence, or a single byte if
// no such prefix exists. A maximal subpart is replaced by exactly one U+FFFD
// during lossy conversion.
//
// If short is true, the subpart ends because b ran out, not because of an
// unexpected byte, so more input could still complete the sequence.
func decode(b []byte) (n int, ok, short bool) {
	x := first[b[0]]
	if x >= as {
		return 1, x == as, false
	}
	size := int(x & 7)
	accept := acceptRanges[x>>4]

	if len(b) < 2 {
		return 1, false, true
	}
	if c := b[1]; c < accept.lo || accept.hi < c {
		return 1, false, false
	}
	if size == 2 {
		return 2, true, false
	}

	if len(b) < 3 {
		return 2, false, true
	}
	if c := b[2]; c < locb || hicb < c {
		return 2, false, false
	}
	if size == 3 {
		return 3, true, false
	}

	if len(b) < 4 {
		return 3, false, true
	}
	if c := b[3]; c < locb || hicb < c {
		return 3, false, false
	}
	return 4, true, false
}

// validUpTo returns the length of the longest valid UTF-8 prefix of b.
func validUpTo(b []byte) int {
	i := 0
	for i < len(b) {
		// Fast track ASCII.
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		n, ok, _ := decode(b[i:])
		if !ok {
			return i
		}
		i += n
	}
	return i
}

// appendLossy appends b to dst, replacing each maximal subpart of an
// ill-formed sequence with U+FFFD.
func appendLossy(dst, b []byte) []byte {
	for len(b) > 0 {
		valid := validUpTo(b)
		dst = append(dst, b[:valid]...)
		b = b[valid:]
		if len(b) == 0 {
			break
		}
		n, _, _ := decode(b)
		dst = append(dst, replacement...)
		b = b[n:]
	}
	return dst
}
