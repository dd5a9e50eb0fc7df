/*
Package rawstr provides [RawStr], a read-only view of bytes which are expected
to hold UTF-8 text but which have not been validated yet.

Bytes read from files, sockets or foreign APIs usually are UTF-8, but nothing
guarantees it. Converting them to a Go string right away either hides the
problem or forces every caller to handle it early. A RawStr defers that
decision to the code which actually needs verified text, while still allowing
the bytes to be compared, hashed and printed.

# Overview

Using this package, you can:
  - Wrap bytes or strings without copying: [FromBytes], [FromString], [From]
  - Validate on demand: [RawStr.Str], [RawStr.Valid], [RawStr.ValidUpTo]
  - Convert lossily: [RawStr.StrLossy], [RawStr.AppendLossy], [Lossy]
  - Compare bytes: [RawStr.Equal], [RawStr.EqualString], [RawStr.Compare],
    [RawStr.EqualFoldASCII], [RawStr.HasSuffix], [RawStr.Hash]

A RawStr is a []byte, so it can be sliced, ranged over and passed to the
bytes package like any other byte slice. Its length is a number of bytes, not
characters.

# Validation

[RawStr.Str] applies the strict definition of UTF-8 from the Unicode
Standard. Overlong encodings, surrogate code points (U+D800 to U+DFFF), code
points above U+10FFFF, truncated sequences and stray continuation bytes are
all rejected. On success the returned string shares memory with the view, so
no copy is made:

	if text, ok := rawstr.FromBytes(buf).Str(); ok {
		// Use text, but do not modify buf while it is in use.
	}

# Lossy Conversion

[RawStr.StrLossy] replaces ill-formed sequences with U+FFFD (�) following
the "U+FFFD Substitution of Maximal Subparts" practice described in chapter 3
of the Unicode Standard: every maximal subpart, that is the longest prefix of
a well-formed sequence or a single byte if there is none, becomes exactly one
replacement character. For example, the bytes

	61 F1 80 80 E1 80 C2 62 80 63 80 BF 64

are converted to "a���b�c��d".

Valid input is returned without allocating. [RawStr.AppendLossy] writes into
a caller-provided buffer instead, and [Lossy] applies the same conversion to
streams through golang.org/x/text/transform.

# Formatting

A RawStr implements [fmt.Formatter]. %s and %v print the text, %q and %#v
print it quoted and escaped, and %x prints the raw bytes:

	fmt.Printf("%s %q\n", rawstr.FromString("Hello\tworld"), rawstr.FromString("Hello\tworld"))
	// Hello	world "Hello\tworld"

# Allocation-Free Builds

Building with the rawstr_noalloc tag removes the operations which have to
allocate, [RawStr.StrLossy] and [RawStr.MarshalJSON]. Formatting then prints
valid text as usual and falls back to a hex dump such as [48, 65, ff] for
bytes which are not valid UTF-8. Everything else, including
[RawStr.AppendLossy] and [Lossy], is available in both builds.
*/
package rawstr
