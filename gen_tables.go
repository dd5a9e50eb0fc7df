//go:build generate

// This program generates the UTF-8 decoder tables in tables.go from the
// well-formed byte sequences listed in Table 3-7 of the Unicode Standard.
//
//go:generate go run gen_tables.go

package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log"
	"os"
)

// acceptRange is a range of valid second bytes, as in Table 3-7.
type acceptRange struct {
	lo, hi byte
}

// leadRule describes the lead bytes from..to of a well-formed sequence.
type leadRule struct {
	from, to byte
	size     int
	second   acceptRange
}

// The rows of Table 3-7, "Well-Formed UTF-8 Byte Sequences". Lead bytes not
// covered here (0x80-0xC1, 0xF5-0xFF) never start a well-formed sequence.
var leadRules = []leadRule{
	{0xc2, 0xdf, 2, acceptRange{0x80, 0xbf}}, // U+0080..U+07FF
	{0xe0, 0xe0, 3, acceptRange{0xa0, 0xbf}}, // U+0800..U+0FFF, no overlong forms
	{0xe1, 0xec, 3, acceptRange{0x80, 0xbf}}, // U+1000..U+CFFF
	{0xed, 0xed, 3, acceptRange{0x80, 0x9f}}, // U+D000..U+D7FF, no surrogates
	{0xee, 0xef, 3, acceptRange{0x80, 0xbf}}, // U+E000..U+FFFF
	{0xf0, 0xf0, 4, acceptRange{0x90, 0xbf}}, // U+10000..U+3FFFF, no overlong forms
	{0xf1, 0xf3, 4, acceptRange{0x80, 0xbf}}, // U+40000..U+FFFFF
	{0xf4, 0xf4, 4, acceptRange{0x80, 0x8f}}, // U+100000..U+10FFFF, no larger
}

func main() {
	log.SetPrefix("gen_tables: ")
	log.SetFlags(0)

	src, err := generate()
	if err != nil {
		log.Fatal(err)
	}

	// Format the Go code.
	formatted, err := format.Source([]byte(src))
	if err != nil {
		log.Fatal("gofmt:", err)
	}

	// Save it to the target file.
	log.Print("Writing to tables.go")
	if err := os.WriteFile("tables.go", formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

func generate() (string, error) {
	// Collect the distinct second-byte ranges. Index 0 must be the plain
	// continuation range so that a zero high nibble means "any continuation".
	ranges := []acceptRange{{0x80, 0xbf}}
	index := func(r acceptRange) int {
		for i, known := range ranges {
			if known == r {
				return i
			}
		}
		ranges = append(ranges, r)
		return len(ranges) - 1
	}

	// Classify every byte value.
	var first [256]string
	for b := 0; b < 256; b++ {
		switch {
		case b < 0x80:
			first[b] = "as"
		default:
			first[b] = "xx"
		}
	}
	for _, rule := range leadRules {
		i := index(rule.second)
		for b := int(rule.from); b <= int(rule.to); b++ {
			if first[b] != "xx" {
				return "", fmt.Errorf("lead byte 0x%02X classified twice", b)
			}
			first[b] = fmt.Sprintf("0x%d%d", i, rule.size)
		}
	}
	if len(ranges) > 16 {
		return "", errors.New("too many accept ranges for a nibble index")
	}

	// Header.
	var buf bytes.Buffer
	buf.WriteString(`// Code generated via go generate from gen_tables.go. DO NOT EDIT.

package rawstr

// first holds information about the first byte of a UTF-8 sequence. The low
// three bits are the sequence size, the high nibble is an index into
// acceptRanges. The special values as and xx mark ASCII and bytes that never
// start a well-formed sequence.
var first = [256]uint8{
`)

	// Table rows, sixteen bytes each.
	for row := 0; row < 256; row += 16 {
		buf.WriteString("\t")
		for b := row; b < row+16; b++ {
			buf.WriteString(first[b])
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "// 0x%02X-0x%02X\n", row, row+15)
	}
	buf.WriteString("}\n\n")

	// Accept ranges.
	buf.WriteString(`// acceptRanges has the valid range of the second byte of a sequence, indexed
// by the high nibble of its first entry.
var acceptRanges = [16]acceptRange{
`)
	for i, r := range ranges {
		fmt.Fprintf(&buf, "\t%d: {0x%02X, 0x%02X},\n", i, r.lo, r.hi)
	}
	buf.WriteString("}\n")

	return buf.String(), nil
}
