package rawstr

import (
	"testing"
	"unicode/utf8"
)

// lossyTests hold ill-formed and well-formed inputs and their lossy
// conversions. Each maximal subpart becomes exactly one U+FFFD.
var lossyTests = []struct {
	name  string
	input string
	want  string
}{
	{"empty", "", ""},
	{"ascii", "Hello!", "Hello!"},
	{"valid multibyte", "\u20ac\U0001d11e", "\u20ac\U0001d11e"},
	{"unicode table 3-8", "\x61\xf1\x80\x80\xe1\x80\xc2\x62\x80\x63\x80\xbf\x64", "a\uFFFD\uFFFD\uFFFDb\uFFFDc\uFFFD\uFFFDd"},
	{"bad byte in text", "Hello\xffworld", "Hello\uFFFDworld"},
	{"stray continuations", "\x80\xbf", "\uFFFD\uFFFD"},
	{"truncated 3-byte", "\xe2\x82", "\uFFFD"},
	{"truncated 3-byte before text", "\xe2\x82abc", "\uFFFDabc"},
	{"truncated 4-byte", "\xf0\x90\x80", "\uFFFD"},
	{"truncated 4-byte before text", "\xf0\x90\x80a", "\uFFFDa"},
	{"truncated then valid", "\xe2\x82\u20ac", "\uFFFD\u20ac"},
	{"overlong 2-byte", "\xc0\xaf", "\uFFFD\uFFFD"},
	{"overlong 3-byte", "\xe0\x80\xaf", "\uFFFD\uFFFD\uFFFD"},
	{"overlong 4-byte", "\xf0\x80\x80\xaf", "\uFFFD\uFFFD\uFFFD\uFFFD"},
	{"surrogate", "\xed\xa0\x80", "\uFFFD\uFFFD\uFFFD"},
	{"above U+10FFFF", "\xf4\x90\x80\x80", "\uFFFD\uFFFD\uFFFD\uFFFD"},
	{"lead byte above 0xF4", "\xf5\x80", "\uFFFD\uFFFD"},
	{"last code point", "\xf4\x8f\xbf\xbf", "\U0010ffff"},
	{"replacement character kept", "\uFFFD\xff", "\uFFFD\uFFFD"},
}

func TestAppendLossy(t *testing.T) {
	for _, tt := range lossyTests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.input).AppendLossy(nil)
			if string(got) != tt.want {
				t.Errorf("AppendLossy(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !utf8.Valid(got) {
				t.Errorf("AppendLossy(%q) returned invalid UTF-8", tt.input)
			}
		})
	}
}

func TestAppendLossyKeepsPrefix(t *testing.T) {
	dst := []byte("prefix:")
	got := FromString("a\xffb").AppendLossy(dst)
	if want := "prefix:a\uFFFDb"; string(got) != want {
		t.Errorf("AppendLossy = %q, want %q", got, want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		input     string
		n         int
		ok, short bool
	}{
		{"a", 1, true, false},
		{"\x80", 1, false, false},
		{"\xff", 1, false, false},
		{"\xc2", 1, false, true},
		{"\xc2\x80", 2, true, false},
		{"\xc2a", 1, false, false},
		{"\xe0\xa0", 2, false, true},
		{"\xe0\x9f\xbf", 1, false, false},
		{"\xe2\x82\xac", 3, true, false},
		{"\xe2\x82a", 2, false, false},
		{"\xed\x9f\xbf", 3, true, false},
		{"\xed\xa0\x80", 1, false, false},
		{"\xf0\x90\x80", 3, false, true},
		{"\xf0\x8f\xbf\xbf", 1, false, false},
		{"\xf0\x90\x80\x80", 4, true, false},
		{"\xf0\x90\x80a", 3, false, false},
		{"\xf4\x8f\xbf\xbf", 4, true, false},
		{"\xf4\x90\x80\x80", 1, false, false},
	}
	for _, tt := range tests {
		n, ok, short := decode([]byte(tt.input))
		if n != tt.n || ok != tt.ok || short != tt.short {
			t.Errorf("decode(%q) = %d, %v, %v; want %d, %v, %v", tt.input, n, ok, short, tt.n, tt.ok, tt.short)
		}
	}
}

func TestDecodeAgreesWithUTF8(t *testing.T) {
	// Every lead byte, followed by every second byte and two continuation
	// bytes.
	var b [4]byte
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			b[0], b[1], b[2], b[3] = byte(i), byte(j), 0x80, 0x80
			n, ok, _ := decode(b[:])
			r, size := utf8.DecodeRune(b[:])
			valid := r != utf8.RuneError || size > 1
			if ok != valid || (ok && n != size) {
				t.Fatalf("decode(% x) = %d, %v; utf8.DecodeRune size %d, valid %v", b[:], n, ok, size, valid)
			}
		}
	}
}
