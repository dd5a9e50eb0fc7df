package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		valid     bool
		validUpTo int
	}{
		{"empty", "", true, 0},
		{"text", "Hello, world!\n", true, 14},
		{"bad byte", "Hello\xffworld", false, 5},
		{"truncated", "abc\xe2\x82", false, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := check(tt.name, []byte(tt.input))
			if r.valid() != tt.valid || r.ValidUpTo != tt.validUpTo || r.Bytes != len(tt.input) {
				t.Errorf("check(%q) = %+v, want valid %v, valid up to %d", tt.input, r, tt.valid, tt.validUpTo)
			}
		})
	}
}

func TestCopyLossy(t *testing.T) {
	var out bytes.Buffer
	n, err := copyLossy(&out, strings.NewReader("a\xffb\xe2\x82"))
	if err != nil {
		t.Fatalf("copyLossy: %v", err)
	}
	if want := "a\uFFFDb\uFFFD"; out.String() != want {
		t.Errorf("copyLossy wrote %q, want %q", out.String(), want)
	}
	if n != int64(out.Len()) {
		t.Errorf("copyLossy returned %d, wrote %d bytes", n, out.Len())
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(good, []byte("Hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("He\xffllo"), 0o644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	rootCmd.SetErr(&logs)
	rootCmd.SetOut(&bytes.Buffer{})
	defer rootCmd.SetErr(nil)
	defer rootCmd.SetOut(nil)

	rootCmd.SetArgs([]string{"check", good})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("check %s: %v", good, err)
	}

	rootCmd.SetArgs([]string{"check", good, bad})
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "1 of 2 inputs") {
		t.Errorf("check %s %s: err = %v, want 1 of 2 inputs invalid", good, bad, err)
	}
	if !strings.Contains(logs.String(), `"valid_up_to":2`) {
		t.Errorf("logs do not report the first bad byte:\n%s", logs.String())
	}
}

func TestLossyCommandStdin(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("caf\xc3 au lait"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	defer rootCmd.SetIn(nil)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	rootCmd.SetArgs([]string{"lossy"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("lossy: %v", err)
	}
	if want := "caf\uFFFD au lait"; out.String() != want {
		t.Errorf("lossy wrote %q, want %q", out.String(), want)
	}
}
