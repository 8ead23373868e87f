package charset

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestUTF8Reader_ValidPassThrough(t *testing.T) {
	input := "0 NAME José García\n"
	r := newUTF8Reader(strings.NewReader(input))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != input {
		t.Errorf("newUTF8Reader() = %q, want %q", got, input)
	}
}

func TestUTF8Reader_InvalidByteWarnsAndReplaces(t *testing.T) {
	input := []byte{'a', 0xFF, 'b'}
	r := newUTF8Reader(bytes.NewReader(input))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	want := "a" + "�" + "b"
	if string(got) != want {
		t.Errorf("newUTF8Reader() = %q, want %q", got, want)
	}
	if len(r.Warnings()) != 1 {
		t.Errorf("Warnings() = %d entries, want 1", len(r.Warnings()))
	}
}

func TestUTF8Reader_RuneSplitAcrossChunkBoundary(t *testing.T) {
	// A multi-byte rune should decode correctly even if the reader's
	// internal chunking happens to split it; exercised here with a
	// reader that always returns exactly one byte at a time.
	r := newUTF8Reader(&oneByteReader{data: []byte("é")})
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "é" {
		t.Errorf("newUTF8Reader() = %q, want %q", got, "é")
	}
}

type oneByteReader struct {
	data []byte
	pos  int
}

func (o *oneByteReader) Read(p []byte) (int, error) {
	if o.pos >= len(o.data) {
		return 0, io.EOF
	}
	p[0] = o.data[o.pos]
	o.pos++
	return 1, nil
}
