package charset

import (
	"bytes"
	"io"
	"testing"
)

func TestNewAnselReader_BasicASCII(t *testing.T) {
	input := []byte("Hello World\n")
	r := newAnselReader(bytes.NewReader(input))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Errorf("newAnselReader() = %q, want %q", got, input)
	}
}

func TestNewAnselReader_ExtendedLatin(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"Polish L (uppercase)", []byte{0xA1}, "Ł"},
		{"Polish L (lowercase)", []byte{0xB1}, "ł"},
		{"Scandinavian O stroke (uppercase)", []byte{0xA2}, "Ø"},
		{"AE ligature (lowercase)", []byte{0xB5}, "æ"},
		{"Euro sign", []byte{0xC8}, "€"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAnselReader(bytes.NewReader(tt.input))
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("newAnselReader() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewAnselReader_CombiningMarkReordering(t *testing.T) {
	// ANSEL places the combining acute (0xE2) before the base letter 'e';
	// Unicode places it after.
	input := []byte{0xE2, 'e'}
	r := newAnselReader(bytes.NewReader(input))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	want := "é"
	if string(got) != want {
		t.Errorf("newAnselReader() = %q, want %q", got, want)
	}
}

func TestNewAnselReader_InvalidByteWarnsAndReplaces(t *testing.T) {
	// 0x81 is undefined in both the ANSEL table and Windows-1252, so no
	// fallback applies and the byte falls through to U+FFFD.
	input := []byte("Line1\nLine2\n\x81")
	r := newAnselReader(bytes.NewReader(input))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v, want nil (invalid bytes should warn, not fail)", err)
	}
	if !bytes.Contains(got, []byte("�")) {
		t.Errorf("ReadAll() = %q, want U+FFFD substitution", got)
	}
	if len(r.Warnings()) == 0 {
		t.Error("Warnings() = empty, want at least one warning for the invalid byte")
	}
}

func TestNewAnselReader_UndefinedByteFallsBackToWindows1252(t *testing.T) {
	// 0x80 has no ANSEL mapping but is the Euro sign under Windows-1252;
	// the lenient fallback should recover it instead of emitting U+FFFD.
	input := []byte{0x80}
	r := newAnselReader(bytes.NewReader(input))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "€" {
		t.Errorf("newAnselReader() = %q, want %q", got, "€")
	}
	if len(r.Warnings()) == 0 {
		t.Error("Warnings() = empty, want a warning noting the fallback decode")
	}
}

func TestNewAnselReader_LargeInput(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 100; i++ {
		buf.WriteString("0 NOTE some ansel text\n")
	}
	r := newAnselReader(&buf)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if n := bytes.Count(got, []byte{'\n'}); n != 100 {
		t.Errorf("got %d lines, want 100", n)
	}
}
