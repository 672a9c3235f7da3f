package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

func TestDecodeText_ByteOrderMarks(t *testing.T) {
	const text = "Chapter 1\nЁлка и ёж."

	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(text)
	if err != nil {
		t.Fatal(err)
	}
	utf16be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().String(text)
	if err != nil {
		t.Fatal(err)
	}
	utf32le, err := utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder().String(text)
	if err != nil {
		t.Fatal(err)
	}
	utf32be, err := utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewEncoder().String(text)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"utf8", []byte(text)},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, text...)},
		{"utf16le", []byte(utf16le)},
		{"utf16be", []byte(utf16be)},
		{"utf32le", []byte(utf32le)},
		{"utf32be", []byte(utf32be)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.data, tt.name)
			if err != nil {
				t.Fatalf("DecodeText() error = %v", err)
			}
			if got != text {
				t.Errorf("DecodeText() = %q, want %q", got, text)
			}
		})
	}
}

func TestDecodeText_InvalidEncoding(t *testing.T) {
	data := []byte("caf\xe9 au lait")

	_, err := DecodeText(data, "menu.txt")
	var ie *InputError
	if !errors.As(err, &ie) {
		t.Fatalf("DecodeText() error = %v, want *InputError", err)
	}
	if ie.Source != "menu.txt" {
		t.Errorf("Source = %q", ie.Source)
	}
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("DecodeText() error = %v, want ErrInvalidEncoding", err)
	}
}

func TestDecodeText_Fallback(t *testing.T) {
	data := []byte("caf\xe9 au lait")

	t.Run("explicit", func(t *testing.T) {
		got, err := DecodeText(data, "menu.txt", WithFallbackEncoding(charmap.Windows1252))
		if err != nil {
			t.Fatalf("DecodeText() error = %v", err)
		}
		if got != "café au lait" {
			t.Errorf("DecodeText() = %q", got)
		}
	})

	t.Run("detected", func(t *testing.T) {
		got, err := DecodeText(data, "menu.txt", WithEncodingDetection())
		if err != nil {
			t.Fatalf("DecodeText() error = %v", err)
		}
		if got != "café au lait" {
			t.Errorf("DecodeText() = %q", got)
		}
	})

	t.Run("not used for utf8", func(t *testing.T) {
		got, err := DecodeText([]byte("café"), "menu.txt", WithFallbackEncoding(charmap.Windows1252))
		if err != nil || got != "café" {
			t.Errorf("DecodeText() = %q, %v", got, err)
		}
	})
}

func TestFallbackOption(t *testing.T) {
	data := []byte("caf\xe9")

	for _, name := range []string{"windows-1252", "latin1", "AUTO", " auto "} {
		opt, err := FallbackOption(name)
		if err != nil {
			t.Fatalf("FallbackOption(%q) error = %v", name, err)
		}
		if got, err := DecodeText(data, "x", opt); err != nil || got != "café" {
			t.Errorf("FallbackOption(%q): DecodeText() = %q, %v", name, got, err)
		}
	}

	opt, err := FallbackOption("")
	if err != nil {
		t.Fatalf("FallbackOption(\"\") error = %v", err)
	}
	if _, err := DecodeText(data, "x", opt); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("empty fallback decoded invalid data, error = %v", err)
	}

	if _, err := FallbackOption("no-such-charset"); err == nil {
		t.Error("FallbackOption() accepted unknown encoding")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("ok", func(t *testing.T) {
		path := filepath.Join(dir, "book.txt")
		if err := os.WriteFile(path, []byte("\xEF\xBB\xBFPrologue\n\nOnce."), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if got != "Prologue\n\nOnce." {
			t.Errorf("ReadFile() = %q", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(dir, "absent.txt"))
		var ie *InputError
		if !errors.As(err, &ie) || !errors.Is(err, ErrSourceNotFound) {
			t.Errorf("ReadFile() error = %v, want InputError wrapping ErrSourceNotFound", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("ReadFile() error = %v, lost underlying cause", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, err := ReadFile(dir)
		if !errors.Is(err, ErrSourceRead) {
			t.Errorf("ReadFile() error = %v, want ErrSourceRead", err)
		}
	})
}

func TestReadSource_ReadError(t *testing.T) {
	_, err := ReadSource(failingReader{}, "stream")
	if !errors.Is(err, ErrSourceRead) {
		t.Errorf("ReadSource() error = %v, want ErrSourceRead", err)
	}
	if !strings.Contains(err.Error(), "stream") {
		t.Errorf("error %q does not name source", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device on fire")
}

func TestIngester_IngestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storm.txt")
	if err := os.WriteFile(path, []byte(stormManuscript), 0644); err != nil {
		t.Fatal(err)
	}

	in := newTestIngester(t)
	p, err := in.IngestFile(path, Meta{Title: "Storm"})
	if err != nil {
		t.Fatalf("IngestFile() error = %v", err)
	}
	if len(p.Sections[0].Chapters) != 2 {
		t.Errorf("got %d chapters, want 2", len(p.Sections[0].Chapters))
	}

	if _, err := in.IngestFile(path+".missing", Meta{}); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("IngestFile() error = %v, want ErrSourceNotFound", err)
	}
}
