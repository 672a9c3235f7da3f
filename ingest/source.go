package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Byte order marks in the order they have to be checked: UTF-32LE mark starts
// with UTF-16LE one.
var boms = []struct {
	mark []byte
	enc  encoding.Encoding
}{
	{[]byte{0xEF, 0xBB, 0xBF}, unicode.UTF8BOM},
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM)},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM)},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)},
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)},
}

// AutoEncoding is fallback encoding name which requests guessing of legacy
// encoding from content.
const AutoEncoding = "auto"

type sourceOptions struct {
	fallback encoding.Encoding
	sniff    bool
}

// SourceOption modifies how manuscript bytes are turned into text.
type SourceOption func(*sourceOptions)

// WithFallbackEncoding sets encoding used for sources which have no byte order
// mark and are not valid UTF-8.
func WithFallbackEncoding(enc encoding.Encoding) SourceOption {
	return func(o *sourceOptions) {
		o.fallback = enc
	}
}

// WithEncodingDetection makes sources which have no byte order mark and are
// not valid UTF-8 decoded with encoding guessed from content.
func WithEncodingDetection() SourceOption {
	return func(o *sourceOptions) {
		o.sniff = true
	}
}

// FallbackOption converts configured encoding name (IANA or WHATWG label,
// "auto" or empty) into a source option.
func FallbackOption(name string) (SourceOption, error) {
	name = strings.TrimSpace(name)
	switch {
	case len(name) == 0:
		return func(*sourceOptions) {}, nil
	case strings.EqualFold(name, AutoEncoding):
		return WithEncodingDetection(), nil
	}
	enc, _ := charset.Lookup(name)
	if enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return WithFallbackEncoding(enc), nil
}

// ReadFile reads manuscript text from file.
func ReadFile(path string, opts ...SourceOption) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", inputError(path, ErrSourceNotFound, err)
		}
		return "", inputError(path, ErrSourceRead, err)
	}
	defer f.Close()

	if fi, err := f.Stat(); err != nil {
		return "", inputError(path, ErrSourceRead, err)
	} else if !fi.Mode().IsRegular() {
		return "", inputError(path, ErrSourceRead, fmt.Errorf("not a regular file (%s)", fi.Mode().Type()))
	}
	return ReadSource(f, path, opts...)
}

// ReadSource reads manuscript text from r, name identifies source in errors.
func ReadSource(r io.Reader, name string, opts ...SourceOption) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", inputError(name, ErrSourceRead, err)
	}
	return DecodeText(data, name, opts...)
}

// DecodeText turns manuscript bytes into text. Byte order mark wins, then
// UTF-8, then fallback encoding if one was requested.
func DecodeText(data []byte, name string, opts ...SourceOption) (string, error) {
	var o sourceOptions
	for _, opt := range opts {
		opt(&o)
	}

	for _, b := range boms {
		if !bytes.HasPrefix(data, b.mark) {
			continue
		}
		out, err := b.enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", inputError(name, ErrInvalidEncoding, err)
		}
		if !utf8.Valid(out) {
			return "", inputError(name, ErrInvalidEncoding, nil)
		}
		return string(out), nil
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	enc := o.fallback
	if enc == nil && o.sniff {
		enc, _, _ = charset.DetermineEncoding(data, "text/plain")
	}
	if enc == nil {
		return "", inputError(name, ErrInvalidEncoding, nil)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", inputError(name, ErrInvalidEncoding, err)
	}
	return string(out), nil
}
