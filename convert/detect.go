package convert

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"unbound/archive"
)

// sniffSize is how much of the file is looked at to decide if it could be a
// manuscript.
const sniffSize = 8 * 1024

var textType = filetype.NewType("txt", "text/plain")

var boms = [][]byte{
	{0x00, 0x00, 0xFE, 0xFF},
	{0xFF, 0xFE, 0x00, 0x00},
	{0xEF, 0xBB, 0xBF},
	{0xFE, 0xFF},
	{0xFF, 0xFE},
}

func hasBOM(buf []byte) bool {
	for _, bom := range boms {
		if bytes.HasPrefix(buf, bom) {
			return true
		}
	}
	return false
}

func init() {
	// Text with byte order mark, UTF-16 and UTF-32 text would look binary
	// otherwise.
	filetype.AddMatcher(textType, hasBOM)
}

func readHead(r io.Reader) ([]byte, error) {
	buf := make([]byte, sniffSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}

func readFileHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readHead(f)
}

func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	head, err := readFileHead(path)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "zip"), nil
}

// looksLikeText rejects anything recognized as binary format or containing
// NUL bytes without byte order mark.
func looksLikeText(head []byte) bool {
	kind, _ := filetype.Match(head)
	switch {
	case kind == textType:
		return true
	case kind != filetype.Unknown:
		return false
	}
	return bytes.IndexByte(head, 0) < 0
}

// isManuscriptFile checks that file has one of manuscript extensions and its
// content is text.
func isManuscriptFile(path string, hasExt func(string) bool) (bool, error) {
	if !hasExt(path) {
		return false, nil
	}
	head, err := readFileHead(path)
	if err != nil {
		return false, err
	}
	return looksLikeText(head), nil
}

func isManuscriptInArchive(e *archive.Entry, hasExt func(string) bool) (bool, error) {
	if !hasExt(e.Name) {
		return false, nil
	}
	r, err := e.File.Open()
	if err != nil {
		return false, err
	}
	defer r.Close()
	head, err := readHead(r)
	if err != nil {
		return false, err
	}
	return looksLikeText(head), nil
}
