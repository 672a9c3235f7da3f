// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"golang.org/x/text/encoding"
)

// Entry is a regular file found in archive.
type Entry struct {
	// Archive is path to archive passed to Walk.
	Archive string
	// Name is path inside archive. When archive does not mark names as UTF-8
	// and name encoding was requested it is decoded.
	Name string
	File *zip.File
}

// ReadAll returns uncompressed content of the entry.
func (e *Entry) ReadAll() ([]byte, error) {
	r, err := e.File.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// WalkFunc is called for each entry visited by Walk. If an error is returned,
// processing stops.
type WalkFunc func(e *Entry) error

type walkOptions struct {
	prefix string
	names  encoding.Encoding
}

type Option func(*walkOptions)

// WithPrefix limits walk to entries whose (decoded) name starts with prefix.
func WithPrefix(prefix string) Option {
	return func(o *walkOptions) {
		o.prefix = prefix
	}
}

// WithNameEncoding forces encoding of entry names not marked as UTF-8. Zip
// format does not define name encoding and old archives often use local code
// page.
func WithNameEncoding(enc encoding.Encoding) Option {
	return func(o *walkOptions) {
		o.names = enc
	}
}

// Walk walks all regular files in the archive calling walkFn for each. Archive
// containing entries with path traversal components ("..") or absolute paths
// is rejected to prevent Zip Slip attacks. Resource forks added by macOS
// archivers are skipped.
func Walk(ctx context.Context, archive string, walkFn WalkFunc, opts ...Option) error {
	o := &walkOptions{}
	for _, opt := range opts {
		opt(o)
	}

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || isResourceFork(name) {
			continue
		}
		if o.names != nil && f.NonUTF8 {
			if decoded, err := o.names.NewDecoder().String(name); err == nil {
				name = decoded
			}
		}
		if !strings.HasPrefix(name, o.prefix) {
			continue
		}
		if err := walkFn(&Entry{Archive: archive, Name: name, File: f}); err != nil {
			return err
		}
	}
	return nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

func isResourceFork(name string) bool {
	return strings.HasPrefix(name, "__MACOSX/") || strings.HasPrefix(path.Base(name), "._")
}
