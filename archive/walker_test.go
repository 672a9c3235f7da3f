package archive

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/charmap"
)

type zipEntry struct {
	name    string
	content string
	nonUTF8 bool
	dir     bool
}

func makeZip(t *testing.T, entries []zipEntry) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "test.zip")

	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.name, Method: zip.Deflate, NonUTF8: e.nonUTF8}
		if e.dir {
			hdr.SetMode(os.ModeDir | 0755)
		}
		fw, err := w.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", e.name, err)
		}
		if e.dir {
			continue
		}
		if _, err := fw.Write([]byte(e.content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish zip: %v", err)
	}
	return zipPath
}

func collect(t *testing.T, zipPath string, opts ...Option) []string {
	t.Helper()
	var visited []string
	err := Walk(context.Background(), zipPath, func(e *Entry) error {
		if e.Archive != zipPath {
			t.Errorf("archive = %s, want %s", e.Archive, zipPath)
		}
		visited = append(visited, e.Name)
		return nil
	}, opts...)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	slices.Sort(visited)
	return visited
}

func TestWalk(t *testing.T) {
	zipPath := makeZip(t, []zipEntry{
		{name: "drafts/", dir: true},
		{name: "drafts/one.txt", content: "Chapter 1"},
		{name: "drafts/two.txt", content: "Chapter 2"},
		{name: "final/book.txt", content: "Prologue"},
		{name: "notes.md", content: "NOTE"},
		{name: "__MACOSX/drafts/._one.txt", content: "fork"},
		{name: "final/._book.txt", content: "fork"},
	})

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{"everything", "", []string{"drafts/one.txt", "drafts/two.txt", "final/book.txt", "notes.md"}},
		{"drafts prefix", "drafts/", []string{"drafts/one.txt", "drafts/two.txt"}},
		{"single file", "final/book.txt", []string{"final/book.txt"}},
		{"no match", "nonexistent/", nil},
		{"case sensitive", "Drafts/", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, zipPath, WithPrefix(tt.prefix))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Walk() visited mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalk_ReadAll(t *testing.T) {
	zipPath := makeZip(t, []zipEntry{{name: "book.txt", content: "It was a dark and stormy night."}})

	err := Walk(context.Background(), zipPath, func(e *Entry) error {
		data, err := e.ReadAll()
		if err != nil {
			return err
		}
		if string(data) != "It was a dark and stormy night." {
			t.Errorf("content = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
}

func TestWalk_NameEncoding(t *testing.T) {
	raw, err := charmap.CodePage866.NewEncoder().String("книга.txt")
	if err != nil {
		t.Fatalf("Failed to encode name: %v", err)
	}
	zipPath := makeZip(t, []zipEntry{{name: raw, content: "text", nonUTF8: true}})

	if got := collect(t, zipPath); len(got) != 1 || got[0] != raw {
		t.Errorf("without encoding visited %q, want raw name", got)
	}
	got := collect(t, zipPath, WithNameEncoding(charmap.CodePage866))
	if diff := cmp.Diff([]string{"книга.txt"}, got); diff != "" {
		t.Errorf("decoded names mismatch (-want +got):\n%s", diff)
	}
	// prefix applies to decoded name
	if got := collect(t, zipPath, WithNameEncoding(charmap.CodePage866), WithPrefix("книга")); len(got) != 1 {
		t.Errorf("prefix on decoded name visited %q", got)
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	zipPath := makeZip(t, []zipEntry{
		{name: "a.txt"}, {name: "b.txt"}, {name: "c.txt"}, {name: "d.txt"},
	})

	var visited int
	stopErr := errors.New("stop walking")
	err := Walk(context.Background(), zipPath, func(e *Entry) error {
		visited++
		if visited == 2 {
			return stopErr
		}
		return nil
	})
	if !errors.Is(err, stopErr) {
		t.Errorf("Walk() error = %v, want %v", err, stopErr)
	}
	if visited != 2 {
		t.Errorf("visited %d files, want 2", visited)
	}
}

func TestWalk_Cancelled(t *testing.T) {
	zipPath := makeZip(t, []zipEntry{{name: "a.txt"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Walk(ctx, zipPath, func(e *Entry) error {
		t.Error("walkFn called on cancelled context")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Walk() error = %v, want context.Canceled", err)
	}
}

func TestWalk_UnsafePath(t *testing.T) {
	zipPath := makeZip(t, []zipEntry{
		{name: "ok.txt"},
		{name: "../evil.txt"},
	})
	err := Walk(context.Background(), zipPath, func(e *Entry) error { return nil })
	if err == nil {
		t.Error("Walk() expected error for unsafe entry")
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		err := Walk(context.Background(), "/nonexistent/file.zip", func(e *Entry) error { return nil })
		if err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		invalidZip := filepath.Join(t.TempDir(), "invalid.zip")
		if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
			t.Fatalf("Failed to create invalid zip: %v", err)
		}
		err := Walk(context.Background(), invalidZip, func(e *Entry) error { return nil })
		if err == nil {
			t.Error("Expected error for invalid zip file")
		}
	})
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"book.txt", true},
		{"dir/book.txt", true},
		{"dir/..book.txt", true},
		{"/etc/passwd", false},
		{`\windows\evil.txt`, false},
		{"../evil.txt", false},
		{"dir/../../evil.txt", false},
		{`dir\..\evil.txt`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSafePath(tt.name); got != tt.want {
				t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
