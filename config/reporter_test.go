package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newTestReport(t *testing.T) (*Report, string) {
	t.Helper()
	dst := filepath.Join(t.TempDir(), "report.zip")
	conf := ReporterConfig{Destination: dst}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	return r, dst
}

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport_StoreAndClose(t *testing.T) {
	r, dst := newTestReport(t)

	src := filepath.Join(t.TempDir(), "manuscript.txt")
	if err := os.WriteFile(src, []byte("Chapter 1\n\nText."), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	r.Store("source.txt", src)
	r.StoreData("normalized.txt", []byte("normalized"))

	if r.Name() == "" {
		t.Error("Name() is empty for prepared report")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, dst)
	if files["source.txt"] != "Chapter 1\n\nText." {
		t.Errorf("source.txt = %q", files["source.txt"])
	}
	if files["normalized.txt"] != "normalized" {
		t.Errorf("normalized.txt = %q", files["normalized.txt"])
	}
	manifest := files["MANIFEST"]
	for _, name := range []string{"source.txt", "normalized.txt"} {
		if !strings.Contains(manifest, name) {
			t.Errorf("MANIFEST does not mention %s:\n%s", name, manifest)
		}
	}
}

func TestReport_StoreCopyRemovesTemporaries(t *testing.T) {
	r, dst := newTestReport(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "debug.txt"), []byte("test"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if err := r.StoreCopy("workdir", dir); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if len(r.temps) != 1 {
		t.Fatalf("temps = %v, want single entry", r.temps)
	}
	tmp := r.temps[0]

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		t.Errorf("temporary copy %s still exists", tmp)
	}
	if got := readArchive(t, dst)["workdir/debug.txt"]; got != "test" {
		t.Errorf("workdir/debug.txt = %q, want %q", got, "test")
	}
	// original must stay
	if _, err := os.Stat(filepath.Join(dir, "debug.txt")); err != nil {
		t.Errorf("original file was touched: %v", err)
	}
}

func TestReport_StoreCopyMissing(t *testing.T) {
	r, _ := newTestReport(t)
	defer r.Close()

	if err := r.StoreCopy("missing", filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("StoreCopy() of missing path should fail")
	}
}

func TestReport_StoreDataConcurrent(t *testing.T) {
	r, dst := newTestReport(t)

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			r.StoreData("tree.txt", []byte("x"))
		})
	}
	wg.Wait()

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	count := 0
	for name := range readArchive(t, dst) {
		if strings.HasPrefix(name, "tree.txt") {
			count++
		}
	}
	if count != 16 {
		t.Errorf("versioned entries = %d, want 16", count)
	}
}

func TestReport_StoreConflictPanics(t *testing.T) {
	r, _ := newTestReport(t)
	defer r.Close()

	r.Store("final.log", "/tmp/a.log")
	r.Store("final.log", "/tmp/a.log")

	defer func() {
		if recover() == nil {
			t.Error("Store() with different path for the same name should panic")
		}
	}()
	r.Store("final.log", "/tmp/b.log")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name on nil report = %q, want empty", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
