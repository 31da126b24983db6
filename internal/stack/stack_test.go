package stack

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanOrdersByEmbeddedSliceNumber(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "slice_10.tif", "slice_2.tif", "slice_0001.tif", "slice_300.tif")

	st, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	want := []string{"slice_0001.tif", "slice_2.tif", "slice_10.tif", "slice_300.tif"}
	got := st.Files()
	if len(got) != len(want) {
		t.Fatalf("got %d files, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if st.Unkeyed() != 0 {
		t.Fatalf("expected no unkeyed files, got %d", st.Unkeyed())
	}
}

func TestScanFiltersExtensionsCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a_1.TIF", "b_2.tiff", "c_3.TIFF", "notes_4.txt", "d_5.png")

	st, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if st.Len() != 3 {
		t.Fatalf("expected 3 TIFF files, got %d: %v", st.Len(), st.Files())
	}
}

func TestScanUnkeyedNamesSortFirst(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "slice_5.tif", "cover.tif", "slice_1.tif")

	st, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if st.Unkeyed() != 1 {
		t.Fatalf("expected 1 unkeyed file, got %d", st.Unkeyed())
	}
	if st.File(0) != "cover.tif" {
		t.Fatalf("expected unkeyed file first, got %q", st.File(0))
	}
}

func TestScanIgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "slice_1.tif")
	if err := os.Mkdir(filepath.Join(dir, "nested_2.tif"), 0o755); err != nil {
		t.Fatal(err)
	}

	st, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if st.Len() != 1 {
		t.Fatalf("expected 1 file, got %d", st.Len())
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "readme.txt")

	_, err := Scan(dir)
	if !errors.Is(err, ErrNoImages) {
		t.Fatalf("expected ErrNoImages, got %v", err)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if errors.Is(err, ErrNoImages) {
		t.Fatal("missing directory must not report ErrNoImages")
	}
}

func TestSliceKey(t *testing.T) {
	cases := []struct {
		name string
		key  int
		ok   bool
	}{
		{"slice_0123.tif", 123, true},
		{"sample7_009.tiff", 9, true},
		{"42.tif", 42, true},
		{"cover.tif", 0, false},
		{"slice_12_final.tif", 0, false},
	}
	for _, tc := range cases {
		key, ok := sliceKey(tc.name)
		if key != tc.key || ok != tc.ok {
			t.Errorf("sliceKey(%q) = (%d, %v), want (%d, %v)", tc.name, key, ok, tc.key, tc.ok)
		}
	}
}

func TestSampleName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"/data/Sample12 Registered", "Sample12"},
		{"/data/Sample12 registered", "Sample12"},
		{"/data/Sample12 REGISTERED", "Sample12"},
		{"/data/Sample12", "Sample12"},
		{"/data/Sample12Registered", "Sample12Registered"},
		{"/data/registered", "registered"},
	}
	for _, tc := range cases {
		if got := SampleName(tc.input); got != tc.want {
			t.Errorf("SampleName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
