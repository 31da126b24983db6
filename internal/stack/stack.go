// Package stack discovers and orders the slice images that make up one
// microCT sample.
package stack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrNoImages indicates the input directory holds no TIFF slices.
var ErrNoImages = errors.New("no TIFF images found")

var registeredSuffix = regexp.MustCompile(`(?i)\sregistered$`)

// Stack is the ordered, read-only list of slice filenames for one sample.
// Ordering follows the slice number embedded in each filename, not lexical
// order, so "slice_9.tif" sorts before "slice_10.tif".
type Stack struct {
	files   []string
	unkeyed int
}

// Scan lists the TIFF images in dir and orders them by embedded slice number.
// Filenames without a parseable number sort first under key 0; their count is
// reported through Unkeyed so callers can warn the operator.
func Scan(dir string) (Stack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Stack{}, fmt.Errorf("read slice directory %s: %w", dir, err)
	}

	type keyed struct {
		name string
		key  int
	}

	files := make([]keyed, 0, len(entries))
	unkeyed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isTIFF(name) {
			continue
		}
		key, ok := sliceKey(name)
		if !ok {
			unkeyed++
		}
		files = append(files, keyed{name: name, key: key})
	}

	if len(files) == 0 {
		return Stack{}, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].key < files[j].key
	})

	ordered := make([]string, len(files))
	for i, f := range files {
		ordered[i] = f.name
	}
	return Stack{files: ordered, unkeyed: unkeyed}, nil
}

// Len returns the number of slices in the stack.
func (s Stack) Len() int { return len(s.files) }

// File returns the filename at the given 0-based position.
func (s Stack) File(i int) string { return s.files[i] }

// Files returns a copy of the ordered filename list.
func (s Stack) Files() []string {
	out := make([]string, len(s.files))
	copy(out, s.files)
	return out
}

// Unkeyed reports how many filenames had no parseable slice number and fell
// back to sort key 0.
func (s Stack) Unkeyed() int { return s.unkeyed }

// SampleName derives the output subfolder name for an input directory: its
// base name with a trailing " registered" suffix (any casing) removed.
func SampleName(inputDir string) string {
	base := filepath.Base(filepath.Clean(inputDir))
	return registeredSuffix.ReplaceAllString(base, "")
}

func isTIFF(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".tif") || strings.HasSuffix(lower, ".tiff")
}

// sliceKey extracts the run of digits immediately preceding the extension.
func sliceKey(name string) (int, bool) {
	stem := name[:len(name)-len(filepath.Ext(name))]
	end := len(stem)
	start := end
	for start > 0 && stem[start-1] >= '0' && stem[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	key, err := strconv.Atoi(stem[start:end])
	if err != nil {
		// Digit runs long enough to overflow int do not occur in practice.
		return 0, false
	}
	return key, true
}
