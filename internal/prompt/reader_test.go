package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}

	return path
}

func TestReadFiles_ConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()

	first := writeFile(t, dir, "first.txt", "alpha\n")
	second := writeFile(t, dir, "second.txt", "beta\n")
	third := writeFile(t, dir, "third.txt", "gamma")

	result, err := ReadFiles([]string{first, second, third})
	if err != nil {
		t.Fatalf("ReadFiles failed: %v", err)
	}

	want := "alpha\nbeta\ngamma"
	if result != want {
		t.Errorf("Expected %q, got %q", want, result)
	}
}

func TestReadFiles_SkipsMissingPathsSilently(t *testing.T) {
	dir := t.TempDir()

	first := writeFile(t, dir, "first.txt", "alpha")
	second := writeFile(t, dir, "second.txt", "beta")

	// Missing paths interleaved anywhere must not affect the result.
	paths := []string{
		filepath.Join(dir, "missing-head.txt"),
		first,
		filepath.Join(dir, "missing-middle.txt"),
		second,
		filepath.Join(dir, "missing-tail.txt"),
	}

	result, err := ReadFiles(paths)
	if err != nil {
		t.Fatalf("ReadFiles failed: %v", err)
	}

	if result != "alphabeta" {
		t.Errorf("Expected %q, got %q", "alphabeta", result)
	}
}

func TestReadFiles_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "only.txt", "content")

	result, err := ReadFiles([]string{dir, file})
	if err != nil {
		t.Fatalf("ReadFiles failed: %v", err)
	}

	if result != "content" {
		t.Errorf("Expected %q, got %q", "content", result)
	}
}

func TestReadFiles_AllMissingYieldsEmpty(t *testing.T) {
	result, err := ReadFiles([]string{"/no/such/file", "/also/missing"})
	if err != nil {
		t.Fatalf("ReadFiles failed: %v", err)
	}

	if result != "" {
		t.Errorf("Expected empty result, got %q", result)
	}
}

func TestReadAll_ReturnsInputVerbatim(t *testing.T) {
	input := "line one\nline two\n"

	result, err := ReadAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	if result != input {
		t.Errorf("Expected %q, got %q", input, result)
	}
}
