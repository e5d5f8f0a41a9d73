package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{"album.txt", "svg", "album.svg"},
		{"album.toml", "png", "album.png"},
		{"album", "svg", "album.svg"},
		{"dir/album.txt", "pdf", "dir/album.pdf"},
	}

	for _, tt := range tests {
		if got := outputName(tt.input, tt.format); got != tt.want {
			t.Errorf("outputName(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}

func TestRenderCommand_InvalidFormat(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", "album.txt", "--format", "bmp"})

	err := root.Execute()
	if err == nil {
		t.Fatal("invalid format should be an error")
	}
	if !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("error = %v, want invalid format", err)
	}
}

func TestRenderCommand_DOT(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "album.txt")
	if err := os.WriteFile(input, []byte("3 2 2\n1 2\n2 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "album.dot")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", input, "--format", "dot", "--output", output})

	if err := root.Execute(); err != nil {
		t.Fatalf("render error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	dot := string(data)
	if !strings.Contains(dot, "digraph album") {
		t.Errorf("output missing digraph header: %q", dot)
	}
	if !strings.Contains(dot, "1 -> 2") {
		t.Errorf("output missing constraint edge: %q", dot)
	}
}

func TestLoadInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "album.txt")
	if err := os.WriteFile(path, []byte("3 2 1\n1 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	in, err := loadInstance(path, "")
	if err != nil {
		t.Fatalf("loadInstance error: %v", err)
	}
	if in.Photos != 3 || in.Capacity != 2 || len(in.Constraints) != 1 {
		t.Errorf("instance = %+v, want 3 photos, capacity 2, 1 constraint", in)
	}

	// Explicit format override
	if _, err := loadInstance(path, "text"); err != nil {
		t.Errorf("loadInstance with text format error: %v", err)
	}

	// Unknown format
	if _, err := loadInstance(path, "yaml"); err == nil {
		t.Error("unknown format should be an error")
	}
}
