package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sheet.png")
	var stderr bytes.Buffer
	args := []string{"-cols", "3", "-rows", "2", "-tile", "32", "-slices", "8", "-seed", "7", "-o", out}
	if code := run(args, &stderr); code != 0 {
		t.Fatalf("run exited with %d: %s", code, stderr.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := img.Bounds().Dx(), 3*32; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	if got, want := img.Bounds().Dy(), 2*32; got != want {
		t.Errorf("height = %d, want %d", got, want)
	}
}

func TestRunBadInput(t *testing.T) {
	dir := t.TempDir()
	tests := [][]string{
		{"-alpha", "-1"},
		{"-points", "1"},
		{"-algo", "nurbs"},
		{"-fg", "not-a-colour"},
		{"-cols", "0"},
		{"stray"},
	}
	for _, args := range tests {
		var stderr bytes.Buffer
		args = append(args, "-o", filepath.Join(dir, "out.png"))
		if code := run(args, &stderr); code != 2 {
			t.Errorf("run(%q) = %d, want 2", args, code)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "out.png")); !os.IsNotExist(err) {
		t.Errorf("bad input wrote an image: %v", err)
	}
}

func TestRunHelp(t *testing.T) {
	var stderr bytes.Buffer
	if code := run([]string{"-h"}, &stderr); code != 0 {
		t.Errorf("run(-h) = %d, want 0", code)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("-alpha")) {
		t.Errorf("usage doesn't mention -alpha:\n%s", stderr.String())
	}
}

func TestRunUnwritable(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "sheet.png")
	var stderr bytes.Buffer
	args := []string{"-cols", "1", "-rows", "1", "-tile", "16", "-o", out}
	if code := run(args, &stderr); code != 1 {
		t.Errorf("run = %d, want 1", code)
	}
}

func TestColorValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"teal", "#008080"},
		{"Teal", "#008080"},
		{"#ff8000", "#ff8000"},
		{"#fff", "#ffffff"},
	}
	for _, tt := range tests {
		var c gg.RGBA
		v := colorValue{&c}
		if err := v.Set(tt.in); err != nil {
			t.Errorf("Set(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, v.String()); diff != "" {
			t.Errorf("Set(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}

	for _, in := range []string{"", "#12", "#ggg", "chartreuse2"} {
		var c gg.RGBA
		if err := (colorValue{&c}).Set(in); err == nil {
			t.Errorf("Set(%q) succeeded, want error", in)
		}
	}
}
