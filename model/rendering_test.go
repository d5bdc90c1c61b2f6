package model

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-ca/rules"
)

type brokenReader struct{}

func (brokenReader) Dimensions() (int, int) { return 1, 1 }

func (brokenReader) CellAt(int, int) (bool, error) { return false, ErrOutOfBounds }

func TestDisplayPlainFrame(t *testing.T) {
	e := newEngine(t, 3, 2, rules.Conway)
	if err := e.SeedPoints(Point{1, 0}, Point{2, 1}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := NewTerminalRenderer(false, nil).Display(&buf, e); err != nil {
		t.Fatal(err)
	}

	want := "  ██  \n    ██\n"
	if got := buf.String(); got != want {
		t.Fatalf("frame = %q, expected %q", got, want)
	}
}

func TestDiagonalPaletteMatchesMonoWithoutColors(t *testing.T) {
	e := newEngine(t, 8, 8, rules.Conway)
	if err := e.Seed(1, 2, NewRandomSource(11)); err != nil {
		t.Fatal(err)
	}

	mono, err := NewTerminalRenderer(false, MonoPalette).Frame(e)
	if err != nil {
		t.Fatal(err)
	}
	diag, err := NewTerminalRenderer(false, DiagonalPalette).Frame(e)
	if err != nil {
		t.Fatal(err)
	}
	if mono != diag {
		t.Fatal("palettes should differ only in color")
	}
}

func TestColoredFrameUsesEscapes(t *testing.T) {
	e := newEngine(t, 2, 1, rules.Conway)
	if err := e.SeedPoints(Point{0, 0}); err != nil {
		t.Fatal(err)
	}
	frame, err := NewTerminalRenderer(true, nil).Frame(e)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains([]byte(frame), []byte("\033[")) {
		t.Fatalf("colored frame %q has no escape sequence", frame)
	}
}

func TestFramePropagatesReadErrors(t *testing.T) {
	_, err := NewTerminalRenderer(false, nil).Frame(brokenReader{})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestClearWritesEscape(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminalRenderer(false, nil).Clear(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ansiClearScreen {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}
