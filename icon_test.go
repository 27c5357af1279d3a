package main

import (
	"bytes"
	"image/color"
	"testing"
)

var (
	testBG   = color.NRGBA{R: 66, G: 133, B: 244, A: 255}
	testFace = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestRenderBounds(t *testing.T) {
	for _, size := range sizes {
		ic := Render(size, testBG, testFace)
		b := ic.Image().Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("size %d: got %dx%d canvas", size, b.Dx(), b.Dy())
		}
	}
}

func TestCornersKeepBackground(t *testing.T) {
	for _, size := range sizes {
		img := Render(size, testBG, testFace).Image()
		corners := [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}}
		for _, pt := range corners {
			got := color.NRGBAModel.Convert(img.At(pt[0], pt[1])).(color.NRGBA)
			if got != testBG {
				t.Errorf("size %d: corner (%d,%d) = %v, want background", size, pt[0], pt[1], got)
			}
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := Render(128, testBG, testFace)
	b := Render(128, testBG, testFace)
	if !bytes.Equal(a.Content(), b.Content()) {
		t.Error("two renders of the same inputs differ")
	}
}

// A 16px icon must come out identical with or without font data; 48px
// and up must not.
func TestLabelThreshold(t *testing.T) {
	saved := labelFont
	defer func() { labelFont = saved }()

	for _, size := range []int{16, 48} {
		labelFont = saved
		with := Render(size, testBG, testFace).Content()
		labelFont = nil
		without := Render(size, testBG, testFace).Content()

		same := bytes.Equal(with, without)
		if size < labelMinSize && !same {
			t.Errorf("size %d: label drawn below threshold", size)
		}
		if size >= labelMinSize && same {
			t.Errorf("size %d: no label drawn", size)
		}
	}
}

func TestIconName(t *testing.T) {
	if got := Render(48, testBG, testFace).Name(); got != "icon48.png" {
		t.Errorf("got %q, want icon48.png", got)
	}
}
