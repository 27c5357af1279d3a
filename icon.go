package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Icons below this size skip the "CC" label; the glyphs are unreadable
// at 16px anyway.
const labelMinSize = 48

const labelText = "CC"

var outlineGray = color.NRGBA{R: 50, G: 50, B: 50, A: 255}

var labelFont, _ = opentype.Parse(gobold.TTF)

type Icon struct {
	name string
	data *image.RGBA
}

func (i *Icon) Name() string {
	return i.name
}

func (i *Icon) Content() []byte {
	buf := new(bytes.Buffer)
	_ = png.Encode(buf, i.data)
	return buf.Bytes()
}

func (i *Icon) Image() image.Image {
	return i.data
}

func (i *Icon) Size() int {
	return i.data.Rect.Dx()
}

// Render draws a robot face onto a fresh size×size canvas: a round head
// in the face color over the background, with eyes, a smile, and (on the
// larger sizes) a "CC" label all in the background color.
func Render(size int, bg, face color.NRGBA) *Icon {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	margin := size / 8
	head := size - 2*margin

	cx := float64(margin) + float64(head)/2
	cy := cx
	r := float64(head) / 2
	fillCircle(img, cx, cy, r, face)
	strokeCircle(img, cx, cy, r, 1, outlineGray)

	eyeR := float64(size/8) / 2
	eyeY := float64(size / 3)
	fillCircle(img, float64(size/2-size/6), eyeY, eyeR, bg)
	fillCircle(img, float64(size/2+size/6), eyeY, eyeR, bg)

	mouthW := size / 4
	strokeSmile(img, float64(size)/2, float64(size/2+size/6), float64(mouthW)/2, float64(mouthW)/4, bg)

	if size >= labelMinSize {
		drawLabel(img, size, margin, bg)
	}

	return &Icon{
		name: fmt.Sprintf("icon%d.png", size),
		data: img,
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.NRGBA) {
	for y := int(cy - r); y <= int(cy+r)+1; y++ {
		for x := int(cx - r); x <= int(cx+r)+1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
}

func strokeCircle(img *image.RGBA, cx, cy, r, width float64, c color.NRGBA) {
	inner := r - width
	for y := int(cy - r); y <= int(cy+r)+1; y++ {
		for x := int(cx - r); x <= int(cx+r)+1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := dx*dx + dy*dy
			if d <= r*r && d > inner*inner {
				img.Set(x, y, c)
			}
		}
	}
}

// strokeSmile draws the lower half of an ellipse with semi-axes a, b
// centered at (cx, cy), two pixels thick.
func strokeSmile(img *image.RGBA, cx, cy, a, b float64, c color.NRGBA) {
	steps := int(math.Ceil(a)) * 8
	for _, inset := range []float64{0, 1} {
		ra := math.Max(a-inset, 0.5)
		rb := math.Max(b-inset, 0.5)
		for i := 0; i <= steps; i++ {
			th := math.Pi * float64(i) / float64(steps)
			x := cx + ra*math.Cos(th)
			y := cy + rb*math.Sin(th)
			img.Set(int(x), int(y), c)
		}
	}
}

// drawLabel centers the label near the bottom edge. Missing or broken
// font data means no label, not a failed render.
func drawLabel(img *image.RGBA, size, margin int, c color.NRGBA) {
	if labelFont == nil {
		return
	}
	face, err := opentype.NewFace(labelFont, &opentype.FaceOptions{
		Size:    float64(size) / 4,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}

	m := face.Metrics()
	w := d.MeasureString(labelText).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	top := size - h - margin/2
	d.Dot = fixed.P((size-w)/2, top+m.Ascent.Ceil())
	d.DrawString(labelText)
}
