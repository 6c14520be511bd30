// Package preview renders a single label to a raster image, for showing a
// label on screen without a PDF round trip. Text is drawn with the embedded
// Go fonts: Go Mono stands in for Courier, Go Sans for Helvetica and Times.
// Printed output should come from the sheet package; geometry matches, the
// typefaces are stand-ins.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/lvillar/paleolabel"
	"github.com/lvillar/paleolabel/measure"
)

// DefaultScale is the default rendering density in pixels per point
// (4 px/pt = 288 DPI).
const DefaultScale = 4.0

// previewFonts substitutes an embedded Go font for each concrete font
// identifier the styling layer can produce. Unknown identifiers fall back
// to Go Regular and Render reports them.
var previewFonts = map[string][]byte{
	"Courier":               gomono.TTF,
	"Courier-Bold":          gomonobold.TTF,
	"Courier-Oblique":       gomonoitalic.TTF,
	"Courier-BoldOblique":   gomonobolditalic.TTF,
	"Helvetica":             goregular.TTF,
	"Helvetica-Bold":        gobold.TTF,
	"Helvetica-Oblique":     goitalic.TTF,
	"Helvetica-BoldOblique": gobolditalic.TTF,
	"Times-Roman":           goregular.TTF,
	"Times-Bold":            gobold.TTF,
	"Times-Italic":          goitalic.TTF,
	"Times-BoldItalic":      gobolditalic.TTF,
}

// Render draws the label into a new image at DefaultScale.
func Render(content paleolabel.Content, style paleolabel.LabelStyle) (*image.RGBA, error) {
	return RenderScaled(content, style, DefaultScale)
}

// RenderScaled draws the label into a new image at the given density in
// pixels per point.
func RenderScaled(content paleolabel.Content, style paleolabel.LabelStyle, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("preview: scale must be positive, got %g", scale)
	}

	widthPx := int(math.Ceil(measure.InchesToPoints(style.WidthInches) * scale))
	heightPx := int(math.Ceil(measure.InchesToPoints(style.HeightInches) * scale))
	if widthPx < 1 || heightPx < 1 {
		return nil, fmt.Errorf("preview: %w", paleolabel.ErrInvalidDimension)
	}

	img := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	surf := newImageSurface(img, scale)
	if err := paleolabel.Render(surf, content, 0, 0, style); err != nil {
		return nil, err
	}
	if surf.err != nil {
		return nil, surf.err
	}
	return img, nil
}

// WritePNG renders the label at DefaultScale and writes it as a PNG.
func WritePNG(w io.Writer, content paleolabel.Content, style paleolabel.LabelStyle) error {
	img, err := Render(content, style)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

type faceKey struct {
	font string
	size float64
}

// imageSurface implements paleolabel.Surface on an RGBA image. Coordinates
// arrive in points; scale converts them to pixels.
type imageSurface struct {
	img   *image.RGBA
	scale float64

	color color.Color
	face  font.Face

	fonts map[string]*sfnt.Font
	faces map[faceKey]font.Face
	err   error
}

func newImageSurface(img *image.RGBA, scale float64) *imageSurface {
	return &imageSurface{
		img:   img,
		scale: scale,
		color: color.Black,
		fonts: make(map[string]*sfnt.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// faceFor returns a cached face for the font identifier at the given point
// size. Unrecognized identifiers render as Go Regular; the first one is
// remembered and reported after the render.
func (s *imageSurface) faceFor(name string, size float64) font.Face {
	key := faceKey{font: name, size: size}
	if face, ok := s.faces[key]; ok {
		return face
	}

	f, ok := s.fonts[name]
	if !ok {
		ttf, known := previewFonts[name]
		if !known {
			if s.err == nil {
				s.err = fmt.Errorf("preview: no substitute for font %q", name)
			}
			ttf = goregular.TTF
		}
		parsed, err := opentype.Parse(ttf)
		if err != nil {
			// The embedded fonts always parse; this can only be
			// a programming error.
			panic(fmt.Sprintf("preview: parsing embedded font: %v", err))
		}
		f = parsed
		s.fonts[name] = f
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72 * s.scale,
		Hinting: font.HintingFull,
	})
	if err != nil {
		if s.err == nil {
			s.err = fmt.Errorf("preview: face for %q at %gpt: %w", name, size, err)
		}
		return nil
	}
	s.faces[key] = face
	return face
}

func (s *imageSurface) TextWidth(txt, fontName string, size float64) float64 {
	face := s.faceFor(fontName, size)
	if face == nil {
		return 0
	}
	adv := font.MeasureString(face, txt)
	return float64(adv) / 64 / s.scale
}

func (s *imageSurface) SetFont(fontName string, size float64) {
	s.face = s.faceFor(fontName, size)
}

func (s *imageSurface) SetTextColor(c paleolabel.Color) {
	r, g, b := c.RGB255()
	s.color = color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func (s *imageSurface) DrawText(txt string, x, y float64) {
	if s.face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(s.color),
		Face: s.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * s.scale * 64)),
			Y: fixed.Int26_6(math.Round(y * s.scale * 64)),
		},
	}
	d.DrawString(txt)
}

func (s *imageSurface) DrawRect(x, y, w, h, lineWidth float64) {
	px := func(v float64) int { return int(math.Round(v * s.scale)) }
	thick := px(lineWidth)
	if thick < 1 {
		thick = 1
	}

	x0, y0 := px(x), px(y)
	x1, y1 := px(x+w), px(y+h)
	src := image.NewUniform(s.color)

	// Four edges, drawn inward from the outline.
	draw.Draw(s.img, image.Rect(x0, y0, x1, y0+thick), src, image.Point{}, draw.Over)
	draw.Draw(s.img, image.Rect(x0, y1-thick, x1, y1), src, image.Point{}, draw.Over)
	draw.Draw(s.img, image.Rect(x0, y0, x0+thick, y1), src, image.Point{}, draw.Over)
	draw.Draw(s.img, image.Rect(x1-thick, y0, x1, y1), src, image.Point{}, draw.Over)
}
