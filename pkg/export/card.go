package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/aretw0/notepad/pkg/core"
)

const (
	// DefaultBackground is the card background (#2e3b4e).
	DefaultBackground = "#2e3b4e"
	// DefaultBrand is the fixed brand mark printed on every card.
	DefaultBrand = "SUCCINCT"
	// CaptureScale is the fixed rasterization scale.
	CaptureScale = 2

	cardWidth    = 360
	padding      = 16
	border       = 2
	lineHeight   = 16
	glyphWidth   = 7
	paragraphGap = 8
)

var (
	textColor  = color.RGBA{0xe5, 0xe7, 0xeb, 0xff}
	mutedColor = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
)

// Card is the visual representation of a note.
type Card struct {
	Title      string
	Lines      []string
	Stamp      string
	Brand      string
	Accent     color.RGBA
	Background color.RGBA
}

// NewCard lays out note n for a team.
func NewCard(n core.Note, team core.Team, brand string, background color.RGBA, loc *time.Location) Card {
	accent, err := ParseHexColor(team.Color)
	if err != nil {
		accent = textColor
	}
	if brand == "" {
		brand = DefaultBrand
	}
	if loc == nil {
		loc = time.Local
	}

	return Card{
		Title:      n.Title,
		Lines:      Wrap(n.Content, maxColumns()),
		Stamp:      Stamp(n, loc),
		Brand:      brand,
		Accent:     accent,
		Background: background,
	}
}

// Stamp renders the timestamp line of a note.
func Stamp(n core.Note, loc *time.Location) string {
	const layout = "Jan 2, 2006, 3:04:05 PM"
	if n.UpdatedAt != nil {
		return "Updated: " + n.UpdatedAt.In(loc).Format(layout)
	}
	return "Created: " + n.CreatedAt.In(loc).Format(layout)
}

// Render rasterizes c at 1x.
func (c Card) Render() *image.RGBA {
	titleLines := Wrap(c.Title, maxColumns())
	lines := len(titleLines) + len(c.Lines) + 2 // stamp + brand
	height := 2*padding + lines*lineHeight + 2*paragraphGap

	img := image.NewRGBA(image.Rect(0, 0, cardWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.Accent), image.Point{}, draw.Src)
	inner := image.Rect(border, border, cardWidth-border, height-border)
	draw.Draw(img, inner, image.NewUniform(c.Background), image.Point{}, draw.Src)

	y := padding
	for _, l := range titleLines {
		y += lineHeight
		drawText(img, l, padding, y, c.Accent)
	}
	y += paragraphGap
	for _, l := range c.Lines {
		y += lineHeight
		drawText(img, l, padding, y, textColor)
	}
	y += paragraphGap + lineHeight
	drawText(img, c.Stamp, padding, y, mutedColor)

	y += lineHeight
	brandX := cardWidth - padding - utf8.RuneCountInString(c.Brand)*glyphWidth
	mark := image.Rect(brandX-14, y-10, brandX-4, y)
	draw.Draw(img, mark, image.NewUniform(c.Accent), image.Point{}, draw.Src)
	drawText(img, c.Brand, brandX, y, textColor)

	return img
}

// Rasterize renders c and scales it by scale against the card background.
func Rasterize(c Card, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}
	src := c.Render()
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst, nil
}

// Wrap splits text on line breaks and wraps each line at cols runes,
// breaking on spaces where possible.
func Wrap(text string, cols int) []string {
	var out []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, w := range words {
			for utf8.RuneCountInString(w) > cols {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				r := []rune(w)
				out = append(out, string(r[:cols]))
				w = string(r[cols:])
			}
			switch {
			case line == "":
				line = w
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) <= cols:
				line += " " + w
			default:
				out = append(out, line)
				line = w
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ParseHexColor parses #rrggbb or #rgb.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 || !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func maxColumns() int {
	return (cardWidth - 2*padding) / glyphWidth
}

func drawText(dst draw.Image, s string, x, y int, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
