package glyph

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/faiface/pixel"
	"golang.org/x/image/colornames"
)

const (
	// Set marks an opaque pixel in the text representation.
	Set = '1'
	// Ignore marks a transparent pixel in the text representation.
	Ignore = '.'
)

var (
	onColor  = colornames.White
	offColor = color.RGBA{}
)

// Glyph is an immutable rectangular grid of pixels. Pixels are stored in a
// pixel.PictureData, which keeps its rows bottom-up; all methods here address
// rows top-down.
type Glyph struct {
	pic *pixel.PictureData
}

// Width returns the number of pixel columns.
func (g Glyph) Width() int {
	if g.pic == nil {
		return 0
	}
	return g.pic.Stride
}

// Height returns the number of pixel rows.
func (g Glyph) Height() int {
	if g.pic == nil || g.pic.Stride == 0 {
		return 0
	}
	return len(g.pic.Pix) / g.pic.Stride
}

// At returns the colour at column col of row row, counting rows from the top.
func (g Glyph) At(col, row int) color.RGBA {
	return g.pic.Pix[g.index(col, row)]
}

func (g Glyph) index(col, row int) int {
	return (g.Height()-1-row)*g.pic.Stride + col
}

// VisibleColor returns the colour of the first non-transparent pixel, scanning
// rows top-down.
func (g Glyph) VisibleColor() (color.RGBA, bool) {
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if c := g.At(col, row); c.A != 0 {
				return c, true
			}
		}
	}
	return color.RGBA{}, false
}

// Clone returns a deep copy of g.
func (g Glyph) Clone() Glyph {
	if g.pic == nil {
		return Glyph{}
	}
	return Glyph{pic: clonePicture(g.pic)}
}

// Picture returns a fresh copy of the pixels, suitable for pixel.NewSprite.
func (g Glyph) Picture() *pixel.PictureData {
	if g.pic == nil {
		return pixel.MakePictureData(pixel.R(0, 0, 0, 0))
	}
	return clonePicture(g.pic)
}

// Image returns the glyph as a top-down image.RGBA with its origin at (0, 0).
func (g Glyph) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			img.SetRGBA(col, row, g.At(col, row))
		}
	}
	return img
}

func clonePicture(pd *pixel.PictureData) *pixel.PictureData {
	pix := make([]color.RGBA, len(pd.Pix))
	copy(pix, pd.Pix)
	return &pixel.PictureData{
		Pix:    pix,
		Stride: pd.Stride,
		Rect:   pd.Rect,
	}
}

// ParseError reports a malformed glyph asset.
type ParseError struct {
	Block  int  // 0-based block index in the asset, -1 if not block specific
	Line   int  // 1-based line in the asset, 0 if unknown
	Column int  // 1-based rune column, 0 if unknown
	Char   rune // offending rune, 0 if none
	Reason string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("glyph: ")
	if e.Block >= 0 {
		fmt.Fprintf(&b, "block %d: ", e.Block)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Column > 0 {
		fmt.Fprintf(&b, "column %d: ", e.Column)
	}
	b.WriteString(e.Reason)
	return b.String()
}

// ParseGlyph parses a single block of text rows into a Glyph.
func ParseGlyph(rows []string) (Glyph, error) {
	return parseBlock(rows, 0, 1)
}

// parseBlock parses rows belonging to block, whose first row sits on line
// firstLine of the asset.
func parseBlock(rows []string, block, firstLine int) (Glyph, error) {
	if len(rows) == 0 {
		return Glyph{}, &ParseError{Block: block, Line: firstLine, Reason: "empty glyph block"}
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return Glyph{}, &ParseError{Block: block, Line: firstLine, Reason: "empty glyph row"}
	}
	height := len(rows)

	pic := pixel.MakePictureData(pixel.R(0, 0, float64(width), float64(height)))
	g := Glyph{pic: pic}

	for row, line := range rows {
		lineNr := firstLine + row
		if n := len([]rune(line)); n != width {
			return Glyph{}, &ParseError{
				Block:  block,
				Line:   lineNr,
				Reason: fmt.Sprintf("row has %d pixels, expected %d", n, width),
			}
		}
		col := 0
		for _, ch := range line {
			switch ch {
			case Set:
				pic.Pix[g.index(col, row)] = onColor
			case Ignore:
				pic.Pix[g.index(col, row)] = offColor
			default:
				return Glyph{}, &ParseError{
					Block:  block,
					Line:   lineNr,
					Column: col + 1,
					Char:   ch,
					Reason: fmt.Sprintf("cannot construct pixel from %q, expected one of (on=%q, off=%q)", ch, Set, Ignore),
				}
			}
			col++
		}
	}
	return g, nil
}

type parsedBlock struct {
	glyph Glyph
	line  int
}

func decodeBlocks(r io.Reader) ([]parsedBlock, error) {
	var (
		blocks  []parsedBlock
		current []string
		start   int
		lineNr  int
	)

	flush := func() error {
		if len(current) == 0 {
			return nil
		}
		g, err := parseBlock(current, len(blocks), start)
		if err != nil {
			return err
		}
		blocks = append(blocks, parsedBlock{glyph: g, line: start})
		current = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNr++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if len(current) == 0 {
			start = lineNr
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return blocks, nil
}

// Decode reads blank-line separated glyph blocks and returns them in the order
// they appear in r.
func Decode(r io.Reader) ([]Glyph, error) {
	blocks, err := decodeBlocks(r)
	if err != nil {
		return nil, err
	}
	glyphs := make([]Glyph, len(blocks))
	for i, b := range blocks {
		glyphs[i] = b.glyph
	}
	return glyphs, nil
}

// Encode writes glyphs in the format read by Decode, one blank line between
// blocks.
func Encode(w io.Writer, glyphs []Glyph) error {
	bw := bufio.NewWriter(w)
	for i, g := range glyphs {
		if i > 0 {
			bw.WriteByte('\n')
		}
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				if g.At(col, row).A != 0 {
					bw.WriteRune(Set)
				} else {
					bw.WriteRune(Ignore)
				}
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
