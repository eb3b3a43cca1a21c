// Package preview turns print images into terminal-renderable thumbnails.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
	teeerrors "github.com/alexisbeaulieu97/teecraft/pkg/errors"
)

// thumbMax bounds the decoded thumbnail kept in memory.
const thumbMax = 160

// Preview is the displayable form of an ImageRef.
type Preview struct {
	Ref    customization.ImageRef
	MIME   string
	Broken bool
	Err    error

	thumb *image.NRGBA
}

// Placeholder returns the preview for the remote default image. Remote
// images are never fetched.
func Placeholder(url string) Preview {
	return Preview{Ref: customization.PlaceholderImage(url)}
}

// Load reads and decodes the image at path. Decode failures do not return
// an error: the preview is marked Broken and renders in a degraded state,
// while the reference still points at path.
func Load(path string, origin customization.ImageOrigin) Preview {
	ref := customization.ImageRef{
		Source: path,
		Name:   filepath.Base(path),
		Origin: origin,
	}

	info, err := os.Stat(path)
	if err != nil {
		return Preview{Ref: ref, Broken: true, Err: teeerrors.NewImageError(path, err)}
	}
	ref.Size = info.Size()

	p := Preview{Ref: ref}
	p.MIME, _ = DetectImage(path)

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		p.Broken = true
		p.Err = teeerrors.NewImageError(path, err)
		return p
	}

	p.thumb = imaging.Fit(img, thumbMax, thumbMax, imaging.Lanczos)
	return p
}

// DetectImage sniffs the MIME type of the file at path and reports whether
// it is an image type.
func DetectImage(path string) (string, bool) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", false
	}
	return mt.String(), strings.HasPrefix(mt.String(), "image/")
}

// IsImage reports whether the sniffed MIME type is an image type.
func (p Preview) IsImage() bool {
	return strings.HasPrefix(p.MIME, "image/")
}

// Bounds returns the thumbnail size in pixels.
func (p Preview) Bounds() image.Rectangle {
	if p.thumb == nil {
		return image.Rectangle{}
	}
	return p.thumb.Bounds()
}

// Release drops the decoded pixels. The preview renders as empty afterwards.
func (p *Preview) Release() {
	p.thumb = nil
}

// Render draws the preview into a width x height cell box. Each cell shows
// two vertically stacked pixels using the upper half block.
func (p Preview) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	box := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	switch {
	case p.Broken:
		return box.Render("[ preview unavailable ]\n" + p.Ref.DisplayName())
	case p.Ref.IsPlaceholder():
		return box.Render("[ sample print ]\n" + shorten(p.Ref.Source, width))
	case p.thumb == nil:
		return box.Render("")
	}

	fitted := imaging.Fit(p.thumb, width, height*2, imaging.Box)
	b := fitted.Bounds()

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := fitted.NRGBAAt(x, y)
			cell := lipgloss.NewStyle().Foreground(hex(top))
			if y+1 < b.Max.Y {
				cell = cell.Background(hex(fitted.NRGBAAt(x, y+1)))
			}
			sb.WriteString(cell.Render("▀"))
		}
		if y+2 < b.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return box.Render(sb.String())
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func shorten(s string, width int) string {
	r := []rune(s)
	if width < 4 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
