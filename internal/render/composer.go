package render

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ledmatrix/ytstats/internal/model"
)

// Layout constants tuned for small LED panels
const (
	logoHeightRatio = 0.6 // logo takes 60% of panel height so three text lines fit
	logoLeftMargin  = 2
	logoTextGap     = 4
	textRightMargin = 4
	lineHeight      = 10
	ellipsis        = "..."
)

var textColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Composer lays out a stats snapshot onto a fixed-size canvas: the scaled
// logo on the left, three centered text lines on the right.
type Composer struct {
	logo   image.Image
	face   font.Face
	logger *slog.Logger
}

// NewComposer creates a composer for the given logo and font face.
func NewComposer(logo image.Image, face font.Face, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{logo: logo, face: face, logger: logger}
}

// Compose renders the snapshot into a new width x height image. Any absent
// input yields nil; a panic during drawing is recovered into nil so a bad
// frame never takes down the host's render loop.
func (c *Composer) Compose(width, height int, stats *model.Stats) (img image.Image) {
	if stats == nil || c.logo == nil || c.face == nil || width <= 0 || height <= 0 {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("panic while composing frame", "panic", r)
			img = nil
		}
	}()

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))

	// Scale the logo preserving aspect ratio and center it vertically.
	logoHeight := int(float64(height) * logoHeightRatio)
	bounds := c.logo.Bounds()
	logoWidth := bounds.Dx() * logoHeight / bounds.Dy()
	scaled := resize.Resize(uint(logoWidth), uint(logoHeight), c.logo, resize.Lanczos3)

	logoY := (height - logoHeight) / 2
	target := image.Rect(logoLeftMargin, logoY, logoLeftMargin+logoWidth, logoY+logoHeight)
	draw.Draw(canvas, target, scaled, scaled.Bounds().Min, draw.Over)

	// Text region starts after the logo and a fixed gap.
	textX := logoLeftMargin + logoWidth + logoTextGap
	available := width - textX - textRightMargin
	name := truncateName(stats.Name, available/c.charWidth())

	startY := (height - lineHeight*3) / 2
	ascent := c.face.Metrics().Ascent.Ceil()

	lines := []string{name, stats.SubscriberLine(), stats.ViewLine()}
	for i, line := range lines {
		c.drawCentered(canvas, line, textX, width-textX, startY+i*lineHeight+ascent)
	}

	return canvas
}

// drawCentered draws text horizontally centered within the region starting
// at textX; baselineY is the text baseline.
func (c *Composer) drawCentered(canvas *image.RGBA, text string, textX, regionWidth, baselineY int) {
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(textColor),
		Face: c.face,
	}

	textWidth := drawer.MeasureString(text).Ceil()
	x := textX + (regionWidth-textWidth)/2
	drawer.Dot = fixed.P(x, baselineY)
	drawer.DrawString(text)
}

// charWidth returns the fixed advance of the panel font in pixels.
func (c *Composer) charWidth() int {
	advance, ok := c.face.GlyphAdvance('M')
	if !ok || advance <= 0 {
		return 8
	}
	return advance.Ceil()
}

// truncateName fits name into maxChars characters, reserving three for the
// ellipsis marker when the name is cut.
func truncateName(name string, maxChars int) string {
	if len(name) <= maxChars {
		return name
	}
	if maxChars <= len(ellipsis) {
		if maxChars < 0 {
			maxChars = 0
		}
		return ellipsis[:maxChars]
	}
	return name[:maxChars-len(ellipsis)] + ellipsis
}
