package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Font rendering parameters for the small panel
const (
	fontSizePt = 8
	fontDPI    = 72
)

// LoadLogo resolves and decodes the PNG logo. There is no fallback: the
// widget is meaningless without the brand mark, so callers disable
// themselves on error.
func LoadLogo(relPath string) (image.Image, error) {
	path, err := Resolve(relPath)
	if err != nil {
		return nil, fmt.Errorf("logo %s: %w", relPath, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open logo %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode logo %s: %w", path, err)
	}
	return img, nil
}

// LoadFont resolves and parses a TTF font sized for the panel. Callers fall
// back to DefaultFace on error; a missing font only degrades rendering.
func LoadFont(relPath string) (font.Face, error) {
	path, err := Resolve(relPath)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", relPath, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    fontSizePt,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face %s: %w", path, err)
	}
	return face, nil
}

// DefaultFace returns the built-in fixed-width fallback face.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}
