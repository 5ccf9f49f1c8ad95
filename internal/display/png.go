package display

import (
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
)

// PNGSurface is a DisplaySurface that writes each pushed frame to a PNG
// file, standing in for real panel hardware. SetImage stages a frame;
// UpdateDisplay commits it.
type PNGSurface struct {
	width  int
	height int
	path   string
	staged image.Image
	logger *slog.Logger
}

// NewPNGSurface creates a surface of fixed dimensions writing to path.
func NewPNGSurface(width, height int, path string, logger *slog.Logger) *PNGSurface {
	if logger == nil {
		logger = slog.Default()
	}
	return &PNGSurface{
		width:  width,
		height: height,
		path:   path,
		logger: logger,
	}
}

// Width returns the panel width in pixels.
func (s *PNGSurface) Width() int { return s.width }

// Height returns the panel height in pixels.
func (s *PNGSurface) Height() int { return s.height }

// SetImage stages a finished frame for the next UpdateDisplay.
func (s *PNGSurface) SetImage(img image.Image) {
	s.staged = img
}

// UpdateDisplay writes the staged frame to the output file. The write goes
// through a temp file and rename so readers never see a torn frame.
func (s *PNGSurface) UpdateDisplay() {
	if s.staged == nil {
		return
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		s.logger.Error("creating frame file failed", "path", tmp, "error", err)
		return
	}

	if err := png.Encode(f, s.staged); err != nil {
		f.Close()
		os.Remove(tmp)
		s.logger.Error("encoding frame failed", "error", err)
		return
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		s.logger.Error("closing frame file failed", "error", err)
		return
	}

	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Error("publishing frame failed", "path", s.path, "error", err)
	}
}

// Clear blanks the output to an all-black frame.
func (s *PNGSurface) Clear() {
	s.staged = image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	s.UpdateDisplay()
	s.staged = nil
}

// EnsureOutputDir creates the directory the frame file lives in.
func (s *PNGSurface) EnsureOutputDir() error {
	dir := filepath.Dir(s.path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
