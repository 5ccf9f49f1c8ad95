package render

// Package render composes stats snapshots into raster frames for the panel:
// logo scaling, three-line text layout with per-line centering, and name
// truncation against the font's fixed character width.
