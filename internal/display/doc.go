package display

// Package display provides the demo host's display surface driver: a
// fixed-size raster that publishes frames as PNG files in place of real
// LED-matrix hardware.
