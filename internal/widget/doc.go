package widget

// Package widget implements the YouTube stats plugin: a cached fetch of
// channel statistics and a dirty-checked render of the three-line summary
// onto the host's display surface.
