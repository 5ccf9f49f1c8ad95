package assets

// Package assets resolves and loads the widget's static resources: the
// brand logo and the panel font. Resolution tries multiple base directories
// because the widget may be launched from the project root, a plugin
// directory, or an arbitrary working directory.
