package plugin

// Package plugin declares the contracts between the host framework and the
// widgets it drives: the widget lifecycle, the display surface, the shared
// cache, and the best-effort usage counter. Widgets depend only on these
// interfaces, never on concrete host types.
