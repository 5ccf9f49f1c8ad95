package model

import "github.com/dustin/go-humanize"

// Stats is an immutable snapshot of one channel's public statistics at a
// point in time. Counts are always non-negative.
type Stats struct {
	Name        string
	Subscribers int64
	Views       int64
}

// Equal reports whether two snapshots carry the same observable values.
func (s Stats) Equal(other Stats) bool {
	return s.Name == other.Name &&
		s.Subscribers == other.Subscribers &&
		s.Views == other.Views
}

// SubscriberLine returns the subscriber count formatted for display,
// e.g. "1,234 subs".
func (s Stats) SubscriberLine() string {
	return FormatCount(s.Subscribers) + " subs"
}

// ViewLine returns the view count formatted for display, e.g. "56,789 views".
func (s Stats) ViewLine() string {
	return FormatCount(s.Views) + " views"
}

// FormatCount renders n with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}
