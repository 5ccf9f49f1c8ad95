package model

// Package model defines domain data structures used across the widget:
// channel statistics snapshots and the widget lifecycle state enum.
// Snapshots are immutable values compared structurally on each render tick.
