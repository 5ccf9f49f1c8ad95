package youtube

// Package youtube is a minimal client for the Data API v3 channels.list
// endpoint: one GET with a fixed timeout, parsed into a model.Stats
// snapshot. Callers own caching and retry policy.
