package model

// WidgetState represents the lifecycle state of a widget
type WidgetState string

const (
	// StateDisabled means the widget failed construction (bad config or
	// missing logo) and stays inert for the rest of its life
	StateDisabled WidgetState = "Disabled"

	// StateNoData means the widget is enabled but has not fetched stats yet
	StateNoData WidgetState = "NoData"

	// StateHasData means the widget holds a stats snapshot ready to render
	StateHasData WidgetState = "HasData"
)

// String returns the string representation of WidgetState
func (ws WidgetState) String() string {
	return string(ws)
}

// IsEnabled returns true unless the widget is permanently disabled
func (ws WidgetState) IsEnabled() bool {
	return ws != StateDisabled
}
