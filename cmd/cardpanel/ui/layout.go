// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for the card detail panel
const (
	// Viewport padding and margins
	ViewportHorizontalPadding = 4
	ViewportVerticalPadding   = 2

	// Field rows
	FieldLabelWidth = 16
	ContentIndent   = 2
	StepIndent      = 3

	// Control areas
	FooterHeight = 2

	// Responsive defaults
	DefaultPanelWidth  = 80
	DefaultPanelHeight = 24
	MinimumPanelWidth  = 60
)
