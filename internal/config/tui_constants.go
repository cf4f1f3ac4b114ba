package config

// Layout constants.
const (
	// ProgressBarWidth is the preferred width of the phase progress bar.
	ProgressBarWidth = 40

	// MinProgressBarWidth is the floor below which the bar stops shrinking.
	MinProgressBarWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// FieldInputWidth is the width of a single numeric settings field.
	FieldInputWidth = 6
)

// Input constraints.
const (
	// MaxFieldDigits caps typed input in the numeric settings fields.
	MaxFieldDigits = 4
)
