package ui

// Layout constants.
const (
	// HeaderHeight is the number of rows used by the header line.
	HeaderHeight = 1

	// LayoutCompactWidth is the width below which the header drops hints.
	LayoutCompactWidth = 60
)
