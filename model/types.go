package model

// Time is a timestamp on the shared timeline. Comparisons and arithmetic
// are exact integer operations; no float conversion happens at ingestion.
type Time = int64

// ClassID identifies one discrete class within an entity's annotation table.
type ClassID uint16

// Color is an RGBA display color. The zero value is fully transparent.
type Color struct {
	R, G, B, A uint8
}

// Transparent is the sentinel color used for implicit trailing transitions.
var Transparent = Color{}

// NewColor returns an opaque color.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// IsTransparent reports whether the color has zero alpha.
func (c Color) IsTransparent() bool {
	return c.A == 0
}
