package tabbar

import "math"

// Layout describes how much of the screen the bar occupies. When
// WidthFraction is positive the bar is that share of the screen width;
// otherwise it is the screen width minus Margin on both sides. Padding is
// removed from both inner edges before slots are laid out.
type Layout struct {
	WidthFraction float64
	Margin        float64
	Padding       float64
}

// Geometry is the slot layout for one render pass.
type Geometry struct {
	ScreenWidth float64
	BarWidth    float64 // outer width including padding
	InnerWidth  float64 // width shared by the slots
	Padding     float64
	ItemWidth   float64
	Count       int
	Empty       bool
}

// Resolve computes the slot geometry for visibleCount items on a screen of
// the given width. It never divides by zero: a zero count or a bar with no
// usable width yields an Empty geometry.
func Resolve(screenWidth float64, layout Layout, visibleCount int) Geometry {
	g := Geometry{ScreenWidth: screenWidth, Count: visibleCount, Padding: layout.Padding}
	if screenWidth <= 0 || visibleCount <= 0 {
		g.Empty = true
		return g
	}

	if layout.WidthFraction > 0 {
		g.BarWidth = screenWidth * math.Min(layout.WidthFraction, 1)
	} else {
		g.BarWidth = screenWidth - 2*math.Max(layout.Margin, 0)
	}
	g.InnerWidth = g.BarWidth - 2*math.Max(layout.Padding, 0)
	if g.InnerWidth <= 0 {
		g.BarWidth = math.Max(g.BarWidth, 0)
		g.InnerWidth = 0
		g.Empty = true
		return g
	}
	g.ItemWidth = g.InnerWidth / float64(visibleCount)
	return g
}

// Offset is the indicator offset for the slot at index i.
func (g Geometry) Offset(i int) float64 {
	return float64(i) * g.ItemWidth
}

// SlotBounds returns the half-open cell span [start, end) of slot i,
// relative to the inner edge of the bar. Adjacent slots share boundaries so
// the spans tile the inner width exactly.
func (g Geometry) SlotBounds(i int) (start, end int) {
	if g.Empty || i < 0 || i >= g.Count {
		return 0, 0
	}
	return cell(g.Offset(i)), cell(g.Offset(i + 1))
}

// SlotAt maps a cell column, relative to the inner edge of the bar, to a slot
// index. It returns -1 outside the bar.
func (g Geometry) SlotAt(x int) int {
	if g.Empty || x < 0 {
		return -1
	}
	for i := 0; i < g.Count; i++ {
		start, end := g.SlotBounds(i)
		if x >= start && x < end {
			return i
		}
	}
	return -1
}

// Cells returns the rounded inner and outer widths in terminal cells.
func (g Geometry) Cells() (inner, outer int) {
	return cell(g.InnerWidth), cell(g.BarWidth)
}

func cell(v float64) int {
	return int(math.Round(v))
}
