package verifier

// Layout holds the per-slot metrics used to size the widget, in terminal cells.
type Layout struct {
	SlotWidth      int // Width of one slot box including its border
	SlotSpacing    int // Gap between adjacent slots
	LabelHeight    int // Height of one slot box including its border
	LineHeight     int // Height of the carrier line under the slots
	CarrierSpacing int // Gap between the slots and the carrier line
}

// DefaultLayout returns the stock slot metrics.
func DefaultLayout() Layout {
	return Layout{
		SlotWidth:      5,
		SlotSpacing:    1,
		LabelHeight:    3,
		LineHeight:     1,
		CarrierSpacing: 0,
	}
}

// Validate checks that every metric can be rendered.
// A slot box needs two cells of border plus at least one cell of content.
func (l Layout) Validate() error {
	if l.SlotWidth < 3 {
		return newConfigError("slot width must be at least 3, got %d", l.SlotWidth)
	}
	if l.LabelHeight < 3 {
		return newConfigError("label height must be at least 3, got %d", l.LabelHeight)
	}
	if l.SlotSpacing < 0 {
		return newConfigError("slot spacing cannot be negative, got %d", l.SlotSpacing)
	}
	if l.LineHeight < 0 {
		return newConfigError("line height cannot be negative, got %d", l.LineHeight)
	}
	if l.CarrierSpacing < 0 {
		return newConfigError("carrier spacing cannot be negative, got %d", l.CarrierSpacing)
	}
	return nil
}

// Size returns the fixed widget size for n slots.
//
//	width  = SlotWidth*n + SlotSpacing*(n-1)
//	height = LabelHeight + LineHeight + CarrierSpacing
func (l Layout) Size(n int) (width, height int) {
	if n < 1 {
		return 0, 0
	}
	width = l.SlotWidth*n + l.SlotSpacing*(n-1)
	height = l.LabelHeight + l.LineHeight + l.CarrierSpacing
	return width, height
}
