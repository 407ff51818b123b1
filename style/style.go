package style

// BorderShorthand mirrors the nested `border: {width,color,radius}` shape
// some callers send instead of (or alongside) the flat `borderWidth` etc.
// fields; it sits at the end of the border fallback chain.
type BorderShorthand struct {
	Width *float32
	Color *Color
	Radius *float32
}

// Style is the decoded per-node style bag. Every field is
// optional; accessors below apply the documented defaults.
type Style struct {
	// Sizing
	Width, Height Dimension
	MinWidth, MinHeight Dimension
	MaxWidth, MaxHeight Dimension

	// Box
	Padding Dimension
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft Dimension
	Margin Dimension
	MarginTop, MarginRight, MarginBottom, MarginLeft Dimension

	// Flex/layout
	Direction Direction
	Wrap bool
	MainAlign MainAlign
	CrossAlign CrossAlign
	Gap float32
	Flex float32

	// Position
	Position PositionMode
	Top, Right, Bottom, Left *float32

	// Border
	BorderWidth *float32
	BorderColor *Color
	BorderRadius *float32
	Border *BorderShorthand

	BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth *float32
	BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor *Color
	BorderTopLeftRadius, BorderTopRightRadius, BorderBottomRightRadius, BorderBottomLeftRadius *float32

	BackgroundColor *Color
	Opacity *float32

	// Text
	TextAlign TextAlign
	Color *Color
	FontSize float32 // 0 means unset; FontSizeOr applies the default of 12
	FontWeight FontWeight
	FontStyle FontStyle
	LineHeight float32 // 0 means unset; LineHeightOr applies the default of 1.4

	// Image
	ObjectFit ObjectFit

	// Table
	ColSpan, RowSpan int
	ColumnWidths []Dimension
}

const (
	defaultFontSize = 12
	defaultLineHeight = 1.4
)

// FontSizeOr returns the resolved font size, applying the documented default.
func (s *Style) FontSizeOr() float32 {
	if s == nil || s.FontSize <= 0 {
		return defaultFontSize
	}
	return s.FontSize
}

// LineHeightOr returns the resolved line-height multiplier.
func (s *Style) LineHeightOr() float32 {
	if s == nil || s.LineHeight <= 0 {
		return defaultLineHeight
	}
	return s.LineHeight
}

// ColSpanOr treats a 0 or negative span as 1.
func (s *Style) ColSpanOr() int {
	if s == nil || s.ColSpan < 1 {
		return 1
	}
	return s.ColSpan
}

func (s *Style) RowSpanOr() int {
	if s == nil || s.RowSpan < 1 {
		return 1
	}
	return s.RowSpan
}

// Sides groups a (top,right,bottom,left) resolution, the shape every
// per-side accessor below returns.
type Sides struct{ Top, Right, Bottom, Left float32 }

// PaddingTRBL resolves padding per side, falling back to the uniform
// `padding` field and then to 0, each resolved against parentWidth.
func (s *Style) PaddingTRBL(parentWidth float32) Sides {
	if s == nil {
		return Sides{}
	}
	uniform := s.Padding
	return Sides{
		Top: sideOr(s.PaddingTop, uniform, parentWidth),
		Right: sideOr(s.PaddingRight, uniform, parentWidth),
		Bottom: sideOr(s.PaddingBottom, uniform, parentWidth),
		Left: sideOr(s.PaddingLeft, uniform, parentWidth),
	}
}

// MarginTRBL resolves margin per side the same way as PaddingTRBL.
func (s *Style) MarginTRBL(parentWidth float32) Sides {
	if s == nil {
		return Sides{}
	}
	uniform := s.Margin
	return Sides{
		Top: sideOr(s.MarginTop, uniform, parentWidth),
		Right: sideOr(s.MarginRight, uniform, parentWidth),
		Bottom: sideOr(s.MarginBottom, uniform, parentWidth),
		Left: sideOr(s.MarginLeft, uniform, parentWidth),
	}
}

func sideOr(perSide, uniform Dimension, parentWidth float32) float32 {
	if perSide.Set() {
		return perSide.Resolve(parentWidth)
	}
	if uniform.Set() {
		return uniform.Resolve(parentWidth)
	}
	return 0
}

// BorderWidths returns per-side border widths: per-side field, else the
// uniform border_width, else the border.width shorthand, else 0.
func (s *Style) BorderWidths() Sides {
	if s == nil {
		return Sides{}
	}
	return Sides{
		Top: borderWidthOr(s.BorderTopWidth, s),
		Right: borderWidthOr(s.BorderRightWidth, s),
		Bottom: borderWidthOr(s.BorderBottomWidth, s),
		Left: borderWidthOr(s.BorderLeftWidth, s),
	}
}

func borderWidthOr(perSide *float32, s *Style) float32 {
	if perSide != nil {
		return *perSide
	}
	if s.BorderWidth != nil {
		return *s.BorderWidth
	}
	if s.Border != nil && s.Border.Width != nil {
		return *s.Border.Width
	}
	return 0
}

// ColorSides groups a per-side *Color resolution; nil means "no border
// drawn on that side" (as opposed to Sides, all-float sides always resolve).
type ColorSides struct{ Top, Right, Bottom, Left *Color }

// BorderColors: per-side color, else the uniform border_color, else the
// border.color shorthand, else nil (undrawn).
func (s *Style) BorderColors() ColorSides {
	if s == nil {
		return ColorSides{}
	}
	return ColorSides{
		Top: borderColorOr(s.BorderTopColor, s),
		Right: borderColorOr(s.BorderRightColor, s),
		Bottom: borderColorOr(s.BorderBottomColor, s),
		Left: borderColorOr(s.BorderLeftColor, s),
	}
}

func borderColorOr(perSide *Color, s *Style) *Color {
	if perSide != nil {
		return perSide
	}
	if s.BorderColor != nil {
		return s.BorderColor
	}
	if s.Border != nil && s.Border.Color != nil {
		return s.Border.Color
	}
	return nil
}

// Corners groups a (tl,tr,br,bl) resolution for border radii.
type Corners struct{ TopLeft, TopRight, BottomRight, BottomLeft float32 }

// BorderRadii: per-corner, else uniform border_radius, else border.radius, else 0.
func (s *Style) BorderRadii() Corners {
	if s == nil {
		return Corners{}
	}
	return Corners{
		TopLeft: radiusOr(s.BorderTopLeftRadius, s),
		TopRight: radiusOr(s.BorderTopRightRadius, s),
		BottomRight: radiusOr(s.BorderBottomRightRadius, s),
		BottomLeft: radiusOr(s.BorderBottomLeftRadius, s),
	}
}

func radiusOr(perCorner *float32, s *Style) float32 {
	if perCorner != nil {
		return *perCorner
	}
	if s.BorderRadius != nil {
		return *s.BorderRadius
	}
	if s.Border != nil && s.Border.Radius != nil {
		return *s.Border.Radius
	}
	return 0
}

// HasBorder reports whether any side has a positive width.
func (s *Style) HasBorder() bool {
	w := s.BorderWidths()
	return w.Top > 0 || w.Right > 0 || w.Bottom > 0 || w.Left > 0
}

// OpacityOr clamps the style's opacity to [0,1], defaulting to 1 when unset.
func (s *Style) OpacityOr() float32 {
	if s == nil || s.Opacity == nil {
		return 1
	}
	v := *s.Opacity
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampMinMax applies 's "min then max" rule: min(max(v,min),max).
func ClampMinMax(v float32, min, max Dimension, parentSize float32) float32 {
	if mn, ok := min.ResolveOptional(parentSize); ok && v < mn {
		v = mn
	}
	if mx, ok := max.ResolveOptional(parentSize); ok && v > mx {
		v = mx
	}
	return v
}
