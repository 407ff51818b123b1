package style

import "encoding/json"

// Direction is the flex main axis; its zero value is Column, the documented default.
type Direction int

const (
	Column Direction = iota
	Row
)

// MainAlign distributes flow children along the main axis; zero value Start.
type MainAlign int

const (
	MainStart MainAlign = iota
	MainCenter
	MainEnd
	MainSpaceBetween
	MainSpaceAround
	MainSpaceEvenly
)

// CrossAlign positions flow children on the cross axis; zero value Start.
type CrossAlign int

const (
	CrossStart CrossAlign = iota
	CrossCenter
	CrossEnd
	CrossStretch
)

// PositionMode; zero value Static.
type PositionMode int

const (
	Static PositionMode = iota
	Relative
	Absolute
)

// TextAlign; zero value Left.
type TextAlign int

const (
	TextLeft TextAlign = iota
	TextCenter
	TextRight
	TextJustify
)

// FontWeight; zero value Normal.
type FontWeight int

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// FontStyle; zero value Normal.
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleItalic
)

// ObjectFit; zero value Contain, the documented default.
type ObjectFit int

const (
	FitContain ObjectFit = iota
	FitCover
	FitFill
	FitNone
	FitScaleDown
)

func unmarshalEnum(data []byte, table map[string]int) (int, bool, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, false, err
	}
	v, ok := table[s]
	return v, ok, nil
}

var directionTable = map[string]int{"row": int(Row), "column": int(Column)}
var mainAlignTable = map[string]int{
	"start": int(MainStart), "center": int(MainCenter), "end": int(MainEnd),
	"space-between": int(MainSpaceBetween), "space-around": int(MainSpaceAround), "space-evenly": int(MainSpaceEvenly),
}
var crossAlignTable = map[string]int{
	"start": int(CrossStart), "center": int(CrossCenter), "end": int(CrossEnd), "stretch": int(CrossStretch),
}
var positionTable = map[string]int{"static": int(Static), "relative": int(Relative), "absolute": int(Absolute)}
var textAlignTable = map[string]int{"left": int(TextLeft), "center": int(TextCenter), "right": int(TextRight), "justify": int(TextJustify)}
var fontWeightTable = map[string]int{"normal": int(WeightNormal), "bold": int(WeightBold)}
var fontStyleTable = map[string]int{"normal": int(StyleNormal), "italic": int(StyleItalic)}
var objectFitTable = map[string]int{
	"cover": int(FitCover), "contain": int(FitContain), "fill": int(FitFill), "none": int(FitNone), "scale-down": int(FitScaleDown),
}

func (d *Direction) UnmarshalJSON(data []byte) error {
	v, ok, err := unmarshalEnum(data, directionTable)
	if err != nil {
		return err
	}
	if ok {
		*d = Direction(v)
	}
	return nil
}

func (m *MainAlign) UnmarshalJSON(data []byte) error {
	v, ok, err := unmarshalEnum(data, mainAlignTable)
	if err != nil {
		return err
	}
	if ok {
		*m = MainAlign(v)
	}
	return nil
}

func (c *CrossAlign) UnmarshalJSON(data []byte) error {
	v, ok, err := unmarshalEnum(data, crossAlignTable)
	if err != nil {
		return err
	}
	if ok {
		*c = CrossAlign(v)
	}
	return nil
}

func (p *PositionMode) UnmarshalJSON(data []byte) error {
	v, ok, err := unmarshalEnum(data, positionTable)
	if err != nil {
		return err
	}
	if ok {
		*p = PositionMode(v)
	}
	return nil
}

func (t *TextAlign) UnmarshalJSON(data []byte) error {
	v, ok, err := unmarshalEnum(data, textAlignTable)
	if err != nil {
		return err
	}
	if ok {
		*t = TextAlign(v)
	}
	return nil
}

func (f *FontWeight) UnmarshalJSON(data []byte) error {
	v, ok, err := unmarshalEnum(data, fontWeightTable)
	if err != nil {
		return err
	}
	if ok {
		*f = FontWeight(v)
	}
	return nil
}

func (f *FontStyle) UnmarshalJSON(data []byte) error {
	v, ok, err := unmarshalEnum(data, fontStyleTable)
	if err != nil {
		return err
	}
	if ok {
		*f = FontStyle(v)
	}
	return nil
}

func (o *ObjectFit) UnmarshalJSON(data []byte) error {
	v, ok, err := unmarshalEnum(data, objectFitTable)
	if err != nil {
		return err
	}
	if ok {
		*o = ObjectFit(v)
	}
	return nil
}
