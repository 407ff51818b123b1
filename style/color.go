package style

import "encoding/json"

// Color is sRGB with alpha in [0,1]; default alpha is 1.0 (opaque).
type Color struct {
	R, G, B uint8
	A float32
}

// Black returns opaque black, the text color the renderer uses when a node
// sets no color of its own.
func Black() Color { return Color{A: 1} }

type colorJSON struct {
	R *uint8 `json:"r"`
	G *uint8 `json:"g"`
	B *uint8 `json:"b"`
	A *float32 `json:"a"`
}

// UnmarshalJSON defaults alpha to 1.0 when the field is absent,
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw colorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := Color{A: 1}
	if raw.R != nil {
		out.R = *raw.R
	}
	if raw.G != nil {
		out.G = *raw.G
	}
	if raw.B != nil {
		out.B = *raw.B
	}
	if raw.A != nil {
		out.A = *raw.A
	}
	*c = out
	return nil
}
