// Package style decodes and resolves the CSS-like style bag attached to
// every node in the document tree.
package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DimensionKind distinguishes an absolute point value from a percentage of
// some parent extent, or the absence of a value entirely.
type DimensionKind int

const (
	// Unset means the field was not present in the input; callers fall
	// back to the field's documented default.
	Unset DimensionKind = iota
	DimPt
	DimPercent
)

// Dimension is a tagged value: an absolute point amount or a percentage
// (0-100) of a parent dimension.
type Dimension struct {
	Kind DimensionKind
	Value float32
}

// Pt builds an absolute-point Dimension.
func Pt(v float32) Dimension { return Dimension{Kind: DimPt, Value: v} }

// Percent builds a percentage Dimension (v in 0-100).
func Percent(v float32) Dimension { return Dimension{Kind: DimPercent, Value: v} }

// Set reports whether the dimension was present in the input.
func (d Dimension) Set() bool { return d.Kind != Unset }

// Resolve converts the dimension to points against parentSize.
// An unset dimension, or a percentage with a non-positive parent extent,
// resolves to 0.
func (d Dimension) Resolve(parentSize float32) float32 {
	switch d.Kind {
	case DimPt:
		return d.Value
	case DimPercent:
		if parentSize <= 0 {
			return 0
		}
		return parentSize * d.Value / 100
	default:
		return 0
	}
}

// ResolveOptional is like Resolve but also reports whether a value was
// present, letting callers distinguish "explicitly zero" from "absent".
func (d Dimension) ResolveOptional(parentSize float32) (float32, bool) {
	if !d.Set() {
		return 0, false
	}
	return d.Resolve(parentSize), true
}

// UnmarshalJSON accepts a bare number (points) or a percent string like
// "50%", matching the original's untagged Dimension deserialization.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*d = Dimension{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("dimension: %w", err)
		}
		s = strings.TrimSpace(s)
		if strings.HasSuffix(s, "%") {
			v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 32)
			if err != nil {
				return fmt.Errorf("dimension: invalid percent %q: %w", s, err)
			}
			*d = Percent(float32(v))
			return nil
		}
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("dimension: invalid numeric string %q: %w", s, err)
		}
		*d = Pt(float32(v))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("dimension: %w", err)
	}
	*d = Pt(float32(v))
	return nil
}

func (d Dimension) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DimPt:
		return json.Marshal(d.Value)
	case DimPercent:
		return json.Marshal(fmt.Sprintf("%g%%", d.Value))
	default:
		return []byte("null"), nil
	}
}
