package domain

import (
	"errors"
	"fmt"
	"strconv"
)

type SelectionKind string

const (
	SelectionDigit SelectionKind = "digit"
	SelectionColor SelectionKind = "color"
	SelectionSize  SelectionKind = "size"
)

var ErrMalformedSelection = errors.New("malformed selection")

// Selection is a tagged variant: exactly one of an exact digit, a color
// or a size. Match logic dispatches on Kind, never on the raw value.
type Selection struct {
	Kind  SelectionKind
	Digit int
	Color Color
	Size  Size
}

// ParseSelection accepts the wire form of a selection: "0".."9", a color
// name or a size name.
func ParseSelection(s string) (Selection, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 9 {
			return Selection{}, fmt.Errorf("%w: digit %d out of range", ErrMalformedSelection, n)
		}
		return Selection{Kind: SelectionDigit, Digit: n}, nil
	}
	switch s {
	case string(ColorRed), string(ColorGreen), string(ColorViolet):
		return Selection{Kind: SelectionColor, Color: Color(s)}, nil
	case string(SizeSmall), string(SizeBig):
		return Selection{Kind: SelectionSize, Size: Size(s)}, nil
	}
	return Selection{}, fmt.Errorf("%w: %q", ErrMalformedSelection, s)
}

// SelectionFrom rebuilds a selection from its stored (kind, value) pair.
func SelectionFrom(kind SelectionKind, value string) (Selection, error) {
	sel, err := ParseSelection(value)
	if err != nil {
		return Selection{}, err
	}
	if sel.Kind != kind {
		return Selection{}, fmt.Errorf("%w: value %q does not match kind %q", ErrMalformedSelection, value, kind)
	}
	return sel, nil
}

// Value returns the wire/storage form of the selection.
func (s Selection) Value() string {
	switch s.Kind {
	case SelectionDigit:
		return strconv.Itoa(s.Digit)
	case SelectionColor:
		return string(s.Color)
	default:
		return string(s.Size)
	}
}

// Payout multipliers. A violet color hit pays more because violet covers
// only two digits.
const (
	DigitMultiplier       = 9
	VioletColorMultiplier = 4.5
	ColorMultiplier       = 2
	SizeMultiplier        = 2
)

// Match reports whether the selection wins against the outcome and the
// payout multiplier that applies. Checked in fixed precedence: exact
// digit, then color, then size; the tag guarantees a selection of one
// kind never matches through another kind's rule.
func (s Selection) Match(o *Outcome) (bool, float64) {
	switch s.Kind {
	case SelectionDigit:
		if s.Digit == o.Number {
			return true, DigitMultiplier
		}
	case SelectionColor:
		if s.Color == o.Color {
			if o.Color == ColorViolet {
				return true, VioletColorMultiplier
			}
			return true, ColorMultiplier
		}
	case SelectionSize:
		if s.Size == o.Size {
			return true, SizeMultiplier
		}
	}
	return false, 0
}
