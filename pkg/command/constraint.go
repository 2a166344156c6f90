package command

import "fmt"

// Constraint narrows the values Discord accepts for an option. A
// constraint only takes effect when it matches the option's declared
// kind; a mismatched constraint is ignored rather than rejected, so
// schemas stay declaration-order data.
type Constraint interface {
	appliesTo(Kind) bool
	apply(*wireOption)
}

// IntegerBounds is an inclusive value range for integer options.
type IntegerBounds struct {
	Min *int64
	Max *int64
}

// NewIntegerBounds builds an integer range. Either end may be nil for
// unbounded; a crossed range is a construction error.
func NewIntegerBounds(min, max *int64) (IntegerBounds, error) {
	if min != nil && max != nil && *min > *max {
		return IntegerBounds{}, fmt.Errorf("integer bounds: min %d > max %d", *min, *max)
	}
	return IntegerBounds{Min: min, Max: max}, nil
}

func (b IntegerBounds) appliesTo(k Kind) bool { return k == KindInt }

func (b IntegerBounds) apply(w *wireOption) {
	if b.Min != nil {
		v := float64(*b.Min)
		w.MinValue = &v
	}
	if b.Max != nil {
		v := float64(*b.Max)
		w.MaxValue = &v
	}
}

// FloatBounds is an inclusive value range for float options.
type FloatBounds struct {
	Min *float64
	Max *float64
}

// NewFloatBounds builds a float range. Either end may be nil for
// unbounded; a crossed range is a construction error.
func NewFloatBounds(min, max *float64) (FloatBounds, error) {
	if min != nil && max != nil && *min > *max {
		return FloatBounds{}, fmt.Errorf("float bounds: min %g > max %g", *min, *max)
	}
	return FloatBounds{Min: min, Max: max}, nil
}

func (b FloatBounds) appliesTo(k Kind) bool { return k == KindFloat }

func (b FloatBounds) apply(w *wireOption) {
	w.MinValue = b.Min
	w.MaxValue = b.Max
}

// StringBounds is an inclusive length range for string options.
type StringBounds struct {
	MinLength *int
	MaxLength *int
}

// NewStringBounds builds a string length range. Either end may be nil
// for unbounded; a crossed range is a construction error.
func NewStringBounds(minLength, maxLength *int) (StringBounds, error) {
	if minLength != nil && maxLength != nil && *minLength > *maxLength {
		return StringBounds{}, fmt.Errorf("string bounds: min length %d > max length %d", *minLength, *maxLength)
	}
	return StringBounds{MinLength: minLength, MaxLength: maxLength}, nil
}

func (b StringBounds) appliesTo(k Kind) bool { return k == KindString }

func (b StringBounds) apply(w *wireOption) {
	w.MinLength = b.MinLength
	w.MaxLength = b.MaxLength
}

// IntPtr is a convenience for literal bounds.
func IntPtr(v int64) *int64 { return &v }

// FloatPtr is a convenience for literal bounds.
func FloatPtr(v float64) *float64 { return &v }

// LenPtr is a convenience for literal length bounds.
func LenPtr(v int) *int { return &v }
