package circuit

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Value is a witness cell value that may not be known yet.
//
// During shape-only synthesis (layout analysis without a concrete witness)
// every advice value is Unknown; during witness-bearing synthesis the same
// code paths run with Known values. Arithmetic on Values propagates
// Unknown-ness, with one exception: multiplication by a Known zero is a
// Known zero. That exception is what makes a disabled selector deactivate
// a gate even when the gate's advice operands are Unknown.
type Value struct {
	known bool
	inner field.Element
}

// Known wraps a field element into a known Value.
func Known(e field.Element) Value {
	return Value{known: true, inner: e}
}

// KnownUint64 wraps a small integer into a known Value.
func KnownUint64(v uint64) Value {
	return Known(field.New(v))
}

// Unknown returns the not-yet-assigned Value.
func Unknown() Value {
	return Value{}
}

// IsKnown reports whether the value has been assigned.
func (v Value) IsKnown() bool {
	return v.known
}

// Get returns the underlying field element and whether it is known.
func (v Value) Get() (field.Element, bool) {
	return v.inner, v.known
}

// Add returns v + other, Unknown if either operand is Unknown.
func (v Value) Add(other Value) Value {
	if !v.known || !other.known {
		return Unknown()
	}
	return Known(v.inner.Add(other.inner))
}

// Sub returns v - other, Unknown if either operand is Unknown.
func (v Value) Sub(other Value) Value {
	if !v.known || !other.known {
		return Unknown()
	}
	return Known(v.inner.Sub(other.inner))
}

// Neg returns -v, Unknown if v is Unknown.
func (v Value) Neg() Value {
	if !v.known {
		return Unknown()
	}
	return Known(v.inner.Neg())
}

// Mul returns v * other.
//
// A Known zero on either side absorbs: the result is Known zero regardless
// of the other operand. Otherwise Unknown propagates.
func (v Value) Mul(other Value) Value {
	if v.known && v.inner.IsZero() {
		return Known(field.Zero)
	}
	if other.known && other.inner.IsZero() {
		return Known(field.Zero)
	}
	if !v.known || !other.known {
		return Unknown()
	}
	return Known(v.inner.Mul(other.inner))
}

// IsZero reports whether the value is a Known zero.
func (v Value) IsZero() bool {
	return v.known && v.inner.IsZero()
}

// Equal reports whether both values are Known and equal.
func (v Value) Equal(other Value) bool {
	return v.known && other.known && v.inner.Equal(other.inner)
}

// String returns "?" for Unknown values and the element otherwise.
func (v Value) String() string {
	if !v.known {
		return "?"
	}
	return fmt.Sprintf("%d", v.inner.Value())
}
