// Package value defines the document tree produced by parsing: a closed
// tagged union of null, boolean, number, string, array, and object.
// Trees are finite and acyclic; containers exclusively own their children.
package value

// Value is one node of a document tree.
type Value interface {
	isValue()
}

// Null is the null literal.
type Null struct{}

// Bool is a boolean literal.
type Bool bool

// Number is a numeric literal; the dialect carries all numbers as float64.
type Number float64

// String is a string literal with escapes already decoded.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Object maps text keys to values. Keys are unique by construction: when a
// key appears twice in one literal, the later occurrence overwrites the
// earlier one (last-write-wins). Member order is not preserved.
type Object map[string]Value

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Get returns the member under key, or nil if absent.
func (o Object) Get(key string) Value {
	return o[key]
}

// GetString returns the member under key if it is a string.
func (o Object) GetString(key string) (string, bool) {
	s, ok := o[key].(String)
	return string(s), ok
}

// GetNumber returns the member under key if it is a number.
func (o Object) GetNumber(key string) (float64, bool) {
	n, ok := o[key].(Number)
	return float64(n), ok
}

// GetBool returns the member under key if it is a boolean.
func (o Object) GetBool(key string) (bool, bool) {
	b, ok := o[key].(Bool)
	return bool(b), ok
}

// GetArray returns the member under key if it is an array.
func (o Object) GetArray(key string) (Array, bool) {
	a, ok := o[key].(Array)
	return a, ok
}

// GetObject returns the member under key if it is an object.
func (o Object) GetObject(key string) (Object, bool) {
	m, ok := o[key].(Object)
	return m, ok
}

// Equal reports structural equality of two trees. Object members are
// compared as a set since member order is not guaranteed.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !Equal(v, bvv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
