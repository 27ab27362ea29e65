package cypher

import (
	"fmt"
	"reflect"
)

// Literal is a constant value rendered inline.
type Literal struct {
	value any
}

// NewLiteral wraps a copy of v. Supported values are nil, booleans,
// strings, integer and floating point numbers, and slices or arrays of those.
func NewLiteral(v any) *Literal {
	if err := checkLiteral(reflect.ValueOf(v)); err != nil {
		panic(err)
	}
	return &Literal{value: copyLiteral(v)}
}

// Value returns a copy of the wrapped Go value.
func (l *Literal) Value() any { return copyLiteral(l.value) }

// Accept implements Visitable.
func (l *Literal) Accept(v Visitor) {
	v.Enter(l)
	v.Leave(l)
}

func checkLiteral(rv reflect.Value) error {
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := checkLiteral(rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Interface:
		return checkLiteral(rv.Elem())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedLiteral, rv.Type())
	}
}

// copyLiteral returns v with every slice and array inside it copied, keeping
// the Go types.
func copyLiteral(v any) any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil
	}
	return deepCopy(rv).Interface()
}

func deepCopy(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(deepCopy(rv.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(deepCopy(rv.Index(i)))
		}
		return out
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(deepCopy(rv.Elem()))
		return out
	}
	return rv
}

// asExpression turns plain Go values into literals and passes expressions through.
func asExpression(v any) Expression {
	if e, ok := v.(Expression); ok {
		mustHave("expression", e)
		return e
	}
	return NewLiteral(v)
}
