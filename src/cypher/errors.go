package cypher

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInconsistentTree reports a composite whose children do not match
	// what it was built with, such as a nil child.
	ErrInconsistentTree = errors.New("cypher: inconsistent statement tree")

	// ErrInvalidArgument reports a constructor argument that cannot form a valid node.
	ErrInvalidArgument = errors.New("cypher: invalid argument")

	// ErrDuplicateKey reports a map expression built with the same key twice.
	ErrDuplicateKey = errors.New("cypher: duplicate map key")

	// ErrUnsupportedLiteral reports a Go value that has no Cypher literal form.
	ErrUnsupportedLiteral = errors.New("cypher: unsupported literal type")
)

// isNil reports whether v is nil or a typed nil pointer hidden in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func mustHave(what string, v any) {
	if isNil(v) {
		panic(fmt.Errorf("%w: %s is required", ErrInvalidArgument, what))
	}
}

func mustNotBeEmpty(what, value string) {
	if value == "" {
		panic(fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, what))
	}
}
