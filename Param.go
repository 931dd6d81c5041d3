// Package param converts raw request text (path, query, header, form values)
// into typed values, and converts parse failures into fully formed HTTP error
// responses. A router or handler extracts the raw string, hands it to a
// Type, and receives either a Param holding the typed value or an
// ErrorResponse ready to terminate the request.
package param

import (
	"fmt"
	"hash/fnv"
)

// Param is a request parameter that was successfully parsed into a typed
// value. Params are only produced by Type.Bind, so holding one means parsing
// succeeded; there is no partially-parsed state. The zero Param carries no
// kind and is not meaningful.
type Param[T comparable] struct {
	kind  string
	value T
}

// Get returns the parsed value.
func (p Param[T]) Get() T {
	return p.value
}

// String returns the text representation of the parsed value.
func (p Param[T]) String() string {
	return fmt.Sprint(p.value)
}

// Equal reports whether both params came from the same kind of parameter
// type and wrap equal values. Params of different kinds are never equal,
// even when the wrapped values match.
func (p Param[T]) Equal(other Param[T]) bool {
	return p.kind == other.kind && p.value == other.value
}

// Hash returns a hash consistent with Equal: params that compare equal
// hash identically. FNV-1a over the kind and the value's text form.
func (p Param[T]) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(p.kind))
	h.Write([]byte{0})
	fmt.Fprint(h, p.value)
	return h.Sum64()
}
