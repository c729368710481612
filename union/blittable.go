package union

import (
	"reflect"
	"sync"
)

// blittableTypes caches the pointer-freedom verdict per type.
var blittableTypes sync.Map // reflect.Type -> bool

// IsBlittable reports whether t can be stored in a cell: its values contain no
// pointers the garbage collector would need to trace.
func IsBlittable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if v, ok := blittableTypes.Load(t); ok {
		return v.(bool)
	}

	ok := isBlittable(t)
	blittableTypes.Store(t, ok)

	return ok
}

func isBlittable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || isBlittable(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !isBlittable(t.Field(i).Type) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
