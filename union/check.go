//go:build !union_nocheck

package union

import (
	"fmt"
	"reflect"
)

func checkBlittable[T any]() {
	t := reflect.TypeFor[T]()
	if !IsBlittable(t) {
		panic(fmt.Sprintf("union: %v contains pointers and cannot be stored in a cell", t))
	}
}
