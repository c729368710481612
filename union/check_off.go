//go:build union_nocheck

package union

// checkBlittable is compiled out by the union_nocheck build tag; storing a
// pointer-carrying type is then undefined behavior.
func checkBlittable[T any]() {}
