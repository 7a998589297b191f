package driver

import "reflect"

// IsNil reports whether v is nil or an interface holding a nil pointer, map,
// slice, channel or func. Collaborator checks use it so a typed nil such as
// (*myTexture)(nil) is rejected where it is handed in.
//
// Parameters:
//   - v: the value to check
//
// Returns:
//   - bool: true if v is nil or holds a nil reference
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
