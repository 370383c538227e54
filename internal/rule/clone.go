package rule

import "reflect"

// Clone creates a copy of a rule so that per-run settings never mutate
// the registered instance. Configurable rules are rebuilt from a zero
// value with their default settings applied; other pointer rules get a
// shallow struct copy.
func Clone(r Rule) Rule {
	rv := reflect.ValueOf(r)
	if rv.Kind() != reflect.Ptr {
		// Value type, already a copy.
		return r
	}

	newPtr := reflect.New(rv.Elem().Type())
	clone := newPtr.Interface().(Rule)

	if c, ok := r.(Configurable); ok {
		if cc, ok := clone.(Configurable); ok {
			_ = cc.ApplySettings(c.DefaultSettings())
		}
		return clone
	}

	newPtr.Elem().Set(rv.Elem())
	return clone
}
