package resolve

import (
	"reflect"
)

// Accessor gives access to the live parameter values of a component
// instance. Lookup returns nil for unknown properties.
type Accessor interface {
	Lookup(property string) any
}

// Params is an accessor over a map of parameter values.
type Params map[string]any

// Lookup is part of interface Accessor.
func (p Params) Lookup(property string) any {
	return p[property]
}

// Struct returns an accessor reading exported fields of a struct or a
// pointer to a struct. Fields promoted from embedded structs are found
// with Go's usual selector rules; if a name is ambiguous, the last embedded
// struct declaring it wins.
func Struct(x any) Accessor {
	v := reflect.ValueOf(x)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	return structAccessor{v: v}
}

type structAccessor struct {
	v reflect.Value
}

func (s structAccessor) Lookup(property string) any {
	if s.v.Kind() != reflect.Struct {
		return nil
	}
	f, ok := field(s.v, property)
	if !ok || !f.CanInterface() {
		return nil
	}
	return f.Interface()
}

func field(v reflect.Value, name string) (reflect.Value, bool) {
	if sf, ok := v.Type().FieldByName(name); ok {
		f, err := v.FieldByIndexErr(sf.Index)
		return f, err == nil
	}
	// not found or ambiguous: search embedded structs, last one first
	for i := v.NumField() - 1; i >= 0; i-- {
		sf := v.Type().Field(i)
		if !sf.Anonymous {
			continue
		}
		e := v.Field(i)
		for e.Kind() == reflect.Pointer {
			if e.IsNil() {
				break
			}
			e = e.Elem()
		}
		if e.Kind() != reflect.Struct {
			continue
		}
		if f, ok := field(e, name); ok {
			return f, true
		}
	}
	return reflect.Value{}, false
}
