package util

import (
	"fmt"
	"reflect"
	"runtime"
	"sort"
)

type flattener struct {
	rows map[string]string
}

// FlattenStruct walks a struct and returns its exported leaf fields as sorted
// dotted-path key value rows, meant for config describe tables.
func FlattenStruct(path string, v interface{}) [][]string {
	f := flattener{rows: make(map[string]string)}
	f.walk(path, reflect.ValueOf(v))
	return f.sorted()
}

func (f *flattener) sorted() [][]string {
	keys := make([]string, 0, len(f.rows))
	for k := range f.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rows [][]string
	for _, k := range keys {
		rows = append(rows, []string{k, f.rows[k]})
	}
	return rows
}

func (f *flattener) walk(parent string, v reflect.Value) {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if !v.IsValid() || v.IsZero() {
		return
	}

	types := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		path := types.Field(i).Name

		if !field.CanInterface() {
			continue
		}

		if parent != `` {
			path = parent + `.` + path
		}

		if field.Kind() == reflect.Interface && field.IsNil() {
			f.rows[path] = `<nil>`
			continue
		}

		if field.NumMethod() > 0 {
			empty := reflect.Value{}
			if m := field.MethodByName(`String`); m != empty {
				f.rows[path] = m.Call(nil)[0].String()
				continue
			}
		}

		if field.Kind() == reflect.Ptr || field.Kind() == reflect.Struct {
			f.walk(path, field)
			continue
		}

		f.rows[path] = f.toString(field)
	}
}

func (f *flattener) toString(value reflect.Value) string {
	switch value.Kind() {
	case reflect.Map, reflect.Array, reflect.Slice:
		return fmt.Sprintf(`%+v`, value)
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf(`%d`, value.Int())
	case reflect.Bool:
		return fmt.Sprint(value.Bool())
	case reflect.Float32, reflect.Float64:
		return fmt.Sprint(value.Float())
	case reflect.Func:
		return runtime.FuncForPC(value.Pointer()).Name()
	default:
		return value.String()
	}
}
