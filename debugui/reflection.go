package debugui

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

type FieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
	IsStruct  bool
}

// ReflectionCache remembers the exported fields of each struct type so an
// inspector does not walk the type on every frame.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}

			ft := f.Type
			isPointer := ft.Kind() == reflect.Pointer
			if isPointer {
				ft = ft.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      f.Name,
				Index:     i,
				IsPointer: isPointer,
				IsStruct:  ft.Kind() == reflect.Struct,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

var stringerType = reflect.TypeFor[fmt.Stringer]()

// structFields flattens v into table rows. Nested structs are labelled with
// their dotted path and a nil pointer shows as "nil".
func structFields(v any) []field {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	var out []field
	appendFields(&out, "", val)
	return out
}

func appendFields(out *[]field, prefix string, val reflect.Value) {
	for _, f := range globalReflectionCache.GetFields(val.Type()) {
		name := prefix + f.Name
		fv := val.Field(f.Index)
		if f.IsPointer {
			if fv.IsNil() {
				*out = append(*out, field{name, "nil"})
				continue
			}
			fv = fv.Elem()
		}
		if f.IsStruct && !fv.Type().Implements(stringerType) {
			appendFields(out, name+".", fv)
			continue
		}
		*out = append(*out, field{name, formatValue(fv)})
	}
}

func formatValue(val reflect.Value) string {
	if val.Type().Implements(stringerType) {
		return val.Interface().(fmt.Stringer).String()
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(val.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(val.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(val.Float(), 'f', 2, 64)
	case reflect.Bool:
		return strconv.FormatBool(val.Bool())
	case reflect.String:
		return val.String()
	case reflect.Slice:
		return fmt.Sprintf("[%d items]", val.Len())
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", val.Len())
	default:
		return fmt.Sprintf("%v", val.Interface())
	}
}
