package shape

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/nandemo-ya/dms-go/internal/common"
)

// Equal reports whether two shapes hold pairwise equal fields. Two nil
// shapes are equal; nil and non-nil are not. Timestamps compare by instant.
func Equal[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	// Compare the dereferenced values. The pointer types carry an Equal
	// method that calls back into this function.
	return cmp.Equal(*a, *b)
}

// Hash returns a hash code over the fields of a shape in declaration order:
// h = 31*h + hash(field), seeded at 1, with unset fields contributing 0.
// Shapes that are Equal hash equally. A nil shape hashes to 0.
func Hash(v any) int32 {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return 0
	}
	return hashValue(reflect.Indirect(rv))
}

func hashValue(v reflect.Value) int32 {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem())
	case reflect.Struct:
		if v.Type() == unixTimeType {
			t := v.Interface().(common.UnixTime)
			return 31*hashInt64(t.Unix()) + int32(t.Nanosecond())
		}
		h := int32(1)
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			h = 31*h + hashValue(v.Field(i))
		}
		return h
	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		h := int32(1)
		for i := 0; i < v.Len(); i++ {
			h = 31*h + hashValue(v.Index(i))
		}
		return h
	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		// Order independent, so equal maps hash equally.
		var h int32
		iter := v.MapRange()
		for iter.Next() {
			h += hashValue(iter.Key()) ^ hashValue(iter.Value())
		}
		return h
	case reflect.String:
		return hashString(v.String())
	case reflect.Bool:
		if v.Bool() {
			return 1231
		}
		return 1237
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashInt64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return hashInt64(int64(v.Uint()))
	case reflect.Float32, reflect.Float64:
		return hashInt64(int64(v.Float()))
	}
	return 0
}

func hashString(s string) int32 {
	var h int32
	for _, r := range s {
		h = 31*h + int32(r)
	}
	return h
}

func hashInt64(n int64) int32 {
	return int32(n ^ int64(uint64(n)>>32))
}
