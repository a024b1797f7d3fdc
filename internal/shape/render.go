// Package shape implements the behavior shared by every generated DMS
// shape: rendering, equality, hashing, collection copies and validation.
// The helpers work on any struct whose fields are pointers, slices, maps or
// nested shapes, which is how the code generator lays shapes out.
package shape

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/nandemo-ya/dms-go/internal/common"
)

var unixTimeType = reflect.TypeOf(common.UnixTime{})

// Render formats a shape as {Field1: value1,Field2: value2}. Unset fields
// are omitted and values are written without escaping.
func Render(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "null"
		}
		rv = rv.Elem()
	}
	var b strings.Builder
	renderValue(&b, rv)
	return b.String()
}

func renderValue(b *strings.Builder, v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			b.WriteString("null")
			return
		}
		renderValue(b, v.Elem())
	case reflect.Struct:
		if v.Type() == unixTimeType {
			b.WriteString(v.Interface().(common.UnixTime).String())
			return
		}
		renderStruct(b, v)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b.WriteString(base64.StdEncoding.EncodeToString(v.Bytes()))
			return
		}
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			renderValue(b, v.Index(i))
		}
		b.WriteByte(']')
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			renderValue(b, k)
			b.WriteByte('=')
			renderValue(b, v.MapIndex(k))
		}
		b.WriteByte('}')
	default:
		fmt.Fprint(b, v.Interface())
	}
}

func renderStruct(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	b.WriteByte('{')
	first := true
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		if isUnset(fv) {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(sf.Name)
		b.WriteString(": ")
		renderValue(b, fv)
	}
	b.WriteByte('}')
}

func isUnset(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	}
	return false
}
