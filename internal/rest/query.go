package rest

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// EncodeQuery serializes a struct into URL query parameters, appending only
// fields whose value differs from the type's zero value. An input equal to
// its zero value in every field yields an empty string. Field names come
// from the json tag when present.
func EncodeQuery(input any) string {
	v := reflect.ValueOf(input)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}

	values := url.Values{}
	encodeFields(v, values)
	return values.Encode()
}

func encodeFields(v reflect.Value, values url.Values) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := v.Field(i)

		// Embedded structs flatten into the parent's parameters, even when
		// the embedded type itself is unexported.
		if field.Anonymous && fv.Kind() == reflect.Struct {
			encodeFields(fv, values)
			continue
		}
		if !field.IsExported() {
			continue
		}
		if fv.IsZero() {
			continue
		}

		name := queryName(field)
		if name == "" {
			continue
		}

		switch fv.Kind() {
		case reflect.Slice, reflect.Array:
			for j := 0; j < fv.Len(); j++ {
				values.Add(name, fmt.Sprint(fv.Index(j).Interface()))
			}
		case reflect.Struct, reflect.Map:
			// Nested aggregates have no flat query representation.
		default:
			values.Add(name, fmt.Sprint(fv.Interface()))
		}
	}
}

func queryName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
