//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2024 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

package query

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/CShorten/weaviate-go-client/entities/search"
)

// Typed pairs a caller-declared model with the object it was projected
// from, so metadata and references stay reachable.
type Typed[T any] struct {
	Model  T
	Object search.Object
}

// Project reshapes decoded objects into the caller's model type. It is a
// pure read-side transform over the canonical property bags: every exported
// model field must have a counterpart in the bag, otherwise the projection
// fails with a TypeMismatchError naming the field. T must be a struct type.
func Project[T any](objects []search.Object) ([]Typed[T], error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() != reflect.Struct {
		return nil, TypeMismatchError{Field: "", msg: "projection target must be a struct type"}
	}

	out := make([]Typed[T], 0, len(objects))
	for _, obj := range objects {
		model, err := projectOne[T](typ, obj.Properties)
		if err != nil {
			return nil, err
		}
		out = append(out, Typed[T]{Model: model, Object: obj})
	}
	return out, nil
}

func projectOne[T any](typ reflect.Type, bag search.PropertyBag) (T, error) {
	var model T

	for _, field := range reflect.VisibleFields(typ) {
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name, skip := fieldKey(field)
		if skip {
			continue
		}
		if !bagHasKey(bag, name) {
			return model, TypeMismatchError{
				Field: name,
				msg:   "not present in the decoded object",
			}
		}
	}

	data, err := json.Marshal(bag)
	if err != nil {
		return model, TypeMismatchError{msg: err.Error()}
	}
	if err := json.Unmarshal(data, &model); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return model, TypeMismatchError{
				Field: typeErr.Field,
				msg:   "cannot be decoded as " + typeErr.Type.String(),
			}
		}
		return model, TypeMismatchError{msg: err.Error()}
	}
	return model, nil
}

// fieldKey resolves the bag key a struct field binds to, honoring json tags
// the way encoding/json does.
func fieldKey(field reflect.StructField) (name string, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	if tag != "" {
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag != "" {
			return tag, false
		}
	}
	return field.Name, false
}

// bagHasKey matches case-insensitively, mirroring encoding/json's fallback
// field matching.
func bagHasKey(bag search.PropertyBag, name string) bool {
	if _, ok := bag[name]; ok {
		return true
	}
	for k := range bag {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}
