// Package json wraps the stdlib decoder with generic helpers and verification that the keys a response type
// depends on were actually sent by the server.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	ErrDecodeJSON   = errors.New("failed to decode JSON")
	ErrMissingField = errors.New("required field missing")
	ErrInvalidJSON  = errors.New("invalid JSON document")
)

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// Decode is a generic version of the stdlib json decoder.
func Decode[T any](reader io.Reader) (T, error) {
	var value T
	if err := json.NewDecoder(reader).Decode(&value); err != nil {
		return value, errors.Join(err, ErrDecodeJSON)
	}

	return value, nil
}

// Unmarshal decodes body into a T and then checks that every required field of T was present and non-null.
// Unknown keys are ignored.
//
// A field is required when its type is not a pointer and its json tag does not carry omitempty.
func Unmarshal[T any](body []byte) (T, error) {
	var value T

	if !gjson.ValidBytes(body) {
		return value, errors.Join(ErrInvalidJSON, ErrDecodeJSON)
	}

	if err := json.Unmarshal(body, &value); err != nil {
		return value, errors.Join(err, ErrDecodeJSON)
	}

	if err := checkRequired(reflect.TypeFor[T](), gjson.ParseBytes(body), ""); err != nil {
		return value, errors.Join(err, ErrDecodeJSON)
	}

	return value, nil
}

func checkRequired(valueType reflect.Type, result gjson.Result, path string) error {
	if valueType.Implements(unmarshalerType) || reflect.PointerTo(valueType).Implements(unmarshalerType) {
		return nil
	}

	switch valueType.Kind() { //nolint:exhaustive
	case reflect.Pointer:
		if result.Type == gjson.Null {
			return nil
		}

		return checkRequired(valueType.Elem(), result, path)
	case reflect.Struct:
		if !result.IsObject() {
			return nil
		}

		return checkStruct(valueType, objectKeys(result), path)
	case reflect.Slice, reflect.Array:
		if !result.IsArray() {
			return nil
		}

		for idx, elem := range result.Array() {
			if err := checkRequired(valueType.Elem(), elem, path+"["+strconv.Itoa(idx)+"]"); err != nil {
				return err
			}
		}
	case reflect.Map:
		if !result.IsObject() {
			return nil
		}

		var errElem error

		result.ForEach(func(key, elem gjson.Result) bool {
			errElem = checkRequired(valueType.Elem(), elem, joinPath(path, key.String()))

			return errElem == nil
		})

		return errElem
	}

	return nil
}

func checkStruct(structType reflect.Type, keys map[string]gjson.Result, path string) error {
	for idx := range structType.NumField() {
		field := structType.Field(idx)
		if !field.IsExported() {
			continue
		}

		name, opts, hasTag := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}

		if field.Anonymous && name == "" && field.Type.Kind() == reflect.Struct {
			if err := checkStruct(field.Type, keys, path); err != nil {
				return err
			}

			continue
		}

		if name == "" {
			name = field.Name
		}

		optional := field.Type.Kind() == reflect.Pointer || (hasTag && hasOption(opts, "omitempty"))

		value, found := keys[strings.ToLower(name)]
		if !found || value.Type == gjson.Null {
			if optional {
				continue
			}

			return fmt.Errorf("%w: %s", ErrMissingField, joinPath(path, name))
		}

		if err := checkRequired(field.Type, value, joinPath(path, name)); err != nil {
			return err
		}
	}

	return nil
}

// objectKeys indexes the members of a JSON object by lower cased key, mirroring the case-insensitive key
// matching encoding/json performs.
func objectKeys(result gjson.Result) map[string]gjson.Result {
	keys := map[string]gjson.Result{}

	result.ForEach(func(key, value gjson.Result) bool {
		keys[strings.ToLower(key.String())] = value

		return true
	})

	return keys
}

func hasOption(opts string, option string) bool {
	for opts != "" {
		var current string

		current, opts, _ = strings.Cut(opts, ",")
		if current == option {
			return true
		}
	}

	return false
}

func joinPath(path string, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}
