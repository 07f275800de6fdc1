package http

import (
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// Payload is the value extracted from a response envelope. Exactly one of
// Object and Array is meaningful, selected by Shape.
type Payload struct {
	Shape  recharge.Shape
	Object recharge.Object
	Array  []recharge.Object
}

// emptyPayload returns an empty value of the given shape.
func emptyPayload(shape recharge.Shape) Payload {
	if shape == recharge.ShapeArray {
		return Payload{Shape: shape, Array: []recharge.Object{}}
	}

	return Payload{Shape: shape, Object: recharge.Object{}}
}

// decodeBody decodes a JSON body. ok is false for empty or invalid JSON.
func decodeBody(body []byte) (interface{}, bool) {
	if len(body) == 0 {
		return nil, false
	}

	var decoded interface{}

	err := json.Unmarshal(body, &decoded)
	if err != nil {
		return nil, false
	}

	return decoded, true
}

// extract selects the value under key and validates it against shape.
// An empty key selects the whole body. A key absent from an object body
// also selects the whole body.
func extract(decoded interface{}, key string, shape recharge.Shape) (Payload, error) {
	value := decoded

	if key != "" {
		if object, ok := decoded.(map[string]interface{}); ok {
			if nested, found := object[key]; found {
				value = nested
			}
		}
	}

	switch shape {
	case recharge.ShapeObject:
		object, ok := value.(map[string]interface{})
		if !ok {
			return Payload{}, &recharge.ShapeMismatchError{Key: key, Expected: shape, Actual: jsonType(value)}
		}

		return Payload{Shape: shape, Object: object}, nil

	case recharge.ShapeArray:
		items, ok := value.([]interface{})
		if !ok {
			return Payload{}, &recharge.ShapeMismatchError{Key: key, Expected: shape, Actual: jsonType(value)}
		}

		array, err := toObjects(key, items)
		if err != nil {
			return Payload{}, err
		}

		return Payload{Shape: shape, Array: array}, nil

	default:
		return Payload{}, fmt.Errorf("%w: %s", recharge.ErrShapeMismatch, shape)
	}
}

func toObjects(key string, items []interface{}) ([]recharge.Object, error) {
	objects := make([]recharge.Object, 0, len(items))

	for _, item := range items {
		object, ok := item.(map[string]interface{})
		if !ok {
			return nil, &recharge.ShapeMismatchError{
				Key:      key + "[]",
				Expected: recharge.ShapeObject,
				Actual:   jsonType(item),
			}
		}

		objects = append(objects, object)
	}

	return objects, nil
}

// arrayAt returns the objects under key, or nil when the key is absent or
// does not hold an array. Elements that are not objects are left out and
// counted in skipped.
func arrayAt(decoded interface{}, key string) (objects []recharge.Object, skipped int) {
	value := decoded

	if key != "" {
		object, ok := decoded.(map[string]interface{})
		if !ok {
			return nil, 0
		}

		value, ok = object[key]
		if !ok {
			return nil, 0
		}
	}

	items, ok := value.([]interface{})
	if !ok {
		return nil, 0
	}

	objects = make([]recharge.Object, 0, len(items))

	for _, item := range items {
		object, ok := item.(map[string]interface{})
		if !ok {
			skipped++

			continue
		}

		objects = append(objects, object)
	}

	return objects, skipped
}

func jsonType(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// decodeErrorBody decodes an error body as JSON, falling back to raw text.
func decodeErrorBody(body []byte) interface{} {
	decoded, ok := decodeBody(body)
	if !ok {
		return string(body)
	}

	return decoded
}
