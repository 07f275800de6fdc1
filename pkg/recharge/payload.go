package recharge

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Shape is the JSON shape a caller expects to find in a response envelope.
type Shape int

const (
	// ShapeObject expects a JSON object.
	ShapeObject Shape = iota
	// ShapeArray expects a JSON array.
	ShapeArray
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeObject:
		return "object"
	case ShapeArray:
		return "array"
	default:
		return "Shape(" + strconv.Itoa(int(s)) + ")"
	}
}

// Object is a decoded JSON object returned by the API. Resource payloads are
// passed through untouched; use Decode to map one into a typed record.
type Object map[string]interface{}

// Decode re-encodes the object into v, which must be a pointer.
func (o Object) Decode(v interface{}) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encoding object: %w", err)
	}

	err = json.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("decoding object: %w", err)
	}

	return nil
}

// Field returns the value stored under key formatted as a string, or "" when absent.
func (o Object) Field(key string) string {
	value, ok := o[key]
	if !ok || value == nil {
		return ""
	}

	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	case json.Number:
		return typed.String()
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}

		return string(data)
	}
}

// DecodeAll decodes every object into a slice of T.
func DecodeAll[T any](objects []Object) ([]T, error) {
	result := make([]T, 0, len(objects))

	for _, object := range objects {
		var item T

		err := object.Decode(&item)
		if err != nil {
			return nil, err
		}

		result = append(result, item)
	}

	return result, nil
}

// Query holds list filters. Values are sent as query string parameters.
type Query map[string]string

// NewQuery returns an empty query.
func NewQuery() Query {
	return Query{}
}

// WithLimit sets the page size.
func (q Query) WithLimit(limit int) Query {
	q["limit"] = strconv.Itoa(limit)

	return q
}

// WithCursor sets the cursor of a 2021-11 list request.
func (q Query) WithCursor(cursor string) Query {
	q["cursor"] = cursor

	return q
}

// WithPage sets the page of a 2021-01 list request.
func (q Query) WithPage(page int) Query {
	q["page"] = strconv.Itoa(page)

	return q
}

// With sets an arbitrary filter.
func (q Query) With(key, value string) Query {
	q[key] = value

	return q
}

// ToValues converts the query to url.Values. A nil query yields nil.
func (q Query) ToValues() url.Values {
	if q == nil {
		return nil
	}

	values := url.Values{}
	for key, value := range q {
		values.Set(key, value)
	}

	return values
}

// TokenClient describes the application that owns a token.
type TokenClient struct {
	Name         string `json:"name"          yaml:"name"`
	ContactEmail string `json:"contact_email" yaml:"contact_email"`
}

// TokenInformation is the payload of GET /token_information.
type TokenInformation struct {
	Client       *TokenClient `json:"client,omitempty" yaml:"client,omitempty"`
	ContactEmail string       `json:"contact_email"    yaml:"contact_email"`
	Name         string       `json:"name"             yaml:"name"`
	Scopes       []Scope      `json:"scopes"           yaml:"scopes"`
}

// HasScope reports whether the token was granted scope.
func (t *TokenInformation) HasScope(scope Scope) bool {
	for _, granted := range t.Scopes {
		if granted == scope {
			return true
		}
	}

	return false
}
