package blogger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Field names used by the Blogger Posts API.
const (
	FieldID        = "id"
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldPublished = "published"
	FieldUpdated   = "updated"
	FieldAuthor    = "author"
	// FieldLabels is spelled the way existing exports processed by this tool spell it.
	FieldLabels = "lables"

	FieldDisplayName = "displayName"
)

// ErrMissingField is returned when a required field is absent from a post.
var ErrMissingField = errors.New("missing field")

// ErrWrongType is returned when a field holds a JSON value of an unexpected type.
var ErrWrongType = errors.New("wrong type")

// Post is one element of an export's items array.
type Post map[string]json.RawMessage

// Text returns a required field rendered as text.
// Strings are unquoted, null renders empty and any other value renders as its JSON text.
func (p Post) Text(name string) (string, error) {
	raw, ok := p[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingField, name)
	}
	return renderText(raw), nil
}

// OptionalText is Text for a field that may be absent; absence renders empty.
func (p Post) OptionalText(name string) string {
	raw, ok := p[name]
	if !ok {
		return ""
	}
	return renderText(raw)
}

// StringValue returns a required field that must hold a JSON string.
func (p Post) StringValue(name string) (string, error) {
	raw, ok := p[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingField, name)
	}
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return "", fmt.Errorf("%w: field %q is not a string", ErrWrongType, name)
	}
	return s, nil
}

// Object returns a required field that must hold a JSON object.
func (p Post) Object(name string) (Post, error) {
	raw, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingField, name)
	}
	var obj Post
	if isNull(raw) || json.Unmarshal(raw, &obj) != nil {
		return nil, fmt.Errorf("%w: field %q is not an object", ErrWrongType, name)
	}
	return obj, nil
}

// Strings returns an optional field holding a list of strings.
// The second result is false when the field is absent or null.
func (p Post) Strings(name string) ([]string, bool, error) {
	raw, ok := p[name]
	if !ok || isNull(raw) {
		return nil, false, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false, fmt.Errorf("%w: field %q is not a list of strings", ErrWrongType, name)
	}
	return list, true, nil
}

func renderText(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
