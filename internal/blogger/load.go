package blogger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gorewood/bloggerposts/internal/output"
)

// ErrNoItems is returned when an export has no usable "items" array.
var ErrNoItems = errors.New(`missing "items" array`)

// Load reads the export at path and returns its posts in document order.
// Any failure is reported as an output.KindInput error naming the file.
func Load(path string) ([]Post, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, output.NewInputError(fmt.Sprintf("an error occurred when trying to open input file %s", path), err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	posts, err := Decode(file)
	if err != nil {
		return nil, output.NewInputError(fmt.Sprintf("an error occurred when trying to open input file %s", path), err)
	}
	return posts, nil
}

// Decode parses a whole export document from r.
func Decode(r io.Reader) ([]Post, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if doc == nil {
		return nil, ErrNoItems
	}

	raw, ok := doc["items"]
	if !ok || string(bytes.TrimSpace(raw)) == "null" {
		return nil, ErrNoItems
	}

	var posts []Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}
	return posts, nil
}
