// Package fields loads box fields from JSONC files.
package fields

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// ErrUnsupportedField is returned for array elements that have no single textual form.
var ErrUnsupportedField = errors.New("unsupported field value")

// Load reads a JSONC file holding an array of scalar fields.
// Strings are returned as is; numbers keep their literal spelling and booleans
// become "true" or "false".
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading fields file %q: %w", path, err)
	}

	fields, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing fields file %q: %w", path, err)
	}

	return fields, nil
}

// Parse decodes JSONC data holding an array of scalar fields.
func Parse(data []byte) ([]string, error) {
	clean := jsonc.ToJSON(data)

	decoder := json.NewDecoder(bytes.NewReader(clean))
	decoder.UseNumber()

	var raw []any
	if err := decoder.Decode(&raw); err != nil {
		return nil, err //nolint:wrapcheck // callers add the file context
	}

	fields := make([]string, 0, len(raw))

	for i, value := range raw {
		switch v := value.(type) {
		case string:
			fields = append(fields, v)
		case json.Number:
			fields = append(fields, v.String())
		case bool:
			fields = append(fields, fmt.Sprint(v))
		default:
			return nil, fmt.Errorf("%w: element %d is %T", ErrUnsupportedField, i, value)
		}
	}

	return fields, nil
}
