package encoding

import (
	"encoding/json"
	"errors"
	"io"
)

// MaxBodySize caps how much of a response body is read while decoding.
const MaxBodySize = 32 << 20

var ErrDecodeJSON = errors.New("failed to decode JSON")

// UnmarshalJSON decodes a single JSON value of type T from the reader.
func UnmarshalJSON[T any](reader io.Reader) (T, error) {
	var value T
	if err := json.NewDecoder(io.LimitReader(reader, MaxBodySize)).Decode(&value); err != nil {
		return value, errors.Join(err, ErrDecodeJSON)
	}

	return value, nil
}

// MarshalIndent renders a value as indented JSON for display.
func MarshalIndent(value any) (string, error) {
	body, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", err
	}

	return string(body), nil
}
