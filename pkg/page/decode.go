package page

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrBadControlValue is the cause of every decoding failure.
var ErrBadControlValue = errors.New("bad control value")

// DecodeStrings decodes a multi-select value. JSON null means nothing is selected.
func DecodeStrings(value json.RawMessage) ([]string, error) {
	if isNull(value) {
		return []string{}, nil
	}
	var selected []string
	if err := json.Unmarshal(value, &selected); err != nil {
		return nil, errors.Wrapf(ErrBadControlValue, "expected a list of strings, got %s", value)
	}
	return selected, nil
}

// DecodeRange decodes a [low, high] pair of numbers.
func DecodeRange(value json.RawMessage) (low, high float64, err error) {
	var bounds []float64
	if isNull(value) || json.Unmarshal(value, &bounds) != nil || len(bounds) != 2 {
		return 0, 0, errors.Wrapf(ErrBadControlValue, "expected two numbers, got %s", value)
	}
	return bounds[0], bounds[1], nil
}

func isNull(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
