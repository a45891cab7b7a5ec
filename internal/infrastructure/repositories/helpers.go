package repositories

import (
	"encoding/json"
	"fmt"

	domainerrors "mintfire.backend/internal/domain/errors"
)

// storageErr tags a persistence failure so handlers can surface it as a
// generic failure while logs keep the cause.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", domainerrors.ErrStorage, err)
}

// encodeList JSON-encodes a string slice for a text column
func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeList decodes a JSON text column into a string slice
func decodeList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}
