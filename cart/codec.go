package cart

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"storefront.GO/catalog"
)

// Encode writes lines as the persisted JSON array.
func Encode(lines []Line) (string, error) {
	if lines == nil {
		lines = []Line{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode reads a persisted cart. It accepts the canonical line shape, including prices written
// as strings, and the older product-keyed shape {id, product, quantity}. Lines sharing a key are
// merged by summing quantities; lines without an id or with a non-positive quantity are dropped.
// An empty payload is an empty cart. Any other payload that is not a JSON array of objects is
// an error.
func Decode(raw string) ([]Line, error) {
	if strings.TrimSpace(raw) == "" {
		return []Line{}, nil
	}
	var entries []map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}

	lines := make([]Line, 0, len(entries))
	for i, entry := range entries {
		line, err := decodeEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("decode cart line %d: %w", i, err)
		}
		lines = append(lines, line)
	}
	return Normalize(lines), nil
}

// legacyLine is the product-keyed shape older carts were persisted in.
type legacyLine struct {
	ID       string          `json:"id"`
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

func decodeEntry(entry map[string]interface{}) (Line, error) {
	if _, ok := entry["product"].(map[string]interface{}); ok {
		var legacy legacyLine
		if err := weakDecode(entry, &legacy); err != nil {
			return Line{}, err
		}
		if legacy.Product.ID == "" {
			legacy.Product.ID = legacy.ID
		}
		line := NewLine(legacy.Product, "", "")
		line.Quantity = legacy.Quantity
		return line, nil
	}
	var line Line
	if err := weakDecode(entry, &line); err != nil {
		return Line{}, err
	}
	return line, nil
}

func weakDecode(input interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
