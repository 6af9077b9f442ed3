package zonedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSON reads a zone in the JSON layout used by the zone files and
// validates it.
func DecodeJSON(r io.Reader) (*Zone, error) {
	dec := json.NewDecoder(r)
	var z Zone
	if err := dec.Decode(&z); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrInvalidZone, err)
	}
	if err := z.Validate(); err != nil {
		return nil, err
	}
	return &z, nil
}

func decodeJSONBytes(data []byte) (*Zone, error) {
	return DecodeJSON(bytes.NewReader(data))
}
