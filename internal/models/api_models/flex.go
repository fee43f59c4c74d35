package api_models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"trustmap/pkg/utils"
)

// FlexID accepts the upstream's mixed id encodings (numbers and strings) and
// normalizes them to a string at the decode boundary.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*f = FlexID(utils.NormalizeID(raw))
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f FlexID) String() string { return string(f) }

// FlexFloat accepts coordinates sent either as JSON numbers or as quoted
// numeric strings. Optional coordinates are modeled as *FlexFloat, with nil
// meaning absent.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

func (f FlexFloat) Value() float64 { return float64(f) }
