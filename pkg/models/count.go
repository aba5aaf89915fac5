package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Count is a non-negative whole number such as a quantity or a number of work
// days. Values typed into a form were sometimes stored as strings, so Count
// decodes numbers and numeric strings alike. Anything unreadable, including
// values above math.MaxInt32, decodes as 0 rather than failing the whole
// collection.
type Count int

// Int returns the count as an int.
func (c Count) Int() int {
	return int(c)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*c = 0
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > math.MaxInt32 {
		*c = 0
		return nil
	}
	*c = Count(math.Trunc(f))
	return nil
}
