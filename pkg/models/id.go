// Package models holds the entity records persisted by the record store:
// customers, their purchases, employees and expenses.
//
// Every record carries an ID. IDs are opaque strings on the Go side; older
// collections stored some of them as JSON numbers, so ID decodes from either
// form and always encodes as a string.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID identifies a record within its collection.
type ID string

// NewID returns the canonical ID for a sequence number.
func NewID(n int64) ID {
	return ID(strconv.FormatInt(n, 10))
}

// Int returns the numeric value of the ID, if it has one.
func (id ID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the ID is empty.
func (id ID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON accepts a JSON string or a JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id %s: %w", data, err)
	}
	if i, err := n.Int64(); err == nil {
		*id = NewID(i)
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("decode id %s: %w", data, err)
	}
	if f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		*id = NewID(int64(f))
		return nil
	}
	*id = ID(n.String())
	return nil
}
