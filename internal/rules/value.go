package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Value is one scalar from a rule document. Live documents mix numbers,
// strings and booleans inside the same filter list, so every scalar is
// normalized to a string form and compared loosely.
type Value string

func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = Value(t)
	case json.Number:
		*v = Value(t.String())
	case bool:
		*v = BoolValue(t)
	default:
		return fmt.Errorf("unsupported filter value %s", string(b))
	}
	return nil
}

// Equal reports loose equality: an exact string match, or numeric
// equality when both sides parse as numbers ("100" matches "100.0").
func (v Value) Equal(o Value) bool {
	if v == o {
		return true
	}
	dv, errV := decimal.NewFromString(string(v))
	do, errO := decimal.NewFromString(string(o))
	return errV == nil && errO == nil && dv.Equal(do)
}

func IntValue(n int64) Value {
	return Value(strconv.FormatInt(n, 10))
}

func DecimalValue(d decimal.Decimal) Value {
	return Value(d.String())
}

func BoolValue(b bool) Value {
	if b {
		return "1"
	}
	return "0"
}

// ValueList is one attribute filter: the allowed values for one kind.
type ValueList []Value

// Contains reports membership under loose equality.
func (l ValueList) Contains(v Value) bool {
	for _, lv := range l {
		if lv.Equal(v) {
			return true
		}
	}
	return false
}
