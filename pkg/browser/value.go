package browser

import (
	"encoding/json"
	"fmt"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/shared"
)

// Value is the current value of a field: a single scalar, or a set of
// scalars when the field is a multi-select.
type Value struct {
	Values   []string
	Multiple bool
}

func ScalarValue(v string) Value {
	return Value{Values: []string{v}}
}

func MultiValue(values ...string) Value {
	return Value{Values: append([]string{}, values...), Multiple: true}
}

// Scalar returns the single value, or the first entry of a set.
func (v Value) Scalar() string {
	if len(v.Values) == 0 {
		return ""
	}
	return v.Values[0]
}

// Merge returns the value after selecting optionValue. A scalar is replaced;
// a set gains optionValue unless it already holds it, and never holds
// duplicates afterwards.
func (v Value) Merge(optionValue string) Value {
	if !v.Multiple {
		return ScalarValue(optionValue)
	}

	merged := MultiValue()
	for _, existing := range v.Values {
		if !shared.Contains(merged.Values, existing) {
			merged.Values = append(merged.Values, existing)
		}
	}
	if !shared.Contains(merged.Values, optionValue) {
		merged.Values = append(merged.Values, optionValue)
	}
	return merged
}

// Interface returns the value in the shape used by json and gojq: a string
// or a []interface{} of strings.
func (v Value) Interface() interface{} {
	if !v.Multiple {
		return v.Scalar()
	}
	values := make([]interface{}, 0, len(v.Values))
	for _, s := range v.Values {
		values = append(values, s)
	}
	return values
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Multiple {
		return json.Marshal(v.Scalar())
	}
	if v.Values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.Values)
}

func (v Value) String() string {
	if !v.Multiple {
		return v.Scalar()
	}
	return fmt.Sprintf("%v", v.Values)
}

// ValueFromJS converts the result of the value reading script.
func ValueFromJS(raw interface{}) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return ScalarValue(""), nil
	case string:
		return ScalarValue(x), nil
	case []string:
		return MultiValue(x...), nil
	case []interface{}:
		values := MultiValue()
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("unexpected multi value entry %v of type %T", item, item)
			}
			values.Values = append(values.Values, s)
		}
		return values, nil
	case float64, bool:
		return ScalarValue(fmt.Sprintf("%v", x)), nil
	default:
		return Value{}, fmt.Errorf("unexpected field value %v of type %T", raw, raw)
	}
}
