package value

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrUnsupportedType = errors.New("dynamic type has no place in the value model")

// FromAny converts a dynamically typed Go value, such as the result of
// decoding JSON into any, to the closed value model.
//
// Supported inputs: nil, string, bool, all built-in numeric types,
// []any, map[string]any, functions, and anything already a Value.
// Booleans become Number 0/1 since the model has no boolean scalar.
// Functions wrap into a Callable that invokes them with no arguments
// and adapts the first result (or yields None).
func FromAny(in any) (Value, error) {
	switch in := in.(type) {
	case nil:
		return None, nil
	case Value:
		return in, nil
	case string:
		return String(in), nil
	case bool:
		if in {
			return Number(1), nil
		}
		return Number(0), nil
	case []any:
		seq := make(Sequence, 0, len(in))
		for i, el := range in {
			v, err := FromAny(el)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			seq = append(seq, v)
		}
		return seq, nil
	case map[string]any:
		m := make(Mapping, len(in))
		for k, el := range in {
			v, err := FromAny(el)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			m[k] = v
		}
		return m, nil
	}

	rv := reflect.ValueOf(in)
	switch {
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, in)

	case rv.CanInt():
		return Number(rv.Int()), nil
	case rv.CanUint():
		return Number(rv.Uint()), nil
	case rv.CanFloat():
		return Number(rv.Float()), nil

	case rv.Kind() == reflect.Func:
		return Callable(func() Value {
			outs := rv.Call(nil)
			if len(outs) == 0 {
				return None
			}
			v, err := FromAny(outs[0].Interface())
			if err != nil {
				return None
			}
			return v
		}), nil
	}
}
