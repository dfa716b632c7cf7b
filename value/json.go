package value

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// FromJSON decodes a JSON document, typically a request variables payload,
// into a Value. Integral numbers become Int, all other numbers Float.
func FromJSON(data []byte) (Value, error) {
	raw, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("decoding json value: %w", err)
	}

	return fromJSON(raw, dataType)
}

func fromJSON(raw []byte, dataType jsonparser.ValueType) (Value, error) {
	switch dataType {
	case jsonparser.Null:
		return Null{}, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding json boolean: %w", err)
		}

		return Boolean(b), nil
	case jsonparser.Number:
		if i, err := jsonparser.ParseInt(raw); err == nil {
			return Int(i), nil
		}

		f, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding json number %s: %w", raw, err)
		}

		return Float(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding json string: %w", err)
		}

		return String(s), nil
	case jsonparser.Array:
		return listFromJSON(raw)
	case jsonparser.Object:
		return objectFromJSON(raw)
	default:
		return nil, fmt.Errorf("unsupported json value %q", raw)
	}
}

func listFromJSON(raw []byte) (Value, error) {
	out := List{}

	var itemErr error

	_, err := jsonparser.ArrayEach(raw, func(item []byte, dataType jsonparser.ValueType, _ int, err error) {
		if itemErr != nil {
			return
		}

		if err != nil {
			itemErr = err
			return
		}

		v, err := fromJSON(item, dataType)
		if err != nil {
			itemErr = err
			return
		}

		out = append(out, v)
	})
	if err != nil {
		return nil, fmt.Errorf("decoding json array: %w", err)
	}

	if itemErr != nil {
		return nil, itemErr
	}

	return out, nil
}

func objectFromJSON(raw []byte) (Value, error) {
	out := Object{}

	err := jsonparser.ObjectEach(raw, func(key []byte, item []byte, dataType jsonparser.ValueType, _ int) error {
		name, err := jsonparser.ParseString(key)
		if err != nil {
			return fmt.Errorf("decoding json key: %w", err)
		}

		v, err := fromJSON(item, dataType)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		out[name] = v

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decoding json object: %w", err)
	}

	return out, nil
}

// ToJSON encodes v as JSON. Enums are encoded as strings.
func ToJSON(v Value) ([]byte, error) {
	if v == nil {
		return nil, errors.New("cannot encode absent value")
	}

	return json.Marshal(Interface(v))
}

// Interface converts v into plain Go values: nil, int64, float64, string,
// bool, []any and map[string]any.
func Interface(v Value) any {
	switch tv := v.(type) {
	case nil, Null:
		return nil
	case Int:
		return int64(tv)
	case Float:
		return float64(tv)
	case String:
		return string(tv)
	case Enum:
		return string(tv)
	case Boolean:
		return bool(tv)
	case List:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = Interface(item)
		}

		return out
	case Object:
		out := make(map[string]any, len(tv))
		for k, item := range tv {
			out[k] = Interface(item)
		}

		return out
	default:
		return nil
	}
}
