package mapfile

import (
	"fmt"
	"math"
	"strconv"
)

// labelString renders a decoded scalar as a map label. JSON decodes numbers
// to float64; YAML produces int, int64 or float64. Whole floats render
// without a fractional part so JSON "1" and YAML 1 agree on the label "1".
func labelString(v interface{}) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return strconv.FormatInt(int64(x), 10), nil
		}

		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	default:
		return "", fmt.Errorf("label %v (%T) is not a scalar: %w", v, v, ErrBadDocument)
	}
}

// labelList renders a decoded list of scalars.
func labelList(v interface{}) ([]string, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T: %w", v, ErrBadDocument)
	}

	out := make([]string, 0, len(list))
	for _, item := range list {
		s, err := labelString(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// labelMap reshapes a decoded key→list mapping with arbitrary scalar keys
// into string labels on both sides.
func labelMap(m map[interface{}]interface{}) (map[string][]string, error) {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		key, err := labelString(k)
		if err != nil {
			return nil, err
		}
		list, err := labelList(v)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		out[key] = list
	}

	return out, nil
}
