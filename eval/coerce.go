/*
File    : gomatch/eval/coerce.go
*/

package eval

import (
	"strconv"

	"github.com/gomatch-lang/gomatch/objects"
)

// truthy implements §4.4.1: everything is truthy except false, nil,
// integer 0, floating 0.0, and the empty string.
func truthy(v objects.Value) bool {
	switch val := v.(type) {
	case *objects.Boolean:
		return val.Value
	case *objects.Nil:
		return false
	case *objects.Integer:
		return val.Value != 0
	case *objects.Float:
		return val.Value != 0
	case *objects.String:
		return val.Value != ""
	}
	return true
}

// isNumber reports whether v is already an Integer or Float (§4.4.2).
func isNumber(v objects.Value) bool {
	switch v.(type) {
	case *objects.Integer, *objects.Float:
		return true
	}
	return false
}

// toNumber implements §4.4.2's to_number: numbers pass through, booleans
// and nil coerce to 0/1, a non-empty string is parsed as a float, and a
// callable coerces its name the same way a string would (which almost
// never parses).
func toNumber(v objects.Value) (objects.Value, bool) {
	switch val := v.(type) {
	case *objects.Integer:
		return val, true
	case *objects.Float:
		return val, true
	case *objects.Boolean:
		if val.Value {
			return &objects.Integer{Value: 1}, true
		}
		return &objects.Integer{Value: 0}, true
	case *objects.Nil:
		return &objects.Integer{Value: 0}, true
	case *objects.String:
		if val.Value == "" {
			return &objects.Integer{Value: 0}, true
		}
		f, err := strconv.ParseFloat(val.Value, 64)
		if err != nil {
			return nil, false
		}
		return &objects.Float{Value: f}, true
	case objects.Callable:
		f, err := strconv.ParseFloat(val.Name(), 64)
		if err != nil {
			return nil, false
		}
		return &objects.Float{Value: f}, true
	}
	return nil, false
}

func isZero(v objects.Value) bool {
	switch val := v.(type) {
	case *objects.Integer:
		return val.Value == 0
	case *objects.Float:
		return val.Value == 0
	}
	return false
}

func toFloat(v objects.Value) float64 {
	switch val := v.(type) {
	case *objects.Integer:
		return float64(val.Value)
	case *objects.Float:
		return val.Value
	}
	return 0
}
