package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

// Composes is the directive key for class composition.
const Composes = "composes"

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style declaration.
// Value is either a scalar (string, Property, bool or a number) or a list
// of values, as found in CSS-object style documents.
type KeyValue struct {
	Key   string
	Value any
}

// ToProperty converts a declared value to its CSS text.
//
// Lists are joined with ", ", nested lists with a blank, following the
// conventions for CSS-object styles:
//
//	margin: [[5, 10], 0]   =>   margin: 5 10, 0
//
// Values of unknown type yield NullStyle and false.
func ToProperty(value any) (Property, bool) {
	return toProperty(value, ", ")
}

func toProperty(value any, sep string) (Property, bool) {
	switch v := value.(type) {
	case nil:
		return NullStyle, true
	case Property:
		return v, true
	case string:
		return Property(v), true
	case bool:
		return Property(strconv.FormatBool(v)), true
	case int:
		return Property(strconv.Itoa(v)), true
	case int64:
		return Property(strconv.FormatInt(v, 10)), true
	case float64:
		return Property(strconv.FormatFloat(v, 'f', -1, 64)), true
	case []string:
		return Property(strings.Join(v, sep)), true
	case []any:
		parts := make([]string, 0, len(v))
		for _, x := range v {
			p, ok := toProperty(x, " ")
			if !ok {
				return NullStyle, false
			}
			if !p.IsEmpty() {
				parts = append(parts, p.String())
			}
		}
		return Property(strings.Join(parts, sep)), true
	case fmt.Stringer:
		return Property(v.String()), true
	}
	tracer().Debugf("style: cannot convert value of type %T to a property", value)
	return NullStyle, false
}
