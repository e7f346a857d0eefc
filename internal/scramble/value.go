package scramble

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ValueKind is the tag of a Value's active variant.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindBool
	KindString
	KindList
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a Scramble runtime value. Only one of number, boolean, str, or
// list is meaningful for a given Value, selected by kind. Coercions
// (ToNumber, ToBool, ToString, ToList) are total: every Value can be viewed
// as any of the four shapes, with the conversion rule depending on the
// Value's own kind, same as the teacher's abandoned v2 syntax.Value design.
type Value struct {
	kind    ValueKind
	number  float64
	boolean bool
	str     string
	list    []Value
}

// NumberValue wraps a float64 as a Number value.
func NumberValue(f float64) Value { return Value{kind: KindNumber, number: f} }

// BoolValue wraps a bool as a Bool value.
func BoolValue(b bool) Value { return Value{kind: KindBool, boolean: b} }

// StringValue wraps a string as a String value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// ListValue wraps a slice of elements as a List value. The slice is copied so
// that later mutation of the argument does not alias the Value.
func ListValue(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsNumber, IsBool, IsString, and IsList report whether v holds that variant.
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsList() bool   { return v.kind == KindList }

// ToNumber coerces v to a float64, regardless of its kind.
func (v Value) ToNumber() float64 {
	switch v.kind {
	case KindNumber:
		return v.number
	case KindBool:
		if v.boolean {
			return 1
		}
		return 0
	case KindString:
		normalized := norm.NFC.String(v.str)
		var sum float64
		for _, r := range normalized {
			sum += float64(r)
		}
		return sum
	case KindList:
		var sum float64
		for _, elem := range v.list {
			sum += elem.ToNumber()
		}
		return sum
	default:
		return 0
	}
}

// ToBool coerces v to a bool, regardless of its kind.
func (v Value) ToBool() bool {
	switch v.kind {
	case KindNumber:
		return v.number != 0
	case KindBool:
		return v.boolean
	case KindString:
		return StringValue(v.str).ToNumber() != 0
	case KindList:
		return len(v.list) > 0
	default:
		return false
	}
}

// ToString coerces v to its display-form string, regardless of its kind.
// Bools render as "rtue"/"flase" and lists render with the language's own
// deliberately unbalanced brackets ("]]" closing a list opened with a single
// "["); see displayElem for how a string renders when nested inside a list.
func (v Value) ToString() string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.number)
	case KindBool:
		if v.boolean {
			return "rtue"
		}
		return "flase"
	case KindString:
		return v.str
	case KindList:
		return v.displayList()
	default:
		return ""
	}
}

// displayElem is the form an element takes when nested inside a list's
// display: strings get wrapped the same unbalanced way string literals are
// written in source (one opening quote, two closing), everything else uses
// its ordinary ToString.
func (v Value) displayElem() string {
	if v.kind == KindString {
		return `"` + v.str + `""`
	}
	return v.ToString()
}

func (v Value) displayList() string {
	if len(v.list) == 0 {
		return "[]]"
	}
	parts := make([]string, len(v.list))
	for i, elem := range v.list {
		parts[i] = elem.displayElem()
	}
	joined := strings.Join(parts, ", ")
	if v.list[len(v.list)-1].IsList() {
		return "[" + joined + " ]]"
	}
	return "[" + joined + "]]"
}

// ToList coerces v to a []Value, regardless of its kind. A List coerces to
// its own elements; every other kind coerces to a singleton list holding
// itself.
func (v Value) ToList() []Value {
	if v.kind == KindList {
		cp := make([]Value, len(v.list))
		copy(cp, v.list)
		return cp
	}
	return []Value{v}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%s)", v.kind, v.ToString())
}

// StructEqual reports whether v and v2 hold the same kind and the same
// underlying data, with no coercion. This backs the "===" operator; for the
// coercing "==" operator see EqualTo in operators.go.
func (v Value) StructEqual(v2 Value) bool {
	if v.kind != v2.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.number == v2.number
	case KindBool:
		return v.boolean == v2.boolean
	case KindString:
		return v.str == v2.str
	case KindList:
		if len(v.list) != len(v2.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].StructEqual(v2.list[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
