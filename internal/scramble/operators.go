package scramble

import (
	"math"
	"strings"
)

// file operators.go implements the dispatch table for the thirteen binary
// operators plus the "%" format-string operator. Each binary operator method
// is defined on Value and dispatches on the receiver's own kind, the same
// pattern the teacher's v2 value.go draft uses for EqualTo/LessThan/Add/etc.

// ApplyOperator evaluates a binary expression's operator against its already
// evaluated operands.
func ApplyOperator(op Operator, left, right Value) Value {
	switch op {
	case OpAdd:
		return left.Add(right)
	case OpSub:
		return left.Sub(right)
	case OpMul:
		return left.Mul(right)
	case OpDiv:
		return left.Div(right)
	case OpMod:
		return left.Mod(right)
	case OpSeq:
		return BoolValue(left.StructEqual(right))
	case OpSne:
		return BoolValue(!left.StructEqual(right))
	case OpEq:
		return left.EqualTo(right)
	case OpNe:
		return BoolValue(!left.EqualTo(right).ToBool())
	case OpGt:
		return left.GreaterThan(right)
	case OpLt:
		return left.LessThan(right)
	case OpGe:
		return BoolValue(!left.LessThan(right).ToBool())
	case OpLe:
		return BoolValue(!left.GreaterThan(right).ToBool())
	default:
		return NumberValue(0)
	}
}

// Add dispatches on the receiver: Bool ORs, strings concatenate, lists
// append, and everything else adds numerically.
func (v Value) Add(v2 Value) Value {
	switch v.kind {
	case KindBool:
		return BoolValue(v.boolean || v2.ToBool())
	case KindString:
		return StringValue(v.str + v2.ToString())
	case KindList:
		return ListValue(append(v.ToList(), v2.ToList()...))
	default:
		return NumberValue(v.ToNumber() + v2.ToNumber())
	}
}

// Sub dispatches on the receiver: Bool XORs, strings remove the first
// occurrence of the operand's string form, lists remove the first element
// structurally equal to the operand (not coerced to a list), and everything
// else subtracts numerically.
func (v Value) Sub(v2 Value) Value {
	switch v.kind {
	case KindBool:
		r := v2.ToBool()
		return BoolValue(v.boolean != r)
	case KindString:
		return StringValue(replaceFirst(v.str, v2.ToString()))
	case KindList:
		for i, elem := range v.list {
			if elem.StructEqual(v2) {
				kept := make([]Value, 0, len(v.list)-1)
				kept = append(kept, v.list[:i]...)
				kept = append(kept, v.list[i+1:]...)
				return ListValue(kept)
			}
		}
		return ListValue(v.list)
	default:
		return NumberValue(v.ToNumber() - v2.ToNumber())
	}
}

// replaceFirst removes the first occurrence of old in s, or returns s
// unchanged if old does not occur.
func replaceFirst(s, old string) string {
	return strings.Replace(s, old, "", 1)
}

// Mul dispatches on the receiver: Bool ANDs, strings and lists repeat
// floor(|to_number(r)|) times, and everything else multiplies numerically.
func (v Value) Mul(v2 Value) Value {
	count := int(math.Abs(v2.ToNumber()))
	switch v.kind {
	case KindBool:
		return BoolValue(v.boolean && v2.ToBool())
	case KindString:
		return StringValue(strings.Repeat(v.str, count))
	case KindList:
		out := make([]Value, 0, len(v.list)*count)
		for i := 0; i < count; i++ {
			out = append(out, v.list...)
		}
		return ListValue(out)
	default:
		return NumberValue(v.ToNumber() * v2.ToNumber())
	}
}

// Div dispatches on the receiver: Bool computes NOT(lhs XOR r), strings
// remove every occurrence of the operand's string form, lists filter out
// every element structurally equal to the operand, and everything else
// divides numerically (division by zero yields 0 rather than Inf or NaN so
// the operator stays total).
func (v Value) Div(v2 Value) Value {
	switch v.kind {
	case KindBool:
		r := v2.ToBool()
		return BoolValue(v.boolean == r)
	case KindString:
		return StringValue(strings.ReplaceAll(v.str, v2.ToString(), ""))
	case KindList:
		kept := make([]Value, 0, len(v.list))
		for _, elem := range v.list {
			if !elem.StructEqual(v2) {
				kept = append(kept, elem)
			}
		}
		return ListValue(kept)
	default:
		divisor := v2.ToNumber()
		if divisor == 0 {
			return NumberValue(0)
		}
		return NumberValue(v.ToNumber() / divisor)
	}
}

// Mod dispatches on the receiver: Bool computes NAND(lhs, r), lists count
// elements not structurally equal to the operand, and everything else is
// numeric remainder (modulo zero yields 0, same reasoning as Div). String
// Mod is the format-string operator and is special-cased in eval.go before
// ApplyOperator ever reaches here, since it alone can fail.
func (v Value) Mod(v2 Value) Value {
	switch v.kind {
	case KindBool:
		r := v2.ToBool()
		return BoolValue(!(v.boolean && r))
	case KindList:
		count := 0
		for _, elem := range v.list {
			if !elem.StructEqual(v2) {
				count++
			}
		}
		return NumberValue(float64(count))
	default:
		divisor := v2.ToNumber()
		if divisor == 0 {
			return NumberValue(0)
		}
		left := v.ToNumber()
		quotient := float64(int64(left / divisor))
		return NumberValue(left - quotient*divisor)
	}
}

// EqualTo is the coercing "==" comparison: v2 is converted to v's own kind
// and the results are compared. For non-coercing structural equality, use
// StructEqual ("===").
func (v Value) EqualTo(v2 Value) Value {
	switch v.kind {
	case KindString:
		return BoolValue(v.str == v2.ToString())
	case KindBool:
		return BoolValue(v.boolean == v2.ToBool())
	case KindList:
		other := v2.ToList()
		if len(v.list) != len(other) {
			return BoolValue(false)
		}
		for i := range v.list {
			if !v.list[i].EqualTo(other[i]).ToBool() {
				return BoolValue(false)
			}
		}
		return BoolValue(true)
	default:
		return BoolValue(v.number == v2.ToNumber())
	}
}

// LessThan always compares to_number(v) against to_number(v2), regardless
// of either operand's kind.
func (v Value) LessThan(v2 Value) Value {
	return BoolValue(v.ToNumber() < v2.ToNumber())
}

// GreaterThan always compares to_number(v) against to_number(v2),
// regardless of either operand's kind.
func (v Value) GreaterThan(v2 Value) Value {
	return BoolValue(v.ToNumber() > v2.ToNumber())
}

// Format implements the "%" operator: format is split on unescaped '%'
// characters into literal runs and single-character flags ("\%" is a
// literal percent sign). Each flag consumes the next element of args, in
// order, rendering it per the flag's conversion:
//
//	n - numeric       (ToNumber)
//	s - string        (ToString)
//	l - list          (ToString, the list display form)
//	o - bool          (ToString, "rtue"/"flase")
func Format(format, args Value, pos Position) (Value, error) {
	runes := []rune(format.ToString())
	argList := args.ToList()
	argIdx := 0

	var out strings.Builder
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if ch == '\\' && i+1 < len(runes) && runes[i+1] == '%' {
			out.WriteRune('%')
			i++
			continue
		}

		if ch != '%' {
			out.WriteRune(ch)
			continue
		}

		if i+1 >= len(runes) {
			return Value{}, InvalidFormatFlag{Flag: "", Pos: pos}
		}
		flag := runes[i+1]
		i++

		if argIdx >= len(argList) {
			return Value{}, IncorrectFormatArgs{Pos: pos}
		}
		arg := argList[argIdx]
		argIdx++

		switch flag {
		case 'n':
			out.WriteString(formatNumber(arg.ToNumber()))
		case 's':
			out.WriteString(arg.ToString())
		case 'l':
			out.WriteString(ListValue(arg.ToList()).ToString())
		case 'o':
			out.WriteString(BoolValue(arg.ToBool()).ToString())
		default:
			return Value{}, InvalidFormatFlag{Flag: string(flag), Pos: pos}
		}
	}

	if argIdx != len(argList) {
		return Value{}, IncorrectFormatArgs{Pos: pos}
	}

	return StringValue(out.String()), nil
}
