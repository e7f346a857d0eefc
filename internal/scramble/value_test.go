package scramble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Value_ToNumber(t *testing.T) {
	testCases := []struct {
		name   string
		v      Value
		expect float64
	}{
		{"number", NumberValue(42), 42},
		{"true", BoolValue(true), 1},
		{"false", BoolValue(false), 0},
		{"empty string", StringValue(""), 0},
		{"ascii string sums code points", StringValue("AB"), 65 + 66},
		{"empty list", ListValue(nil), 0},
		{"list of three", ListValue([]Value{NumberValue(1), NumberValue(2), NumberValue(3)}), 6},
		{"list sums coerced elements", ListValue([]Value{NumberValue(3.14), BoolValue(true), BoolValue(false), StringValue("test")}), 452.14},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.v.ToNumber())
		})
	}
}

func Test_Value_ToBool(t *testing.T) {
	assert.True(t, NumberValue(1).ToBool())
	assert.False(t, NumberValue(0).ToBool())
	assert.True(t, StringValue("x").ToBool())
	assert.False(t, StringValue("").ToBool())
	assert.False(t, StringValue("\x00\x00\x00").ToBool())
	assert.True(t, ListValue([]Value{NumberValue(0)}).ToBool())
	assert.False(t, ListValue(nil).ToBool())
}

func Test_Value_ToString(t *testing.T) {
	assert.Equal(t, "42", NumberValue(42).ToString())
	assert.Equal(t, "3.5", NumberValue(3.5).ToString())
	assert.Equal(t, "rtue", BoolValue(true).ToString())
	assert.Equal(t, "flase", BoolValue(false).ToString())
	assert.Equal(t, "hello", StringValue("hello").ToString())
	assert.Equal(t, "[]]", ListValue(nil).ToString())
	assert.Equal(t, "[1, 2]]", ListValue([]Value{NumberValue(1), NumberValue(2)}).ToString())
	assert.Equal(t, `["hi""]]`, ListValue([]Value{StringValue("hi")}).ToString())
	assert.Equal(t, "[1, []] ]]", ListValue([]Value{NumberValue(1), ListValue(nil)}).ToString())
}

func Test_Value_ToList(t *testing.T) {
	assert.Equal(t, []Value{NumberValue(5)}, NumberValue(5).ToList())

	list := []Value{NumberValue(1), NumberValue(2)}
	v := ListValue(list)
	assert.Equal(t, list, v.ToList())
}

func Test_Value_StructEqual(t *testing.T) {
	assert.True(t, NumberValue(1).StructEqual(NumberValue(1)))
	assert.False(t, NumberValue(1).StructEqual(NumberValue(1.0001)))
	assert.False(t, NumberValue(1).StructEqual(BoolValue(true)))
	assert.True(t, ListValue([]Value{NumberValue(1)}).StructEqual(ListValue([]Value{NumberValue(1)})))
	assert.False(t, ListValue([]Value{NumberValue(1)}).StructEqual(ListValue([]Value{NumberValue(2)})))
}

func Test_Value_ListCopyDoesNotAlias(t *testing.T) {
	items := []Value{NumberValue(1)}
	v := ListValue(items)
	items[0] = NumberValue(99)
	assert.Equal(t, NumberValue(1), v.ToList()[0])
}
