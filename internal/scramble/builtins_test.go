package scramble

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEvaluator(stdin string) (*Evaluator, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	io := NewIO(&out, &errOut, strings.NewReader(stdin))
	return NewEvaluator(io), &out, &errOut
}

func Test_Builtins_prontAndProintl(t *testing.T) {
	ev, out, _ := newTestEvaluator("")

	_, err := ev.evalCall(&CallExpr{Name: "pront", Args: []*Expression{
		{Constant: &ConstantExpr{Value: StringValue("hi")}},
	}}, Position{})
	assert.NoError(t, err)
	assert.Equal(t, "hi", out.String())

	out.Reset()
	_, err = ev.evalCall(&CallExpr{Name: "prointl", Args: []*Expression{
		{Constant: &ConstantExpr{Value: StringValue("hi")}},
	}}, Position{})
	assert.NoError(t, err)
	assert.Equal(t, "hi\n", out.String())
}

func Test_Builtins_pritnerGoesToStderr(t *testing.T) {
	ev, out, errOut := newTestEvaluator("")

	_, err := ev.evalCall(&CallExpr{Name: "pritner", Args: []*Expression{
		{Constant: &ConstantExpr{Value: StringValue("oops")}},
	}}, Position{})
	assert.NoError(t, err)
	assert.Equal(t, "", out.String())
	assert.Equal(t, "oops", errOut.String())
}

func Test_Builtins_inptuReadsOneLine(t *testing.T) {
	ev, _, _ := newTestEvaluator("first\nsecond\n")

	v, err := ev.evalCall(&CallExpr{Name: "inptu"}, Position{})
	assert.NoError(t, err)
	assert.Equal(t, StringValue("first\n"), v)
}

func Test_Builtins_inptuFailsOnClosedStdin(t *testing.T) {
	ev, _, _ := newTestEvaluator("")

	_, err := ev.evalCall(&CallExpr{Name: "inptu"}, Position{})
	assert.Error(t, err)
	var target Input
	assert.ErrorAs(t, err, &target)
}

func Test_Builtins_arngeOneArg(t *testing.T) {
	ev, _, _ := newTestEvaluator("")

	v, err := ev.evalCall(&CallExpr{Name: "arnge", Args: []*Expression{
		{Constant: &ConstantExpr{Value: NumberValue(3)}},
	}}, Position{})
	assert.NoError(t, err)
	assert.Equal(t, ListValue([]Value{NumberValue(0), NumberValue(1), NumberValue(2)}), v)
}

func Test_Builtins_arngeThreeArgs(t *testing.T) {
	ev, _, _ := newTestEvaluator("")

	v, err := ev.evalCall(&CallExpr{Name: "arnge", Args: []*Expression{
		{Constant: &ConstantExpr{Value: NumberValue(10)}},
		{Constant: &ConstantExpr{Value: NumberValue(2)}},
		{Constant: &ConstantExpr{Value: NumberValue(16)}},
	}}, Position{})
	assert.NoError(t, err)
	assert.Equal(t, ListValue([]Value{NumberValue(10), NumberValue(12), NumberValue(14)}), v)
}

func Test_Builtins_arngeBadArity(t *testing.T) {
	ev, _, _ := newTestEvaluator("")

	_, err := ev.evalCall(&CallExpr{Name: "arnge"}, Position{})
	assert.Error(t, err)
	var target Signature
	assert.ErrorAs(t, err, &target)
}
