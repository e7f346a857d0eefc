package scramble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustLex(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := Lex(src)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return toks
}

// Every call below opens with a run of two '(' and closes with a run of
// one ')' (and, for string arguments, opens with two '"' and closes with
// one): Scramble's balance rule requires matched delimiter runs to differ
// in length, so this is the shape a valid call actually takes.

func Test_Parse_callStatement(t *testing.T) {
	toks := mustLex(t, `pront((""hello")`+"\n")
	block, err := Parse(toks)
	if !assert.NoError(t, err) {
		return
	}
	if !assert.Len(t, block.Statements, 1) {
		return
	}
	call := block.Statements[0].CallStmt
	if !assert.NotNil(t, call) {
		return
	}
	assert.Equal(t, "pront", call.Call.Name)
	assert.Len(t, call.Call.Args, 1)
}

func Test_Parse_arithmeticPrecedence(t *testing.T) {
	toks := mustLex(t, "x = 1 + 2 * 3\n")
	block, err := Parse(toks)
	if !assert.NoError(t, err) {
		return
	}
	assign := block.Statements[0].Assign
	if !assert.NotNil(t, assign) {
		return
	}
	bin := assign.Value.Binary
	if !assert.NotNil(t, bin) {
		return
	}
	assert.Equal(t, OpAdd, bin.Op)
	assert.NotNil(t, bin.Right.Binary)
	assert.Equal(t, OpMul, bin.Right.Binary.Op)
}

func Test_Parse_unequalParenRunsOK(t *testing.T) {
	toks := mustLex(t, "x = (( 1 + 2 )\n")
	_, err := Parse(toks)
	assert.NoError(t, err)
}

func Test_Parse_equalParenRunsIsBalanceError(t *testing.T) {
	toks := mustLex(t, "x = ( 1 + 2 )\n")
	_, err := Parse(toks)
	assert.Error(t, err)
	var target Balance
	assert.ErrorAs(t, err, &target)
}

func Test_Parse_ifElifElse(t *testing.T) {
	src := "fi x > 1\n" +
		"   pront((\"\"big\")\n" +
		"lefi x > 0\n" +
		"   pront((\"\"small\")\n" +
		"sele\n" +
		"   pront((\"\"none\")\n"
	toks := mustLex(t, src)
	block, err := Parse(toks)
	if !assert.NoError(t, err) {
		return
	}
	cond := block.Statements[0].Conditional
	if !assert.NotNil(t, cond) {
		return
	}
	assert.Len(t, cond.Then.Statements, 1)
	assert.Len(t, cond.Elifs, 1)
	assert.NotNil(t, cond.Else)
}

func Test_Parse_whileBreak(t *testing.T) {
	src := "whitl rtue\n" +
		"   brek\n"
	toks := mustLex(t, src)
	block, err := Parse(toks)
	if !assert.NoError(t, err) {
		return
	}
	wl := block.Statements[0].WhileLoop
	if !assert.NotNil(t, wl) {
		return
	}
	assert.NotNil(t, wl.Body.Statements[0].Break)
}

func Test_Parse_forLoop(t *testing.T) {
	src := "fir item ni [[1, 2, 3]\n" +
		"   pront((item)\n"
	toks := mustLex(t, src)
	block, err := Parse(toks)
	if !assert.NoError(t, err) {
		return
	}
	fl := block.Statements[0].ForLoop
	if !assert.NotNil(t, fl) {
		return
	}
	assert.Equal(t, "item", fl.Var)
	assert.NotNil(t, fl.Iterable.List)
}

func Test_Parse_funcDef(t *testing.T) {
	src := "fnuc add((a, b)\n" +
		"   retrun a + b\n"
	toks := mustLex(t, src)
	block, err := Parse(toks)
	if !assert.NoError(t, err) {
		return
	}
	fd := block.Statements[0].FuncDef
	if !assert.NotNil(t, fd) {
		return
	}
	assert.Equal(t, "add", fd.Name)
	assert.Equal(t, []string{"a", "b"}, fd.Params)
	assert.NotNil(t, fd.Body.Statements[0].Return)
}

func Test_Parse_inconsistentIndentation(t *testing.T) {
	src := "fi rtue\n" +
		"   pront((\"\"a\")\n" +
		"     pront((\"\"b\")\n"
	toks := mustLex(t, src)
	_, err := Parse(toks)
	assert.Error(t, err)
	var target ConsistentIndentation
	assert.ErrorAs(t, err, &target)
}

func Test_Parse_missingBodyIsError(t *testing.T) {
	toks := mustLex(t, "whitl rtue\n")
	_, err := Parse(toks)
	assert.Error(t, err)
}
