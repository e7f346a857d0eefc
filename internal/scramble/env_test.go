package scramble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Environment_variableShadowingAndOverwrite(t *testing.T) {
	env := NewEnvironment()
	env.SetVariable("x", NumberValue(1))

	env.BeginScope()
	v, ok := env.GetVariable("x")
	assert.True(t, ok)
	assert.Equal(t, NumberValue(1), v)

	// setting an existing binding overwrites it in place, not shadowing
	env.SetVariable("x", NumberValue(2))
	env.EndScope()

	v, ok = env.GetVariable("x")
	assert.True(t, ok)
	assert.Equal(t, NumberValue(2), v)
}

func Test_Environment_newBindingGoesInInnermostScope(t *testing.T) {
	env := NewEnvironment()
	env.BeginScope()
	env.SetVariable("y", NumberValue(5))
	env.EndScope()

	_, ok := env.GetVariable("y")
	assert.False(t, ok)
}

func Test_Environment_functionsLookupOuterScopes(t *testing.T) {
	env := NewEnvironment()
	fn := &Function{Name: "f", Params: []string{"a"}}
	env.SetFunction("f", fn)

	env.BeginScope()
	got, ok := env.GetFunction("f")
	assert.True(t, ok)
	assert.Same(t, fn, got)
}

func Test_Environment_endScopeOnBasePanics(t *testing.T) {
	env := NewEnvironment()
	assert.Panics(t, func() { env.EndScope() })
}
