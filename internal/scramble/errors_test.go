package scramble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Render_pointsAtColumn(t *testing.T) {
	src := "fi 1 === 2\n    pront(\"hi\")"
	err := MissingToken{Pos: Position{Line: 1, Start: 3, Length: 1}, Want: LParen, Got: Number}

	out := Render(err, src)
	assert.True(t, strings.Contains(out, "fi 1 === 2"))
	assert.True(t, strings.Contains(out, "^ here"))
	assert.True(t, strings.Contains(out, err.Error()))
}

func Test_Render_noPosition(t *testing.T) {
	err := Input{Message: "stdin closed"}
	assert.Equal(t, "Error: "+err.Error(), Render(err, "irrelevant"))
}

func Test_Name_Error(t *testing.T) {
	assert.Contains(t, Name{Name: "x"}.Error(), "variable")
	assert.Contains(t, Name{Name: "f", IsFunc: true}.Error(), "function")
}

func Test_Signature_Error(t *testing.T) {
	err := Signature{Name: "arnge", Want: 2, Got: 3}
	assert.Contains(t, err.Error(), "arnge")
	assert.Contains(t, err.Error(), "2")
	assert.Contains(t, err.Error(), "3")
}
