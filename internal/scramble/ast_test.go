package scramble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Operator_precedence(t *testing.T) {
	testCases := []struct {
		op     Operator
		expect int
	}{
		{OpMul, 30},
		{OpDiv, 30},
		{OpMod, 30},
		{OpAdd, 20},
		{OpSub, 20},
		{OpEq, 10},
		{OpNe, 10},
		{OpSeq, 10},
		{OpSne, 10},
		{OpGt, 10},
		{OpLt, 10},
		{OpGe, 10},
		{OpLe, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.op.String(), func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.op.precedence())
		})
	}
}

func Test_Operator_String(t *testing.T) {
	assert.Equal(t, "+", OpAdd.String())
	assert.Equal(t, "===", OpSeq.String())
	assert.Equal(t, "!==", OpSne.String())
}
