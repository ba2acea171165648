package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNumber(t *testing.T) {
	assert.Equal(t, 12.5, ToNumber("12.5"))
	assert.Equal(t, 0.0, ToNumber(""))
	assert.Equal(t, 0.0, ToNumber("abc"))
	assert.Equal(t, 0.0, ToNumber("NaN"))
	assert.Equal(t, 0.0, ToNumber("+Inf"))
	assert.Equal(t, -3.0, ToNumber("-3"))
}

func TestSafeDivide(t *testing.T) {
	result := SafeDivide(10, 2)
	require.NotNil(t, result)
	assert.Equal(t, 5.0, *result)

	assert.Nil(t, SafeDivide(10, 0))
	assert.Nil(t, SafeDivide(10, -1))
	assert.Nil(t, SafeDivide(0, 0))
}

func TestToPercent(t *testing.T) {
	result := ToPercent(5, 200)
	require.NotNil(t, result)
	assert.Equal(t, 2.5, *result)

	assert.Nil(t, ToPercent(5, 0))
	assert.Nil(t, ToPercent(5, -10))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 3.71, RoundWithTwoDecimalPlace(3.714285))
	assert.Equal(t, 3.72, RoundWithTwoDecimalPlace(3.715))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
