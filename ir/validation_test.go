package ir

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWellFormedCircuit(t *testing.T) {
	c := createSimpleDag()
	mul := c.Graph.NodeIDs()[4]
	c.AppendOutputCiphertext(mul)

	assert.NoError(t, c.Validate())
}

func TestValidateWrongArity(t *testing.T) {
	c := New(Bfv)
	x := c.AppendInputCiphertext(0)
	y := c.AppendInputCiphertext(1)
	neg := c.AppendNegate(x)
	// a second operand on a unary node
	c.Graph.AddEdge(y, neg, RightOperand)

	err := c.Validate()
	require.Error(t, err)

	var irErr *IRError
	require.True(t, errors.As(err, &irErr))
	assert.Len(t, irErr.Errors, 1)
	assert.Contains(t, irErr.Errors[0].Error(), "expected 1 unary operand")
}

func TestValidateMissingOperand(t *testing.T) {
	c := New(Bfv)
	x := c.AppendInputCiphertext(0)
	add := c.AppendAdd(x, x)
	// sever the right operand
	id, ok := c.Graph.FindEdge(x, add)
	require.True(t, ok)
	c.Graph.RemoveEdge(id)

	err := c.Validate()
	require.Error(t, err)
}

func TestValidateShiftAmountMustBeLiteral(t *testing.T) {
	c := New(Bfv)
	x := c.AppendInputCiphertext(0)
	y := c.AppendInputCiphertext(1)
	c.AppendRotateLeft(x, y)

	err := c.Validate()
	require.Error(t, err)

	var irErr *IRError
	require.True(t, errors.As(err, &irErr))
	assert.Contains(t, irErr.Error(), "shift amount must be a literal")
}

func TestValidateDetectsCycle(t *testing.T) {
	c := New(Bfv)
	x := c.AppendInputCiphertext(0)
	add := c.AppendAdd(x, x)
	// force a back edge; builders cannot create one
	c.Graph.AddEdge(add, x, UnaryOperand)

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestValidateCollectsMultipleFindings(t *testing.T) {
	c := New(Bfv)
	x := c.AppendInputCiphertext(0)
	y := c.AppendInputCiphertext(1)
	neg := c.AppendNegate(x)
	c.Graph.AddEdge(y, neg, RightOperand)
	c.AppendRotateLeft(x, y)

	err := c.Validate()
	require.Error(t, err)

	var irErr *IRError
	require.True(t, errors.As(err, &irErr))
	assert.GreaterOrEqual(t, len(irErr.Errors), 2)
}

func TestSwappableValidator(t *testing.T) {
	old := DefaultValidator
	defer func() { DefaultValidator = old }()

	called := false
	DefaultValidator = func(c *Circuit) []error {
		called = true
		return nil
	}

	c := New(Bfv)
	x := c.AppendInputCiphertext(0)
	y := c.AppendInputCiphertext(1)
	c.AppendRotateLeft(x, y) // invalid under the default rules

	assert.NoError(t, c.Validate())
	assert.True(t, called)
}
