package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	c := createSimpleDag()
	mul := c.Graph.NodeIDs()[4]
	c.AppendOutputCiphertext(mul)

	restored, err := Deserialize(c.Serialize())
	require.NoError(t, err)

	assert.Equal(t, c.Scheme, restored.Scheme)
	assert.True(t, c.Equal(restored))
}

func TestSerializeCompactsDeadSlots(t *testing.T) {
	c := New(Ckks)
	x := c.AppendInputCiphertext(0)
	dead := c.AppendInputCiphertext(1)
	neg := c.AppendNegate(x)
	c.RemoveNode(dead)
	c.AppendOutputCiphertext(neg)

	restored, err := Deserialize(c.Serialize())
	require.NoError(t, err)

	assert.Equal(t, 3, restored.Graph.NodeCount())
	assert.True(t, c.Equal(restored))
}

func TestDeserializeGarbage(t *testing.T) {
	_, err := Deserialize([]byte("not a circuit"))
	assert.Error(t, err)
}

func TestFingerprintIsStable(t *testing.T) {
	a := createSimpleDag()
	b := createSimpleDag()

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintChangesWithCircuit(t *testing.T) {
	a := createSimpleDag()
	b := createSimpleDag()
	mul := b.Graph.NodeIDs()[4]
	b.AppendOutputCiphertext(mul)

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
