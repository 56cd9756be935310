package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	op := Operator{ID: "op-003", Name: "Mike Johnson", Store: "Store B"}
	tok, err := Generate("s3cret", op, "stockbridge", 5)
	require.NoError(t, err)

	got, err := Parse("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, op, got)

	_, err = Parse("otro", tok)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := Generate("", Operator{ID: "op-001"}, "", 5)
	assert.Error(t, err)
	_, err = Parse("", "x.y.z")
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	tok, err := Generate("s3cret", Operator{ID: "op-001", Name: "John Doe"}, "", -1)
	require.NoError(t, err)
	_, err = Parse("s3cret", tok)
	assert.Error(t, err)
}
