package errors

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFromStatus(t *testing.T) {
	assert.Equal(t, ErrUnauthorized, FromStatus(401))
	assert.Equal(t, ErrNotFound, FromStatus(404))
	assert.Equal(t, ErrValidation, FromStatus(422))
	assert.Equal(t, ErrValidation, FromStatus(400))
	assert.Equal(t, ErrRemote, FromStatus(500))
	assert.Equal(t, ErrRemote, FromStatus(503))
}

func TestWrapKeepsSentinelVisible(t *testing.T) {
	err := WrapWithCode(FromStatus(401), "401", "POST /login returned 401")

	assert.Equal(t, true, IsUnauthorized(err))
	assert.Equal(t, false, IsValidation(err))
	assert.Equal(t, "401", GetCode(err))
	assert.Equal(t, "POST /login returned 401", GetMessage(err))
}

func TestWrapNil(t *testing.T) {
	assert.Equal(t, nil, Wrap(nil, "nothing"))
	assert.Equal(t, nil, WrapWithCode(nil, "X", "nothing"))
}

func TestDoubleWrap(t *testing.T) {
	inner := WrapWithCode(ErrNetwork, "NETWORK", "GET /stories: connection refused")
	outer := Wrap(inner, "feed refresh")

	assert.Equal(t, true, IsNetwork(outer))
	assert.Equal(t, "NETWORK", GetCode(inner))
}
