package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ConfigInvalid, "bad exclusion entry", nil)
	assert.Equal(t, "[CONFIG_INVALID] bad exclusion entry", err.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := stderrors.New("unexpected end of JSON input")
	err := New(ConfigInvalid, "failed to parse config", cause)

	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	assert.True(t, stderrors.Is(err, cause))
}

func TestWithDetails(t *testing.T) {
	err := New(NoInput, "no files provided", nil).WithDetails(map[string]int{"argc": 0})
	assert.NotNil(t, err.Details)
}
