package shared

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	err := NewDomainError(CodeNotFound, "Invoice not found")

	assert.Equal(t, "Invoice not found", err.Error())
	assert.Equal(t, CodeNotFound, err.Code)
}

func TestDomainError_Is(t *testing.T) {
	t.Run("matches by code", func(t *testing.T) {
		err := NewDomainError(CodeNotFound, "Process not found")
		assert.True(t, IsNotFound(err))
		assert.False(t, IsInvalidInput(err))
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", NewDomainError(CodeInvalidInput, "bad type"))
		assert.True(t, IsInvalidInput(err))
		assert.False(t, IsNotFound(err))
	})

	t.Run("plain errors never match", func(t *testing.T) {
		assert.False(t, IsNotFound(fmt.Errorf("boom")))
		assert.False(t, IsNotFound(nil))
	})
}
