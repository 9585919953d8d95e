package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotConfiguredError(t *testing.T) {
	assert.False(t, IsNotConfiguredError(nil))
	assert.True(t, IsNotConfiguredError(ErrNotConfigured))
	assert.True(t, IsNotConfiguredError(fmt.Errorf("task tracker: %w", ErrNotConfigured)))
	assert.False(t, IsNotConfiguredError(fmt.Errorf("connection refused")))
	assert.False(t, IsNotConfiguredError(ErrNotFound))
}
