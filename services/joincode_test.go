package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJoinCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := GenerateJoinCode()
		require.NoError(t, err)
		assert.Len(t, code, JoinCodeLength)
		assert.Regexp(t, `^[0-9a-z]+$`, code)
		seen[code] = true
	}
	// 36^6 possibilities; collisions in 200 draws would point at a broken source.
	assert.Greater(t, len(seen), 190)
}

func TestDomainError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", notFound("channel", "c1"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "wrapped: not_found: channel c1", err.Error())

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "not_found", de.Outcome())
}
