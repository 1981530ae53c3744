package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapSetupError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		w, h     int
		err      error
		expected string
		isNil    bool
	}{
		{
			name:  "nil error returns nil",
			op:    "init grid",
			w:     5,
			h:     5,
			err:   nil,
			isNil: true,
		},
		{
			name:     "invalid dimension",
			op:       "init grid",
			w:        1,
			h:        5,
			err:      ErrInvalidDimension,
			expected: "init grid (1x5): invalid grid dimension",
		},
		{
			name:     "wrapped cause",
			op:       "init grid",
			w:        0,
			h:        0,
			err:      fmt.Errorf("%w: too small", ErrInvalidDimension),
			expected: "init grid (0x0): invalid grid dimension: too small",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapSetupError(tt.op, tt.w, tt.h, tt.err)
			if tt.isNil {
				assert.Nil(t, wrapped)
				return
			}
			require.NotNil(t, wrapped)
			assert.Equal(t, tt.expected, wrapped.Error())
			assert.True(t, errors.Is(wrapped, ErrInvalidDimension))
		})
	}
}

func TestSetupError_WithTeamSize(t *testing.T) {
	err := &SetupError{Op: "spawn teams", Width: 3, Height: 3, TeamSize: 5, Err: ErrCapacityExceeded}

	assert.Equal(t, "spawn teams (3x3, team size 5): team size exceeds grid capacity", err.Error())
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.False(t, errors.Is(err, ErrInvalidDimension))
}

func TestWrapTurnError(t *testing.T) {
	assert.Nil(t, WrapTurnError(3, nil))

	err := WrapTurnError(12, ErrLevelEnded)
	assert.Equal(t, "turn 12: level has ended", err.Error())
	assert.True(t, errors.Is(err, ErrLevelEnded))
}
