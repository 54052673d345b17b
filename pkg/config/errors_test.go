package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorError(t *testing.T) {
	baseErr := errors.New("base error")

	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "component, id and field",
			err:  NewValidationError("injection", "adaptive", "cooldownTicks", baseErr),
			want: "injection 'adaptive': field 'cooldownTicks': base error",
		},
		{
			name: "component and id",
			err:  NewValidationError("auth", "admin", "", errors.New("duplicate user")),
			want: "auth 'admin': duplicate user",
		},
		{
			name: "component and field",
			err:  NewValidationError("tick", "", "interval", errors.New("must be positive in timer mode")),
			want: "tick: field 'interval': must be positive in timer mode",
		},
		{
			name: "component only",
			err:  NewValidationError("gateway", "", "", errors.New("no plugins configured")),
			want: "gateway: no plugins configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	vErr := NewValidationError("database", "", "driver", ErrInvalidValue)

	assert.ErrorIs(t, vErr, ErrInvalidValue)
	assert.Equal(t, ErrInvalidValue, vErr.Unwrap())

	// Wrapping preserves the chain.
	wrapped := fmt.Errorf("database validation failed: %w", vErr)
	assert.ErrorIs(t, wrapped, ErrInvalidValue)

	var target *ValidationError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "database", target.Component)
}

func TestLoadError(t *testing.T) {
	lErr := NewLoadError("steward.yaml", fmt.Errorf("%w: /etc/steward/steward.yaml", ErrConfigNotFound))

	assert.Equal(t, "failed to load steward.yaml: configuration file not found: /etc/steward/steward.yaml", lErr.Error())
	assert.ErrorIs(t, lErr, ErrConfigNotFound)
}

func TestSentinelErrors(t *testing.T) {
	// The loader wraps these; callers must be able to test with errors.Is.
	wrapped := fmt.Errorf("%w: bad mapping", ErrInvalidYAML)
	assert.ErrorIs(t, wrapped, ErrInvalidYAML)
	assert.NotErrorIs(t, wrapped, ErrConfigNotFound)
}
