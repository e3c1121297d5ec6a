package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("glaze.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "glaze.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "glaze.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("glaze.yaml", 0, fmt.Errorf("no such file"))
	require.Contains(t, err.Error(), "glaze.yaml: no such file")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("light.palette.primary.base", "must be a hex colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "light.palette.primary.base", validationErr.Field)
	require.Contains(t, err.Error(), "must be a hex colour")
}

func TestValidationErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("struct validation failed")
	err := NewValidationError("mode", "must be one of: light dark", underlying)
	require.True(t, stdErrors.Is(err, underlying))
}
