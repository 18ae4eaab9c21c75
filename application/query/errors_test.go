package query

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageprobe/domain/interfaces"
)

func TestWrongTypeErrorMessages(t *testing.T) {
	wrongType := newWrongType("HasClass")
	assert.Equal(t, "HasClass may only be called on page objects or elements", wrongType.Error())

	nonExisting := newNonExisting("IsDisplayed/IsNotDisplayed")
	assert.Equal(t,
		"IsDisplayed/IsNotDisplayed is being called on a non-existent page object or element; use Exists or NotExists instead if absence is expected",
		nonExisting.Error())
}

func TestWrongTypeErrorKindsAreDistinguishable(t *testing.T) {
	var err error = newNonExisting("InnerText")

	var wrongType *WrongTypeError
	require.ErrorAs(t, err, &wrongType)
	assert.Equal(t, NonExisting, wrongType.Kind)
	assert.Equal(t, "InnerText", wrongType.Op)

	// A backend failure never matches the argument-error type.
	var loadErr *interfaces.PageLoadError
	assert.False(t, errors.As(err, &loadErr))
}

func TestPageLoadErrorWrapsItsCause(t *testing.T) {
	cause := errors.New("chromedriver unreachable")
	err := fmt.Errorf("query failed: %w", &interfaces.PageLoadError{Op: "Exists", Err: cause})

	var loadErr *interfaces.PageLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "Exists", loadErr.Op)
	assert.ErrorIs(t, err, cause)
}
