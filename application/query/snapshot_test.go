package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageprobe/domain/entities"
)

func TestDescribe(t *testing.T) {
	t.Run("existing element", func(t *testing.T) {
		el := existingElement()
		el.focused = true
		el.style["visibility"] = "collapse"

		snap, err := Describe(el)
		require.NoError(t, err)
		assert.Equal(t, entities.ElementSnapshot{
			Exists:    true,
			Classes:   []string{"a", "b"},
			Displayed: true,
			Hidden:    true,
			Focused:   true,
			Text:      "hello",
		}, snap)
	})

	t.Run("absent element", func(t *testing.T) {
		snap, err := Describe(&fakeElement{present: false})
		require.NoError(t, err)
		assert.Equal(t, entities.ElementSnapshot{}, snap)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := Describe("nope")

		var wrongType *WrongTypeError
		assert.ErrorAs(t, err, &wrongType)
	})
}
