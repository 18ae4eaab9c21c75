package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageprobe/domain/interfaces"
)

type loginForm struct {
	root interfaces.Element
}

func newLoginForm(root interfaces.Element) *loginForm {
	return &loginForm{root: root}
}

func (f *loginForm) Root() (interfaces.Element, error) {
	return f.root, nil
}

func TestCreatePO(t *testing.T) {
	t.Run("without a finder the factory gets the source element", func(t *testing.T) {
		source := existingElement()

		form, err := CreatePO(source, newLoginForm)
		require.NoError(t, err)
		assert.Same(t, source, form.root)
		assert.Nil(t, source.createdWith)
	})

	t.Run("with a finder the factory gets the scoped element", func(t *testing.T) {
		child := existingElement()
		source := existingElement()
		source.child = child

		finder := interfaces.Finder{Selector: "form.login"}
		form, err := CreatePO(source, newLoginForm, finder)
		require.NoError(t, err)

		assert.Same(t, child, form.root)
		require.NotNil(t, source.createdWith)
		assert.Equal(t, finder, *source.createdWith)
		assert.Nil(t, source.createdIndices)
		assert.Nil(t, source.createdFilters)
	})

	t.Run("no existence check is performed", func(t *testing.T) {
		source := &fakeElement{present: false}
		source.child = &fakeElement{present: false}

		_, err := CreatePO(source, newLoginForm, interfaces.Finder{Selector: "input"})
		assert.NoError(t, err)
	})

	t.Run("scoped lookup failures surface", func(t *testing.T) {
		source := existingElement()
		source.err = errors.New("lookup failed")

		_, err := CreatePO(source, newLoginForm, interfaces.Finder{Selector: "input"})
		assert.ErrorContains(t, err, "lookup failed")
	})
}
