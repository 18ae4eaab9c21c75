package browser

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"pageprobe/domain/interfaces"
)

// playwrightElement is a lazy element handle backed by a playwright locator.
// The locator is only resolved when a state property is read, so handles may
// be created for elements that are not on the page.
type playwrightElement struct {
	locator playwright.Locator
}

// NewPlaywrightElement - wraps a playwright locator as an element handle
func NewPlaywrightElement(locator playwright.Locator) interfaces.Element {
	return &playwrightElement{locator: locator}
}

func (e *playwrightElement) Exists() (bool, error) {
	count, err := e.locator.Count()
	if err != nil {
		return false, &interfaces.PageLoadError{Op: "Exists", Err: err}
	}
	return count > 0, nil
}

func (e *playwrightElement) Classes() ([]string, error) {
	attr, err := e.locator.GetAttribute("class")
	if err != nil {
		return nil, &interfaces.PageLoadError{Op: "Classes", Err: err}
	}
	return strings.Fields(attr), nil
}

func (e *playwrightElement) IsDisplayed() (bool, error) {
	visible, err := e.locator.IsVisible()
	if err != nil {
		return false, &interfaces.PageLoadError{Op: "IsDisplayed", Err: err}
	}
	return visible, nil
}

func (e *playwrightElement) ComputedStyle(property string) (string, error) {
	value, err := e.locator.Evaluate("(el, prop) => getComputedStyle(el).getPropertyValue(prop)", property)
	if err != nil {
		return "", &interfaces.PageLoadError{Op: "ComputedStyle", Err: err}
	}
	str, ok := value.(string)
	if !ok {
		return "", &interfaces.PageLoadError{Op: "ComputedStyle", Err: fmt.Errorf("unexpected evaluation result %T", value)}
	}
	return str, nil
}

func (e *playwrightElement) IsFocused() (bool, error) {
	value, err := e.locator.Evaluate("el => el === document.activeElement", nil)
	if err != nil {
		return false, &interfaces.PageLoadError{Op: "IsFocused", Err: err}
	}
	focused, ok := value.(bool)
	if !ok {
		return false, &interfaces.PageLoadError{Op: "IsFocused", Err: fmt.Errorf("unexpected evaluation result %T", value)}
	}
	return focused, nil
}

func (e *playwrightElement) InnerText() (string, error) {
	text, err := e.locator.InnerText()
	if err != nil {
		return "", &interfaces.PageLoadError{Op: "InnerText", Err: err}
	}
	return text, nil
}

func (e *playwrightElement) CreateElement(finder interfaces.Finder, indices []int, filters []interfaces.Filter) (interfaces.Element, error) {
	scoped := e.locator.Locator(finder.Selector)
	for _, i := range indices {
		scoped = scoped.Nth(i)
	}

	child := &playwrightElement{locator: scoped}
	for _, filter := range filters {
		ok, err := filter(child)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &interfaces.PageLoadError{Op: "CreateElement", Err: fmt.Errorf("no element under %q satisfies the filter", finder.Selector)}
		}
	}
	return child, nil
}

// playwrightCollection is the set of all matches of a locator
type playwrightCollection struct {
	locator playwright.Locator
}

func (c *playwrightCollection) IsEmpty() (bool, error) {
	count, err := c.locator.Count()
	if err != nil {
		return false, &interfaces.PageLoadError{Op: "IsEmpty", Err: err}
	}
	return count == 0, nil
}

var _ interfaces.Element = (*playwrightElement)(nil)
var _ interfaces.Collection = (*playwrightCollection)(nil)
