package browser

import (
	"fmt"
	"strings"

	"github.com/tebeka/selenium"

	"pageprobe/domain/interfaces"
)

// seleniumElement is a lazy element handle addressed by a CSS selector.
// The element is re-resolved on every read, so a handle stays usable across
// page reloads. Scoped handles combine selectors with the descendant
// combinator, which restricts finders to CSS selectors on this backend.
type seleniumElement struct {
	wd       selenium.WebDriver
	selector string
	index    int
}

// NewSeleniumElement - wraps a CSS selector as an element handle
func NewSeleniumElement(wd selenium.WebDriver, selector string) interfaces.Element {
	return &seleniumElement{wd: wd, selector: selector}
}

// resolve - finds the addressed element. A missing element is reported via
// the found flag, every other driver failure as a PageLoadError.
func (e *seleniumElement) resolve(op string) (selenium.WebElement, bool, error) {
	elements, err := e.wd.FindElements(selenium.ByCSSSelector, e.selector)
	if err != nil {
		if strings.Contains(err.Error(), "no such element") {
			return nil, false, nil
		}
		return nil, false, &interfaces.PageLoadError{Op: op, Err: err}
	}
	if e.index >= len(elements) {
		return nil, false, nil
	}
	return elements[e.index], true, nil
}

// mustResolve - finds the addressed element, reporting a missing element as
// a lookup failure. Used by reads that are only reachable behind an
// existence check, where disappearance means the page changed under us.
func (e *seleniumElement) mustResolve(op string) (selenium.WebElement, error) {
	element, found, err := e.resolve(op)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &interfaces.PageLoadError{Op: op, Err: fmt.Errorf("element %q disappeared", e.selector)}
	}
	return element, nil
}

func (e *seleniumElement) Exists() (bool, error) {
	_, found, err := e.resolve("Exists")
	return found, err
}

func (e *seleniumElement) Classes() ([]string, error) {
	element, err := e.mustResolve("Classes")
	if err != nil {
		return nil, err
	}

	attr, err := element.GetAttribute("class")
	// The wire protocol reports a missing attribute as an error
	if err != nil && err.Error() != "nil return value" {
		return nil, &interfaces.PageLoadError{Op: "Classes", Err: err}
	}
	return strings.Fields(attr), nil
}

func (e *seleniumElement) IsDisplayed() (bool, error) {
	element, err := e.mustResolve("IsDisplayed")
	if err != nil {
		return false, err
	}

	displayed, err := element.IsDisplayed()
	if err != nil {
		return false, &interfaces.PageLoadError{Op: "IsDisplayed", Err: err}
	}
	return displayed, nil
}

func (e *seleniumElement) ComputedStyle(property string) (string, error) {
	element, err := e.mustResolve("ComputedStyle")
	if err != nil {
		return "", err
	}

	value, err := element.CSSProperty(property)
	if err != nil {
		return "", &interfaces.PageLoadError{Op: "ComputedStyle", Err: err}
	}
	return value, nil
}

func (e *seleniumElement) IsFocused() (bool, error) {
	element, err := e.mustResolve("IsFocused")
	if err != nil {
		return false, err
	}

	value, err := e.wd.ExecuteScript("return document.activeElement === arguments[0];", []interface{}{element})
	if err != nil {
		return false, &interfaces.PageLoadError{Op: "IsFocused", Err: err}
	}
	focused, ok := value.(bool)
	if !ok {
		return false, &interfaces.PageLoadError{Op: "IsFocused", Err: fmt.Errorf("unexpected script result %T", value)}
	}
	return focused, nil
}

func (e *seleniumElement) InnerText() (string, error) {
	element, err := e.mustResolve("InnerText")
	if err != nil {
		return "", err
	}

	text, err := element.Text()
	if err != nil {
		return "", &interfaces.PageLoadError{Op: "InnerText", Err: err}
	}
	return text, nil
}

func (e *seleniumElement) CreateElement(finder interfaces.Finder, indices []int, filters []interfaces.Filter) (interfaces.Element, error) {
	child := &seleniumElement{
		wd:       e.wd,
		selector: e.selector + " " + finder.Selector,
	}
	if len(indices) > 0 {
		child.index = indices[0]
	}

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

// seleniumCollection is the set of all matches of a CSS selector
type seleniumCollection struct {
	wd       selenium.WebDriver
	selector string
}

func (c *seleniumCollection) IsEmpty() (bool, error) {
	elements, err := c.wd.FindElements(selenium.ByCSSSelector, c.selector)
	if err != nil {
		if strings.Contains(err.Error(), "no such element") {
			return true, nil
		}
		return false, &interfaces.PageLoadError{Op: "IsEmpty", Err: err}
	}
	return len(elements) == 0, nil
}

var _ interfaces.Element = (*seleniumElement)(nil)
var _ interfaces.Collection = (*seleniumCollection)(nil)
