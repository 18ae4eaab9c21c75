// Package query provides element state predicates for page-object style UI
// tests. Every function accepts an element handle or a page object (and, for
// the existence checks, a collection) so that page objects do not need to
// re-expose low-level element properties.
package query

import (
	"errors"
	"slices"

	"pageprobe/domain/interfaces"
)

// Operation labels used in error messages. Positive/negative pairs share one
// label so that a negated call reports the same operation as its guard path.
const (
	opRootElementOf = "RootElementOf"
	opExists        = "Exists/NotExists"
	opHasClass      = "HasClass"
	opIsDisplayed   = "IsDisplayed/IsNotDisplayed"
	opIsHidden      = "IsHidden/IsNotHidden"
	opIsFocused     = "IsFocused/IsNotFocused"
	opInnerText     = "InnerText"
)

// RootElementOf resolves an item to its underlying element. Elements are
// returned unchanged, page objects yield their root element, anything else
// is a WrongTypeError. A PageLoadError from the root accessor propagates
// unchanged; any other accessor failure is normalized to a WrongTypeError.
func RootElementOf(item any) (interfaces.Element, error) {
	switch v := item.(type) {
	case interfaces.Element:
		return v, nil
	case interfaces.PageObject:
		root, err := v.Root()
		if err != nil {
			if isPageLoad(err) {
				return nil, err
			}
			return nil, newWrongType(opRootElementOf)
		}
		return root, nil
	default:
		return nil, newWrongType(opRootElementOf)
	}
}

// Exists reports whether an item is present. Collections are present when
// they are not empty, regardless of whether their members individually
// exist; everything else is resolved to its root element and checked.
func Exists(item any) (bool, error) {
	if c, ok := item.(interfaces.Collection); ok {
		empty, err := c.IsEmpty()
		if err != nil {
			return false, err
		}
		return !empty, nil
	}

	el, err := RootElementOf(item)
	if err == nil {
		present, readErr := el.Exists()
		if readErr == nil {
			return present, nil
		}
		err = readErr
	}

	var wrongType *WrongTypeError
	if errors.As(err, &wrongType) || isPageLoad(err) {
		return false, err
	}
	return false, newWrongType(opExists)
}

// NotExists is the negation of Exists
func NotExists(item any) (bool, error) {
	present, err := Exists(item)
	if err != nil {
		return false, err
	}
	return !present, nil
}

// HasClass reports whether the item's element carries the given CSS class
func HasClass(item any, class string) (bool, error) {
	el, err := resolveAndCheck(item, opHasClass)
	if err != nil {
		return false, err
	}
	classes, err := el.Classes()
	if err != nil {
		return false, err
	}
	return slices.Contains(classes, class), nil
}

// IsDisplayed reports whether the item's element is rendered and visible
func IsDisplayed(item any) (bool, error) {
	el, err := resolveAndCheck(item, opIsDisplayed)
	if err != nil {
		return false, err
	}
	return el.IsDisplayed()
}

// IsNotDisplayed is the negation of IsDisplayed
func IsNotDisplayed(item any) (bool, error) {
	displayed, err := IsDisplayed(item)
	if err != nil {
		return false, err
	}
	return !displayed, nil
}

// IsHidden reports whether the item's element is hidden through its
// computed visibility style
func IsHidden(item any) (bool, error) {
	el, err := resolveAndCheck(item, opIsHidden)
	if err != nil {
		return false, err
	}
	visibility, err := el.ComputedStyle("visibility")
	if err != nil {
		return false, err
	}
	return visibility == "hidden" || visibility == "collapse", nil
}

// IsNotHidden is the negation of IsHidden
func IsNotHidden(item any) (bool, error) {
	hidden, err := IsHidden(item)
	if err != nil {
		return false, err
	}
	return !hidden, nil
}

// IsFocused reports whether the item's element holds input focus
func IsFocused(item any) (bool, error) {
	el, err := resolveAndCheck(item, opIsFocused)
	if err != nil {
		return false, err
	}
	return el.IsFocused()
}

// IsNotFocused is the negation of IsFocused
func IsNotFocused(item any) (bool, error) {
	focused, err := IsFocused(item)
	if err != nil {
		return false, err
	}
	return !focused, nil
}

// InnerText returns the visible text of the item's element
func InnerText(item any) (string, error) {
	el, err := resolveAndCheck(item, opInnerText)
	if err != nil {
		return "", err
	}
	return el.InnerText()
}

// resolveAndCheck - resolves an item to its root element and requires that
// the element currently exists. Resolution failures are reported under the
// caller's operation label; the one exception is a PageLoadError, which
// callers must be able to tell apart from a bad argument and which
// therefore propagates unchanged.
func resolveAndCheck(item any, op string) (interfaces.Element, error) {
	el, err := RootElementOf(item)
	if err != nil {
		if isPageLoad(err) {
			return nil, err
		}
		return nil, newWrongType(op)
	}

	present, err := el.Exists()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, newNonExisting(op)
	}
	return el, nil
}

// isPageLoad - reports whether err is a backend lookup/IO failure
func isPageLoad(err error) bool {
	var loadErr *interfaces.PageLoadError
	return errors.As(err, &loadErr)
}
