package interfaces

// Finder describes how a scoped sub-element is located relative to a parent
// element. Interpretation of the selector is up to the element backend.
type Finder struct {
	Selector string
}

// Filter narrows a candidate element during scoped lookup.
type Filter func(Element) (bool, error)

// Element is a handle to a single UI element. Handles are lazy: they may be
// created for elements that are not (or not yet) present on the page, which
// is why every read can report a backend failure.
type Element interface {
	// Exists reports whether the element is currently present on the page
	Exists() (bool, error)

	// Classes returns the element's CSS classes
	Classes() ([]string, error)

	// IsDisplayed reports whether the element is rendered and visible
	IsDisplayed() (bool, error)

	// ComputedStyle returns the computed value of a single style property
	ComputedStyle(property string) (string, error)

	// IsFocused reports whether the element currently holds input focus
	IsFocused() (bool, error)

	// InnerText returns the element's visible text content
	InnerText() (string, error)

	// CreateElement derives a scoped sub-element handle. Indices select
	// among multiple matches; filters reject handles that do not satisfy
	// a predicate.
	CreateElement(finder Finder, indices []int, filters []Filter) (Element, error)
}

// PageObject is implemented by user-defined composites that wrap a root
// element plus named sub-element accessors. Only the root accessor is
// required here.
type PageObject interface {
	// Root returns the page object's root element
	Root() (Element, error)
}

// Collection is an ordered group of page objects or elements.
type Collection interface {
	// IsEmpty reports whether the collection has no members
	IsEmpty() (bool, error)
}
