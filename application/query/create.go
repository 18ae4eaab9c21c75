package query

import "pageprobe/domain/interfaces"

// CreatePO builds a page object from a source element. Without a finder the
// factory is applied to the source element directly; with a finder the
// factory is applied to the scoped sub-element the finder locates. No
// existence check is performed on either element.
func CreatePO[T any](source interfaces.Element, factory func(interfaces.Element) T, finder ...interfaces.Finder) (T, error) {
	if len(finder) == 0 {
		return factory(source), nil
	}

	scoped, err := source.CreateElement(finder[0], nil, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return factory(scoped), nil
}
