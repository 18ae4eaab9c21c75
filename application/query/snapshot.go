package query

import (
	"pageprobe/domain/entities"
)

// Describe collects every state predicate for an item into one snapshot.
// An absent element yields a snapshot with Exists false and zero values for
// the remaining fields instead of an error.
func Describe(item any) (entities.ElementSnapshot, error) {
	present, err := Exists(item)
	if err != nil {
		return entities.ElementSnapshot{}, err
	}
	if !present {
		return entities.ElementSnapshot{}, nil
	}

	el, err := RootElementOf(item)
	if err != nil {
		return entities.ElementSnapshot{}, err
	}

	classes, err := el.Classes()
	if err != nil {
		return entities.ElementSnapshot{}, err
	}
	displayed, err := el.IsDisplayed()
	if err != nil {
		return entities.ElementSnapshot{}, err
	}
	visibility, err := el.ComputedStyle("visibility")
	if err != nil {
		return entities.ElementSnapshot{}, err
	}
	focused, err := el.IsFocused()
	if err != nil {
		return entities.ElementSnapshot{}, err
	}
	text, err := el.InnerText()
	if err != nil {
		return entities.ElementSnapshot{}, err
	}

	return entities.ElementSnapshot{
		Exists:    true,
		Classes:   classes,
		Displayed: displayed,
		Hidden:    visibility == "hidden" || visibility == "collapse",
		Focused:   focused,
		Text:      text,
	}, nil
}
