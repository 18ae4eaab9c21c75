package entities

// ElementSnapshot captures the queryable state of a single element at one
// point in time.
type ElementSnapshot struct {
	Selector  string   `json:"selector,omitempty"` // How the element was addressed, if known
	Exists    bool     `json:"exists"`             // Present on the page
	Classes   []string `json:"classes,omitempty"`  // CSS classes
	Displayed bool     `json:"displayed"`          // Rendered and visible
	Hidden    bool     `json:"hidden"`             // visibility: hidden or collapse
	Focused   bool     `json:"focused"`            // Holds input focus
	Text      string   `json:"text,omitempty"`     // Visible text
}
