// Package view binds the character and equipment tables to a page: it fills the selector dropdowns and writes the
// stats of the selected entry into the page's output elements.
//
// The page is reached through Document, so the same Controller drives the browser DOM (see the js front-end) and a
// parsed HTML page on the server (see package htmldoc).
package view

// Document is the part of a page the controller needs.
type Document interface {
	// QuerySelectorAll returns every element matching a CSS selector, in document order.
	QuerySelectorAll(selector string) []Element
	// GetElementByID returns the element with the given id, or nil.
	GetElementByID(id string) Element
}

type Element interface {
	// AppendOption adds an <option> to a <select>.
	AppendOption(value, label string) error
	// Value is the value of a <select>'s selected option.
	Value() string
	SetValue(value string)
	SetTextContent(text string)
}

const (
	CharacterSelectors = ".chars"
	EquipmentSelectors = ".equips"
)
