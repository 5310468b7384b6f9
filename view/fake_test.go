package view

import (
	"errors"
	"strings"
)

type option struct {
	value, label string
}

type fakeElement struct {
	id       string
	classes  []string
	options  []option
	value    string
	text     string
	failOn   int // AppendOption fails once this many options exist; 0 disables
	panicOn  int
	appended int
}

func (e *fakeElement) AppendOption(value, label string) error {
	if e.failOn > 0 && len(e.options) >= e.failOn {
		return errors.New("insertion refused")
	}
	if e.panicOn > 0 && len(e.options) >= e.panicOn {
		panic("dom exploded")
	}
	e.options = append(e.options, option{value, label})
	e.appended++
	return nil
}

func (e *fakeElement) Value() string         { return e.value }
func (e *fakeElement) SetValue(value string) { e.value = value }
func (e *fakeElement) SetTextContent(t string) {
	e.text = t
}

type fakeDocument struct {
	elements []*fakeElement
}

func (d *fakeDocument) add(id string, classes ...string) *fakeElement {
	el := &fakeElement{id: id, classes: classes}
	d.elements = append(d.elements, el)
	return el
}

func (d *fakeDocument) QuerySelectorAll(selector string) []Element {
	class := strings.TrimPrefix(selector, ".")
	var ret []Element
	for _, el := range d.elements {
		for _, c := range el.classes {
			if c == class {
				ret = append(ret, el)
			}
		}
	}
	return ret
}

func (d *fakeDocument) GetElementByID(id string) Element {
	for _, el := range d.elements {
		if el.id == id {
			return el
		}
	}
	return nil
}

func (d *fakeDocument) text(id string) string {
	return d.GetElementByID(id).(*fakeElement).text
}

// statsPage builds a document with the three selectors and every output element.
func statsPage() *fakeDocument {
	doc := &fakeDocument{}
	doc.add("mainSlot", "chars")
	doc.add("subSlot", "chars")
	doc.add("equipSlot", "equips")
	for _, slot := range Slots {
		for _, out := range slot.outputs() {
			doc.add(out.ID)
		}
	}
	return doc
}
