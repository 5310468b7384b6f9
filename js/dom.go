//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/pdbogen/unitdata/view"
)

func Document() js.Value {
	return js.Global().Get("document")
}

func CreateElement(tag string) js.Value {
	return Document().Call("createElement", tag)
}

func CreateElementText(tag, text string) js.Value {
	e := CreateElement(tag)
	e.Set("textContent", text)
	return e
}

// Page is the browser document as seen by the view controller.
type Page struct {
	doc js.Value
}

var _ view.Document = Page{}

func (p Page) QuerySelectorAll(selector string) []view.Element {
	list := p.doc.Call("querySelectorAll", selector)
	ret := make([]view.Element, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		ret = append(ret, &Element{v: list.Index(i)})
	}
	return ret
}

func (p Page) GetElementByID(id string) view.Element {
	el := p.doc.Call("getElementById", id)
	if el.Type() != js.TypeObject {
		return nil
	}
	return &Element{v: el}
}

type Element struct {
	v js.Value
}

// AppendOption turns a JS exception from the DOM into an error.
func (e *Element) AppendOption(value, label string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("appending option %q: %v", value, r)
		}
	}()
	opt := CreateElementText("option", label)
	opt.Set("value", value)
	e.v.Call("appendChild", opt)
	return nil
}

func (e *Element) Value() string {
	return e.v.Get("value").String()
}

func (e *Element) SetValue(value string) {
	e.v.Set("value", value)
}

func (e *Element) SetTextContent(text string) {
	e.v.Set("textContent", text)
}
