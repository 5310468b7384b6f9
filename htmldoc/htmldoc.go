// Package htmldoc implements view.Document over a parsed HTML page so the server can populate and render the same
// page the browser would.
package htmldoc

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/pdbogen/unitdata/view"
)

type Document struct {
	doc *goquery.Document
}

var _ view.Document = (*Document)(nil)

func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %s", err)
	}
	return &Document{doc: doc}, nil
}

func (d *Document) QuerySelectorAll(selector string) []view.Element {
	var ret []view.Element
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		ret = append(ret, &Element{sel})
	})
	return ret
}

func (d *Document) GetElementByID(id string) view.Element {
	sel := d.doc.Find("#" + id).First()
	if sel.Length() == 0 {
		return nil
	}
	return &Element{sel}
}

// Render writes the whole page, including the doctype.
func (d *Document) Render(w io.Writer) error {
	out, err := goquery.OuterHtml(d.doc.Selection)
	if err != nil {
		return fmt.Errorf("rendering page: %s", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type Element struct {
	sel *goquery.Selection
}

func (e *Element) AppendOption(value, label string) error {
	if !e.sel.Is("select") {
		return fmt.Errorf("cannot append an option to a %s", goquery.NodeName(e.sel))
	}
	e.sel.AppendHtml(`<option value="` + html.EscapeString(value) + `">` + html.EscapeString(label) + `</option>`)
	return nil
}

// Value follows the browser: the last option marked selected wins, otherwise the first option.
func (e *Element) Value() string {
	opts := e.sel.Find("option")
	chosen := opts.Filter("[selected]").Last()
	if chosen.Length() == 0 {
		chosen = opts.First()
	}
	if chosen.Length() == 0 {
		return e.sel.AttrOr("value", "")
	}
	if v, ok := chosen.Attr("value"); ok {
		return v
	}
	return chosen.Text()
}

func (e *Element) SetValue(value string) {
	if !e.sel.Is("select") {
		e.sel.SetAttr("value", value)
		return
	}
	e.sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		if opt.AttrOr("value", opt.Text()) == value {
			opt.SetAttr("selected", "selected")
		} else {
			opt.RemoveAttr("selected")
		}
	})
}

func (e *Element) SetTextContent(text string) {
	e.sel.SetText(text)
}
