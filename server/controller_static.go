package main

import (
	"bytes"
	"net/http"

	"github.com/pdbogen/unitdata/data"
	"github.com/pdbogen/unitdata/htmldoc"
	"github.com/pdbogen/unitdata/types"
	"github.com/pdbogen/unitdata/view"
)

// StaticController renders the stats page on the server: selectors are populated and any slot named in the query
// (e.g. ?mainSlot=3) is selected and rendered, so the page works without scripts.
func StaticController(tables *data.Tables, CssHash string) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		if err := req.ParseForm(); err != nil {
			http.Error(rw, "hmm, that request didn't look right. Go back and try again, perhaps?", http.StatusBadRequest)
			return
		}

		var page bytes.Buffer
		if err := TemplateRoot.ExecuteTemplate(&page, "index", PageContext{
			Title:       "Stats",
			Static:      true,
			CssHash:     CssHash,
			Breakpoints: types.Breakpoints[:],
		}); err != nil {
			log.Errorf("executing index template: %s", err)
			http.Error(rw, msgInternalServerError, http.StatusInternalServerError)
			return
		}

		doc, err := htmldoc.Parse(&page)
		if err != nil {
			log.Errorf("parsing rendered index: %s", err)
			http.Error(rw, msgInternalServerError, http.StatusInternalServerError)
			return
		}

		c := view.New(doc, tables.Characters, tables.Equipment)
		if err := c.Populate(); err != nil {
			// serve whatever made it into the selectors
			log.Errorf("populating selectors: %s", err)
		}

		for _, slot := range view.Slots {
			value := req.FormValue(slot.Selector)
			if value == "" {
				continue
			}
			if err := c.Select(slot, value); err != nil {
				log.Debugf("selecting %q in #%s: %s", value, slot.Selector, err)
			}
		}

		out, err := doc.Bytes()
		if err != nil {
			log.Errorf("rendering page: %s", err)
			http.Error(rw, msgInternalServerError, http.StatusInternalServerError)
			return
		}
		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		rw.WriteHeader(http.StatusOK)
		if _, err := rw.Write(out); err != nil {
			log.Debugf("writing page: %s", err)
		}
	}
}
