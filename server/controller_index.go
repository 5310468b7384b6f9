package main

import (
	"net/http"

	"github.com/pdbogen/unitdata/types"
)

// IndexController serves the page for the WebAssembly front-end, which fills in the selectors itself.
func IndexController(JsHash, CssHash string) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			http.NotFound(rw, req)
			return
		}

		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		rw.WriteHeader(http.StatusOK)
		if err := TemplateRoot.ExecuteTemplate(rw, "index", PageContext{
			Title:       "Stats",
			JsHash:      JsHash,
			CssHash:     CssHash,
			Breakpoints: types.Breakpoints[:],
		}); err != nil {
			log.Errorf("writing index template: %s", err)
		}
	}
}
