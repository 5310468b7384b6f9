package main

import (
	"io/fs"
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/lpar/gzipped"
	"github.com/pdbogen/unitdata/data"
)

const msgInternalServerError = "sorry! something went wrong on our end."

func Routes(tables *data.Tables, assets fs.FS) (http.Handler, error) {
	JsHash, err := AssetHash(assets, "app.js")
	if err != nil {
		return nil, err
	}
	CssHash, err := AssetHash(assets, "style.css")
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/", gziphandler.GzipHandler(http.HandlerFunc(IndexController(JsHash, CssHash))))
	mux.Handle("/static", gziphandler.GzipHandler(http.HandlerFunc(StaticController(tables, CssHash))))
	mux.Handle("/data.json", gziphandler.GzipHandler(http.HandlerFunc(GetTables(tables))))
	mux.Handle("/assets/", http.StripPrefix("/assets/", gzipped.FileServer(http.FS(assets))))
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Content-Type", "text/plain")
		rw.Write([]byte("ok\n"))
	})
	return mux, nil
}
