package main

import (
	"encoding/json"
	"net/http"

	"github.com/pdbogen/unitdata/data"
)

// GetTables serves both tables as JSON for the WebAssembly front-end.
func GetTables(tables *data.Tables) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			rw.Header().Set("Allow", "GET, HEAD")
			http.Error(rw, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(http.StatusOK)
		enc := json.NewEncoder(rw)
		if err := enc.Encode(tables); err != nil {
			log.Errorf("encoding JSON for tables: %s", err)
		}
	}
}
