//go:generate env GOARCH=wasm GOOS=js go build -o server/static/unitdata.wasm ./js/
//go:generate gzip -f -9 server/static/unitdata.wasm
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" server/static/ 2>/dev/null || cp \"$(go env GOROOT)/misc/wasm/wasm_exec.js\" server/static/"
package main
