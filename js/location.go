//go:build js && wasm

package main

import (
	"net/url"
	"syscall/js"
)

// Param returns a query parameter of the page URL, e.g. the mainSlot of /?mainSlot=3.
func Param(name string) string {
	href := js.Global().Get("location").Get("href").String()
	loc, err := url.Parse(href)
	if err != nil {
		println("could not parse page URL " + href + ": " + err.Error())
		return ""
	}
	return loc.Query().Get(name)
}
