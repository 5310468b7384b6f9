//go:build js && wasm

package main

import (
	"errors"
	"fmt"
	"syscall/js"
)

type Response struct {
	Status     int
	StatusText string
	Body       []byte
}

// await blocks until promise settles. It must not be called from inside a js.FuncOf callback.
func await(promise js.Value) (js.Value, error) {
	done := make(chan js.Value, 1)
	failed := make(chan js.Value, 1)

	then := js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			done <- js.Undefined()
			return nil
		}
		done <- args[0]
		return nil
	})
	defer then.Release()
	catch := js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			failed <- js.Undefined()
			return nil
		}
		failed <- args[0]
		return nil
	})
	defer catch.Release()

	promise.Call("then", then).Call("catch", catch)

	select {
	case v := <-done:
		return v, nil
	case reason := <-failed:
		return js.Value{}, errors.New(reason.Call("toString").String())
	}
}

func fetch(url string) (*Response, error) {
	resValue, err := await(js.Global().Call("fetch", url))
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %s", url, err)
	}
	res := &Response{
		Status:     resValue.Get("status").Int(),
		StatusText: resValue.Get("statusText").String(),
	}

	text, err := await(resValue.Call("text"))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %s", url, err)
	}
	res.Body = []byte(text.String())
	return res, nil
}
