//go:build js && wasm

package main

import (
	"encoding/json"
	"strconv"
	"syscall/js"

	"github.com/op/go-logging"
	"github.com/pdbogen/unitdata/data"
	"github.com/pdbogen/unitdata/view"
)

var log = logging.MustGetLogger("js")

func LoadTables() (*data.Tables, error) {
	res, err := fetch("/data.json")
	if err != nil {
		return nil, err
	}
	if res.Status != 200 {
		return nil, &fetchError{res}
	}
	tables := &data.Tables{}
	if err := json.Unmarshal(res.Body, tables); err != nil {
		return nil, err
	}
	return tables, nil
}

type fetchError struct {
	res *Response
}

func (e *fetchError) Error() string {
	return "fetching /data.json: " + strconv.Itoa(e.res.Status) + " " + e.res.StatusText
}

func Stats() {
	tables, err := LoadTables()
	if err != nil {
		log.Errorf("loading tables: %s", err)
		return
	}

	c := view.New(Page{Document()}, tables.Characters, tables.Equipment)

	if err := c.Populate(); err != nil {
		log.Errorf("populating selectors: %s", err)
	}
	if missing := c.MissingOutputs(view.Slots...); len(missing) > 0 {
		log.Warningf("page is missing elements %v", missing)
	}

	for _, slot := range view.Slots {
		if value := Param(slot.Selector); value != "" {
			if err := c.Select(slot, value); err != nil {
				log.Warning(err)
			}
		}
	}

	if HaveChosen() {
		AttachChosen(c)
	} else {
		log.Warning("Chosen is not available; using plain selectors")
		AttachNative(c)
	}
}

func main() {
	println("unitdata starting")
	switch js.Global().Get("Entrypoint").String() {
	case "Stats":
		Stats()
	}

	select {}
}
