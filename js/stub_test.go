//go:build js && wasm

package main

import (
	"syscall/js"
	"testing"

	"github.com/pdbogen/unitdata/types"
	"github.com/pdbogen/unitdata/view"
)

// stubDOM installs a minimal global document: getElementById, querySelectorAll on a single class, createElement,
// and elements that record appended children and event listeners.
const stubDOM = `(function () {
  const byId = {};
  const all = [];
  function makeEl(tag, id, classes) {
    const el = {
      tagName: tag.toUpperCase(), id: id || "", classes: classes || [],
      value: "", textContent: "", children: [], listeners: {},
      appendChild(child) { this.children.push(child); return child; },
      addEventListener(type, fn) { this.listeners[type] = fn; },
    };
    if (id) { byId[id] = el; }
    return el;
  }
  globalThis.document = {
    getElementById(id) { return byId[id] === undefined ? null : byId[id]; },
    querySelectorAll(sel) { const cls = sel.replace(/^\./, ""); return all.filter((e) => e.classes.includes(cls)); },
    createElement(tag) { return makeEl(tag); },
  };
  globalThis.__add = function (tag, id, cls) {
    const el = makeEl(tag, id, cls ? [cls] : []);
    all.push(el);
    return el;
  };
})();`

// stubChosen installs a jQuery whose change() records the handler per selector.
const stubChosen = `(function () {
  globalThis.__changes = {};
  globalThis.jQuery = function (sel) {
    const obj = {
      chosen() { return obj; },
      change(fn) { globalThis.__changes[sel] = fn; return obj; },
      css() { return obj; },
    };
    return obj;
  };
  globalThis.jQuery.fn = { chosen: function () {} };
})();`

func eval(src string) {
	js.Global().Call("eval", src)
}

// statsPage installs the stub document with the three selectors and every output element.
func statsPage(t *testing.T) {
	t.Helper()
	eval(stubDOM)
	js.Global().Delete("jQuery")
	add := js.Global().Get("__add")
	add.Invoke("select", "mainSlot", "chars")
	add.Invoke("select", "subSlot", "chars")
	add.Invoke("select", "equipSlot", "equips")
	for _, slot := range view.Slots {
		outputs := view.EquipmentOutputs(slot, nil)
		if slot.Kind == view.CharacterSlot {
			outputs = view.CharacterOutputs(slot, nil)
		}
		for _, out := range outputs {
			add.Invoke("td", out.ID)
		}
	}
}

func byID(id string) js.Value {
	return Document().Call("getElementById", id)
}

func textOf(id string) string {
	return byID(id).Get("textContent").String()
}

func testController(t *testing.T) *view.Controller {
	t.Helper()
	chars := types.CharacterTable{
		3: {
			Name:    "Hero",
			DevName: "Hero_03",
			Attack:  [types.BreakpointCount]float64{10, 20, 30, 40, 50},
			HP:      [types.BreakpointCount]float64{100, 200, 300, 400, 500},
		},
		1: {
			Name:    "Sidekick",
			DevName: "Hero_01",
			Attack:  [types.BreakpointCount]float64{1, 2, 3, 4, 5},
			HP:      [types.BreakpointCount]float64{6, 7, 8, 9, 10},
		},
	}
	equips := types.EquipmentTable{2: {Name: "Sword", DevName: "Equip_Sword", Attack: 120, HP: 0}}

	c := view.New(Page{Document()}, chars, equips)
	if err := c.Populate(); err != nil {
		t.Fatalf("populating: %v", err)
	}
	return c
}
