//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/pdbogen/unitdata/view"
)

func jQuery(selector string) js.Value {
	return js.Global().Call("jQuery", selector)
}

func HaveChosen() bool {
	jq := js.Global().Get("jQuery")
	if jq.Type() != js.TypeFunction {
		return false
	}
	return jq.Get("fn").Get("chosen").Type() == js.TypeFunction
}

func renderer(c *view.Controller, slot view.Slot) js.Func {
	return js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
		if err := c.Render(slot); err != nil {
			println("rendering #" + slot.Selector + ": " + err.Error())
		}
		return nil
	})
}

// AttachChosen enhances the selectors with the Chosen plug-in and forwards its change events to the renderers. The
// selectors must already be populated.
func AttachChosen(c *view.Controller) {
	jQuery(view.CharacterSelectors).Call("chosen")
	jQuery(view.EquipmentSelectors).Call("chosen")
	for _, slot := range view.Slots {
		jQuery("#"+slot.Selector).Call("chosen").Call("change", renderer(c, slot))
	}
	jQuery(".chosen-container").Call("css", map[string]interface{}{"width": "200px"})
	jQuery(".chosen-drop").Call("css", map[string]interface{}{"minWidth": "100%", "width": "auto"})
}

// AttachNative wires plain <select> change events, for when jQuery or Chosen failed to load.
func AttachNative(c *view.Controller) {
	for _, slot := range view.Slots {
		el := Document().Call("getElementById", slot.Selector)
		if el.Type() != js.TypeObject {
			continue
		}
		el.Call("addEventListener", "change", renderer(c, slot))
	}
}
