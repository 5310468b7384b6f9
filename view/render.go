package view

import (
	"strconv"

	"github.com/pdbogen/unitdata/types"
)

// Placeholder is written into every output of a slot whose selector does not resolve to an entry.
const Placeholder = "N/A"

type SlotKind int

const (
	CharacterSlot SlotKind = iota
	EquipmentSlot
)

// Slot names a selector and the output elements its renderer writes to. Output ids are the selector id followed by
// "DevName", and the prefix followed by "ATK"/"HP" and, for characters, the breakpoint.
type Slot struct {
	Kind     SlotKind
	Selector string
	Prefix   string
}

var (
	MainSlot  = Slot{Kind: CharacterSlot, Selector: "mainSlot", Prefix: "main"}
	SubSlot   = Slot{Kind: CharacterSlot, Selector: "subSlot", Prefix: "sub"}
	EquipSlot = Slot{Kind: EquipmentSlot, Selector: "equipSlot", Prefix: "equip"}
)

// Slots lists the slots of the stats page.
var Slots = []Slot{MainSlot, SubSlot, EquipSlot}

// Output is one text field written by a renderer.
type Output struct {
	ID   string
	Text string
}

// CharacterOutputs returns the fields for c in slot: dev name, then attack and hit points in breakpoint order. A nil
// c yields placeholders.
func CharacterOutputs(slot Slot, c *types.CharacterEntry) []Output {
	out := make([]Output, 0, 1+2*types.BreakpointCount)
	if c == nil {
		out = append(out, Output{slot.Selector + "DevName", Placeholder})
		for _, bp := range types.Breakpoints {
			out = append(out, Output{slot.Prefix + "ATK" + strconv.Itoa(bp), Placeholder})
		}
		for _, bp := range types.Breakpoints {
			out = append(out, Output{slot.Prefix + "HP" + strconv.Itoa(bp), Placeholder})
		}
		return out
	}

	out = append(out, Output{slot.Selector + "DevName", c.DevName})
	for i, bp := range types.Breakpoints {
		out = append(out, Output{slot.Prefix + "ATK" + strconv.Itoa(bp), types.FormatStat(c.Attack[i])})
	}
	for i, bp := range types.Breakpoints {
		out = append(out, Output{slot.Prefix + "HP" + strconv.Itoa(bp), types.FormatStat(c.HP[i])})
	}
	return out
}

// EquipmentOutputs returns the dev name, attack and hit point fields for e in slot. A nil e yields placeholders.
func EquipmentOutputs(slot Slot, e *types.EquipmentEntry) []Output {
	if e == nil {
		return []Output{
			{slot.Selector + "DevName", Placeholder},
			{slot.Prefix + "ATK", Placeholder},
			{slot.Prefix + "HP", Placeholder},
		}
	}
	return []Output{
		{slot.Selector + "DevName", e.DevName},
		{slot.Prefix + "ATK", types.FormatStat(e.Attack)},
		{slot.Prefix + "HP", types.FormatStat(e.HP)},
	}
}

func (s Slot) outputs() []Output {
	if s.Kind == EquipmentSlot {
		return EquipmentOutputs(s, nil)
	}
	return CharacterOutputs(s, nil)
}

// Render reads the slot's selector and writes the selected entry's stats into the slot's outputs. A value that does
// not resolve to an entry fills the outputs with Placeholder and returns a *LookupError. An empty value means
// nothing is selected; it also writes placeholders but is not an error.
func (c *Controller) Render(slot Slot) error {
	value, err := c.selectedKey(slot)
	if err != nil {
		c.write(slot.outputs())
		log.Warning(err)
		return err
	}
	if value == "" {
		c.write(slot.outputs())
		return nil
	}

	key, parseErr := types.ParseKey(value)
	switch slot.Kind {
	case EquipmentSlot:
		var entry *types.EquipmentEntry
		if parseErr == nil {
			entry = c.equips.Get(key)
		}
		c.write(EquipmentOutputs(slot, entry))
		if entry == nil {
			err = &LookupError{Selector: slot.Selector, Value: value, Err: ErrUnknownKey}
		}
	default:
		var entry *types.CharacterEntry
		if parseErr == nil {
			entry = c.chars.Get(key)
		}
		c.write(CharacterOutputs(slot, entry))
		if entry == nil {
			err = &LookupError{Selector: slot.Selector, Value: value, Err: ErrUnknownKey}
		}
	}

	if err != nil {
		log.Warning(err)
	}
	return err
}

func (c *Controller) RenderMain() error  { return c.Render(MainSlot) }
func (c *Controller) RenderSub() error   { return c.Render(SubSlot) }
func (c *Controller) RenderEquip() error { return c.Render(EquipSlot) }

// Select sets the slot's selector to value and renders it.
func (c *Controller) Select(slot Slot, value string) error {
	sel := c.doc.GetElementByID(slot.Selector)
	if sel == nil {
		c.write(slot.outputs())
		return &LookupError{Selector: slot.Selector, Value: value, Err: ErrNoSelector}
	}
	sel.SetValue(value)
	return c.Render(slot)
}

// MissingOutputs lists the output ids of slots that the page does not provide.
func (c *Controller) MissingOutputs(slots ...Slot) []string {
	var missing []string
	for _, slot := range slots {
		if c.doc.GetElementByID(slot.Selector) == nil {
			missing = append(missing, slot.Selector)
		}
		for _, out := range slot.outputs() {
			if c.doc.GetElementByID(out.ID) == nil {
				missing = append(missing, out.ID)
			}
		}
	}
	return missing
}

func (c *Controller) selectedKey(slot Slot) (string, error) {
	sel := c.doc.GetElementByID(slot.Selector)
	if sel == nil {
		return "", &LookupError{Selector: slot.Selector, Err: ErrNoSelector}
	}
	return sel.Value(), nil
}

func (c *Controller) write(outputs []Output) {
	for _, out := range outputs {
		el := c.doc.GetElementByID(out.ID)
		if el == nil {
			log.Debugf("no output element #%s", out.ID)
			continue
		}
		el.SetTextContent(out.Text)
	}
}
