package view

import (
	"fmt"
	"strconv"

	"github.com/op/go-logging"
	"github.com/pdbogen/unitdata/types"
)

var log = logging.MustGetLogger("view")

// Controller owns the selector handles for one page load. Construct it once the tables are available; it needs no
// teardown.
type Controller struct {
	doc            Document
	chars          types.CharacterTable
	equips         types.EquipmentTable
	charSelectors  []Element
	equipSelectors []Element
	populated      bool
}

// New locates the character and equipment selectors in doc.
func New(doc Document, chars types.CharacterTable, equips types.EquipmentTable) *Controller {
	c := &Controller{
		doc:            doc,
		chars:          chars,
		equips:         equips,
		charSelectors:  doc.QuerySelectorAll(CharacterSelectors),
		equipSelectors: doc.QuerySelectorAll(EquipmentSelectors),
	}
	log.Debugf("found %d character selectors, %d equipment selectors", len(c.charSelectors), len(c.equipSelectors))
	return c
}

// Populate appends one option per table key to every selector, value = key and label = display name, in ascending
// key order. It stops at the first failure and returns a *PopulationError; whatever was appended by then stays.
// Populate runs once; later calls return ErrAlreadyPopulated.
func (c *Controller) Populate() (err error) {
	if c.populated {
		return ErrAlreadyPopulated
	}
	c.populated = true

	table, key, added := "character", 0, 0
	defer func() {
		if r := recover(); r != nil {
			err = &PopulationError{Table: table, Key: key, Added: added, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	for _, sel := range c.charSelectors {
		for _, key = range c.chars.Keys() {
			entry := c.chars[key]
			if entry == nil {
				return &PopulationError{Table: table, Key: key, Added: added, Err: ErrMalformedEntry}
			}
			if err := sel.AppendOption(strconv.Itoa(key), entry.Name); err != nil {
				return &PopulationError{Table: table, Key: key, Added: added, Err: err}
			}
			added++
		}
	}

	table = "equipment"
	for _, sel := range c.equipSelectors {
		for _, key = range c.equips.Keys() {
			entry := c.equips[key]
			if entry == nil {
				return &PopulationError{Table: table, Key: key, Added: added, Err: ErrMalformedEntry}
			}
			if err := sel.AppendOption(strconv.Itoa(key), entry.Name); err != nil {
				return &PopulationError{Table: table, Key: key, Added: added, Err: err}
			}
			added++
		}
	}

	log.Debugf("appended %d options", added)
	return nil
}

// Populated reports whether Populate has run.
func (c *Controller) Populated() bool {
	return c.populated
}
