//go:build js && wasm

package main

import (
	"errors"
	"syscall/js"
	"testing"

	"github.com/pdbogen/unitdata/types"
	"github.com/pdbogen/unitdata/view"
)

func TestPagePopulate(t *testing.T) {
	statsPage(t)
	testController(t)

	opts := byID("mainSlot").Get("children")
	if opts.Length() != 2 {
		t.Fatalf("expected 2 options in #mainSlot, got %d", opts.Length())
	}
	for i, want := range [][2]string{{"1", "Sidekick"}, {"3", "Hero"}} {
		opt := opts.Index(i)
		if opt.Get("tagName").String() != "OPTION" {
			t.Errorf("child %d is a %s", i, opt.Get("tagName").String())
		}
		if v, l := opt.Get("value").String(), opt.Get("textContent").String(); v != want[0] || l != want[1] {
			t.Errorf("option %d = %q/%q, want %q/%q", i, v, l, want[0], want[1])
		}
	}
	if n := byID("equipSlot").Get("children").Length(); n != 1 {
		t.Errorf("expected 1 option in #equipSlot, got %d", n)
	}
}

func TestPageMissingElement(t *testing.T) {
	statsPage(t)
	if el := (Page{Document()}).GetElementByID("nope"); el != nil {
		t.Errorf("expected nil for a missing id, got %#v", el)
	}
}

func TestPagePopulate_DOMException(t *testing.T) {
	statsPage(t)
	eval(`document.getElementById("subSlot").appendChild = function () { throw new Error("refused"); };`)

	c := view.New(Page{Document()}, types.CharacterTable{1: {Name: "One"}}, nil)
	err := c.Populate()
	var perr *view.PopulationError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *view.PopulationError, got %v", err)
	}
	if perr.Added != 1 {
		t.Errorf("expected the #mainSlot option to go in first, Added = %d", perr.Added)
	}
}

func TestAttachChosen(t *testing.T) {
	statsPage(t)
	eval(stubChosen)
	c := testController(t)

	if !HaveChosen() {
		t.Fatal("expected the stub Chosen to be detected")
	}
	AttachChosen(c)

	byID("mainSlot").Set("value", "3")
	onChange := js.Global().Get("__changes").Get("#mainSlot")
	if onChange.Type() != js.TypeFunction {
		t.Fatal("no change handler registered for #mainSlot")
	}
	onChange.Invoke()

	for id, want := range map[string]string{
		"mainSlotDevName": "Hero_03",
		"mainATK80":       "10",
		"mainATK100":      "50",
		"mainHP95":        "400",
	} {
		if got := textOf(id); got != want {
			t.Errorf("#%s = %q, want %q", id, got, want)
		}
	}
	if got := textOf("subATK80"); got != "" {
		t.Errorf("#subATK80 = %q, want untouched", got)
	}

	byID("equipSlot").Set("value", "2")
	js.Global().Get("__changes").Get("#equipSlot").Invoke()
	if got := textOf("equipATK"); got != "120" {
		t.Errorf("#equipATK = %q, want 120", got)
	}
}

func TestAttachNative(t *testing.T) {
	statsPage(t)
	c := testController(t)

	if HaveChosen() {
		t.Fatal("expected no Chosen without jQuery")
	}
	AttachNative(c)

	byID("subSlot").Set("value", "1")
	onChange := byID("subSlot").Get("listeners").Get("change")
	if onChange.Type() != js.TypeFunction {
		t.Fatal("no change listener on #subSlot")
	}
	onChange.Invoke()

	if got := textOf("subSlotDevName"); got != "Hero_01" {
		t.Errorf("#subSlotDevName = %q, want Hero_01", got)
	}
	if got := textOf("subHP100"); got != "10" {
		t.Errorf("#subHP100 = %q, want 10", got)
	}

	byID("subSlot").Set("value", "77")
	onChange.Invoke()
	if got := textOf("subHP100"); got != view.Placeholder {
		t.Errorf("#subHP100 = %q, want placeholder", got)
	}
}

func TestParam(t *testing.T) {
	js.Global().Set("location", map[string]interface{}{"href": "http://localhost/?mainSlot=3&equipSlot=1"})
	defer js.Global().Delete("location")

	if got := Param("mainSlot"); got != "3" {
		t.Errorf("Param(mainSlot) = %q, want 3", got)
	}
	if got := Param("subSlot"); got != "" {
		t.Errorf("Param(subSlot) = %q, want empty", got)
	}
}
