package types

import (
	"sort"
	"strconv"
)

// BreakpointCount is the number of rarity tiers a character's stats are tabulated at.
const BreakpointCount = 5

// Breakpoints are the rarity tiers, index-aligned with CharacterEntry.Attack and CharacterEntry.HP.
var Breakpoints = [BreakpointCount]int{80, 85, 90, 95, 100}

type CharacterEntry struct {
	Name    string                   `json:"EN Name" yaml:"EN Name"`
	DevName string                   `json:"Dev Name" yaml:"Dev Name"`
	Attack  [BreakpointCount]float64 `json:"ATK" yaml:"ATK"`
	HP      [BreakpointCount]float64 `json:"HP" yaml:"HP"`
}

// CharacterTable maps a character key to its entry. A nil entry marks a malformed table.
type CharacterTable map[int]*CharacterEntry

// Keys returns the table keys in ascending order.
func (t CharacterTable) Keys() []int {
	keys := make([]int, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Get returns the entry for key, or nil if there is none.
func (t CharacterTable) Get(key int) *CharacterEntry {
	return t[key]
}

var CharacterCsvHeader = []string{
	"Key", "EN Name", "Dev Name",
	"ATK 80", "ATK 85", "ATK 90", "ATK 95", "ATK 100",
	"HP 80", "HP 85", "HP 90", "HP 95", "HP 100",
}

func (c CharacterEntry) Record(key int) (ret []string) {
	ret = []string{strconv.Itoa(key), c.Name, c.DevName}
	for _, atk := range c.Attack {
		ret = append(ret, FormatStat(atk))
	}
	for _, hp := range c.HP {
		ret = append(ret, FormatStat(hp))
	}
	return ret
}
