package types

import (
	"sort"
	"strconv"
)

type EquipmentEntry struct {
	Name    string `json:"EN Name" yaml:"EN Name"`
	DevName string `json:"Dev Name" yaml:"Dev Name"`
	Attack  float64 `json:"ATK" yaml:"ATK"`
	HP      float64 `json:"HP" yaml:"HP"`
}

// EquipmentTable maps an equipment key to its entry. A nil entry marks a malformed table.
type EquipmentTable map[int]*EquipmentEntry

// Keys returns the table keys in ascending order.
func (t EquipmentTable) Keys() []int {
	keys := make([]int, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (t EquipmentTable) Get(key int) *EquipmentEntry {
	return t[key]
}

var EquipmentCsvHeader = []string{"Key", "EN Name", "Dev Name", "ATK", "HP"}

func (e EquipmentEntry) Record(key int) []string {
	return []string{
		strconv.Itoa(key),
		e.Name,
		e.DevName,
		FormatStat(e.Attack),
		FormatStat(e.HP),
	}
}
