// Package data decodes the character and equipment tables.
//
// Tables are a mapping of key to entry. Keys may be written as numbers or as
// numeric strings, so both YAML and JSON exports of the game data load.
package data

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/op/go-logging"
	"github.com/pdbogen/unitdata/types"
	"gopkg.in/yaml.v3"
)

var log = logging.MustGetLogger("data")

//go:embed characters.yaml equipment.yaml
var defaults embed.FS

// Tables is the document served to the browser front-end.
type Tables struct {
	Characters types.CharacterTable `json:"characters"`
	Equipment  types.EquipmentTable `json:"equipment"`
}

// rawCharacter and rawEquipment tell an absent stat apart from a zero one.
type rawCharacter struct {
	Name    string                          `yaml:"EN Name"`
	DevName string                          `yaml:"Dev Name"`
	Attack  *[types.BreakpointCount]float64 `yaml:"ATK"`
	HP      *[types.BreakpointCount]float64 `yaml:"HP"`
}

type rawEquipment struct {
	Name    string   `yaml:"EN Name"`
	DevName string   `yaml:"Dev Name"`
	Attack  *float64 `yaml:"ATK"`
	HP      *float64 `yaml:"HP"`
}

// DecodeCharacters decodes a character table. Every entry needs ATK and HP with one value per breakpoint; an entry
// left empty (`3:` with nothing after it) decodes to nil and is reported when the selectors are populated.
func DecodeCharacters(r io.Reader) (types.CharacterTable, error) {
	raw := map[string]*rawCharacter{}
	if err := decode(r, &raw); err != nil {
		return nil, fmt.Errorf("decoding character table: %w", err)
	}

	tbl := types.CharacterTable{}
	for k, entry := range raw {
		key, err := types.ParseKey(k)
		if err != nil {
			return nil, fmt.Errorf("decoding character table: %w", err)
		}
		if _, dupe := tbl[key]; dupe {
			return nil, fmt.Errorf("decoding character table: key %d appears twice", key)
		}
		if entry == nil {
			tbl[key] = nil
			continue
		}
		if entry.Attack == nil || entry.HP == nil {
			return nil, fmt.Errorf("decoding character table: key %d is missing ATK or HP", key)
		}
		tbl[key] = &types.CharacterEntry{
			Name:    entry.Name,
			DevName: entry.DevName,
			Attack:  *entry.Attack,
			HP:      *entry.HP,
		}
	}
	return tbl, nil
}

func DecodeEquipment(r io.Reader) (types.EquipmentTable, error) {
	raw := map[string]*rawEquipment{}
	if err := decode(r, &raw); err != nil {
		return nil, fmt.Errorf("decoding equipment table: %w", err)
	}

	tbl := types.EquipmentTable{}
	for k, entry := range raw {
		key, err := types.ParseKey(k)
		if err != nil {
			return nil, fmt.Errorf("decoding equipment table: %w", err)
		}
		if _, dupe := tbl[key]; dupe {
			return nil, fmt.Errorf("decoding equipment table: key %d appears twice", key)
		}
		if entry == nil {
			tbl[key] = nil
			continue
		}
		if entry.Attack == nil || entry.HP == nil {
			return nil, fmt.Errorf("decoding equipment table: key %d is missing ATK or HP", key)
		}
		tbl[key] = &types.EquipmentEntry{
			Name:    entry.Name,
			DevName: entry.DevName,
			Attack:  *entry.Attack,
			HP:      *entry.HP,
		}
	}
	return tbl, nil
}

// decode reads the whole document first so an empty file yields an empty table rather than io.EOF.
func decode(r io.Reader, out interface{}) error {
	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil
	}
	return yaml.Unmarshal(buf, out)
}

func LoadCharacters(path string) (types.CharacterTable, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	tbl, err := DecodeCharacters(f)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	log.Debugf("loaded %d characters from %q", len(tbl), path)
	return tbl, nil
}

func LoadEquipment(path string) (types.EquipmentTable, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	tbl, err := DecodeEquipment(f)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	log.Debugf("loaded %d equipment from %q", len(tbl), path)
	return tbl, nil
}

// Default returns the tables compiled into the binary.
func Default() (types.CharacterTable, types.EquipmentTable, error) {
	cf, err := defaults.Open("characters.yaml")
	if err != nil {
		return nil, nil, err
	}
	defer cf.Close()
	chars, err := DecodeCharacters(cf)
	if err != nil {
		return nil, nil, err
	}

	ef, err := defaults.Open("equipment.yaml")
	if err != nil {
		return nil, nil, err
	}
	defer ef.Close()
	equips, err := DecodeEquipment(ef)
	if err != nil {
		return nil, nil, err
	}

	return chars, equips, nil
}

// Load reads the named table files, falling back to the compiled-in table for any path left empty.
func Load(charactersPath, equipmentPath string) (*Tables, error) {
	chars, equips, err := Default()
	if err != nil {
		return nil, fmt.Errorf("loading default tables: %w", err)
	}

	if charactersPath != "" {
		if chars, err = LoadCharacters(charactersPath); err != nil {
			return nil, err
		}
	}
	if equipmentPath != "" {
		if equips, err = LoadEquipment(equipmentPath); err != nil {
			return nil, err
		}
	}

	return &Tables{Characters: chars, Equipment: equips}, nil
}
