package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pdbogen/unitdata/data"
	log2 "github.com/pdbogen/unitdata/log"
	"github.com/pdbogen/unitdata/types"
)

var log = log2.Log

func main() {
	chars := flag.String("characters", "", "character table (YAML or JSON); empty for the built-in table")
	equips := flag.String("equipment", "", "equipment table (YAML or JSON); empty for the built-in table")
	kind := flag.String("kind", "chars", "table to export: chars or equips")
	loglevel := flag.String("loglevel", "info", "set to DEBUG for more logging, or WARNING or ERROR for less")
	out := flag.String("out", "", "file to which CSV-formatted results should be saved; empty for stdout")
	flag.Parse()

	if err := log2.Setup(*loglevel); err != nil {
		log.Fatal(err)
	}

	tables, err := data.Load(*chars, *equips)
	if err != nil {
		log.Fatalf("loading tables: %s", err)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		outFile, err := os.OpenFile(*out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(0644))
		if err != nil {
			log.Fatalf("opening %q for writing: %s", *out, err)
		}
		defer outFile.Close()
		w = outFile
	}

	n, err := Export(w, tables, *kind)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("wrote %d %s rows", n, *kind)
}

// Export writes one table as CSV, header first, rows in key order. It returns the number of rows written.
func Export(w io.Writer, tables *data.Tables, kind string) (int, error) {
	outW := csv.NewWriter(w)
	n := 0
	switch kind {
	case "chars":
		outW.Write(types.CharacterCsvHeader)
		for _, k := range tables.Characters.Keys() {
			entry := tables.Characters[k]
			if entry == nil {
				log.Warningf("skipping nil character %d", k)
				continue
			}
			outW.Write(entry.Record(k))
			n++
		}
	case "equips":
		outW.Write(types.EquipmentCsvHeader)
		for _, k := range tables.Equipment.Keys() {
			entry := tables.Equipment[k]
			if entry == nil {
				log.Warningf("skipping nil equipment %d", k)
				continue
			}
			outW.Write(entry.Record(k))
			n++
		}
	default:
		return 0, fmt.Errorf("unknown table %q; want chars or equips", kind)
	}
	outW.Flush()
	return n, outW.Error()
}
