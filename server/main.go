package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/pdbogen/unitdata/data"
	log2 "github.com/pdbogen/unitdata/log"
)

var log = log2.Log

func main() {
	cfg, err := LoadConfig(".env", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := log2.Setup(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}

	tables, err := data.Load(cfg.Characters, cfg.Equipment)
	if err != nil {
		log.Fatalf("loading tables: %s", err)
	}
	log.Infof("loaded %d characters, %d equipment", len(tables.Characters), len(tables.Equipment))

	handler, err := Routes(tables, StaticAssets())
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("listening on %s", cfg.Listen)
	log.Fatal(http.ListenAndServe(cfg.Listen, handler))
}
