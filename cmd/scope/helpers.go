package main

import (
	"log"
	"os"

	"github.com/abelbrown/sentiscope/internal/config"
	"github.com/abelbrown/sentiscope/internal/corpus"
)

// loadConfig loads ~/.sentiscope/config.json or fatals.
func loadConfig() *config.Config {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// openCorpus opens the corpus at path, or the configured one when path is
// empty, or fatals.
func openCorpus(path string) (*corpus.Store, string) {
	if path == "" {
		path = loadConfig().CorpusPath
	}
	if err := os.MkdirAll(config.DataDir(), 0755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}
	st, err := corpus.Open(path)
	if err != nil {
		log.Fatalf("failed to open corpus: %v", err)
	}
	return st, path
}
