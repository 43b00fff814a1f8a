// Package config loads table configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete configuration for the holdem CLI.
type Config struct {
	LogLevel   string        `hcl:"log_level,optional"`
	SnapshotDB string        `hcl:"snapshot_db,optional"`
	Tables     []TableConfig `hcl:"table,block"`
}

// TableConfig defines one poker table.
type TableConfig struct {
	Name       string       `hcl:"name,label"`
	SmallBlind int          `hcl:"small_blind"`
	BigBlind   int          `hcl:"big_blind"`
	Seats      []SeatConfig `hcl:"seat,block"`
}

// SeatConfig seats one player with a starting stack.
type SeatConfig struct {
	Number int    `hcl:"number"`
	Stack  int    `hcl:"stack"`
	UserID string `hcl:"user_id,optional"`
}

// Default returns the configuration used when no file is present: one
// three-seat table at 5/10 blinds.
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		SnapshotDB: "holdem.db",
		Tables: []TableConfig{
			{
				Name:       "main",
				SmallBlind: 5,
				BigBlind:   10,
				Seats: []SeatConfig{
					{Number: 1, Stack: 1000},
					{Number: 2, Stack: 1000},
					{Number: 3, Stack: 1000},
				},
			},
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", filename, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", filename, diags.Error())
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.SnapshotDB == "" {
		cfg.SnapshotDB = "holdem.db"
	}

	for _, table := range cfg.Tables {
		if err := validateTable(table); err != nil {
			return nil, fmt.Errorf("%s: table %q: %w", filename, table.Name, err)
		}
	}
	return &cfg, nil
}

func validateTable(table TableConfig) error {
	if table.SmallBlind <= 0 || table.BigBlind <= 0 {
		return fmt.Errorf("blinds must be positive, got %d/%d", table.SmallBlind, table.BigBlind)
	}
	if table.BigBlind < table.SmallBlind {
		return fmt.Errorf("big blind %d below small blind %d", table.BigBlind, table.SmallBlind)
	}
	if len(table.Seats) < 2 {
		return fmt.Errorf("need at least 2 seats, got %d", len(table.Seats))
	}
	seen := make(map[int]bool)
	for _, seat := range table.Seats {
		if seat.Number < 0 {
			return fmt.Errorf("seat numbers must be non-negative, got %d", seat.Number)
		}
		if seen[seat.Number] {
			return fmt.Errorf("duplicate seat %d", seat.Number)
		}
		seen[seat.Number] = true
		if seat.Stack <= 0 {
			return fmt.Errorf("seat %d needs a positive stack, got %d", seat.Number, seat.Stack)
		}
	}
	return nil
}
