package model

import "time"

// Version is the simulator version recorded in run metadata.
const Version = "0.2.0"

// CloneTableRow is one row of the resolved clone table.
type CloneTableRow struct {
	Name             string  `yaml:"name"`
	Frequency        float64 `yaml:"frequency"`
	PrivateMutations int     `yaml:"private_mutations"`
}

// Metadata describes one simulation run.
type Metadata struct {
	CreatedAt time.Time `yaml:"created_at"`
	Version   string    `yaml:"version"`
	Seed      uint64    `yaml:"seed"`
}

// SimulationResult is the complete output of one simulation call: the ordered
// mutation table, the normalized parameters that produced it, the clone table,
// and run metadata. It is never mutated after construction; consumers that
// want a derivative table must build their own copy.
type SimulationResult struct {
	Records    []MutationRecord
	Params     Scenario
	CloneTable []CloneTableRow
	Metadata   Metadata
}
