package model

import (
	"fmt"
	"strconv"
	"strings"
)

// CloneFrequencySet is the ordered set of subclones in a simulated tumor.
// Frequencies are cellular fractions in [0,1]; the part of 1 not covered by
// the sum is normal-cell contamination.
type CloneFrequencySet struct {
	Names         []string
	Frequencies   []float64
	PrivateCounts []int
}

// Len returns the number of clones.
func (s CloneFrequencySet) Len() int {
	return len(s.Frequencies)
}

// Purity returns the tumor purity, the summed frequency of all clones.
func (s CloneFrequencySet) Purity() float64 {
	total := 0.0
	for _, f := range s.Frequencies {
		total += f
	}

	return total
}

// SharedGroup is a mutation group shared by a subset of clones.
// Clone indices are 1-based, matching the user-facing clone numbering.
type SharedGroup struct {
	Clones []int `yaml:"clones"`
	Count  int   `yaml:"mutations"`
}

// Label returns the human-readable clone label for the group, e.g. "Clone2+3".
func (g SharedGroup) Label() string {
	return CloneLabel(g.Clones)
}

// CloneLabel renders 1-based clone indices as a display label ("Clone2+3+4").
func CloneLabel(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}

	return "Clone" + strings.Join(parts, "+")
}

// EncodeCloneIDs renders clone indices as the membership token stored on
// records ("2 3").
func EncodeCloneIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}

	return strings.Join(parts, " ")
}

// ParseCloneIDs parses the legacy whitespace-separated clone-index encoding
// ("2 3") used by scenario files that key shared groups by label. It lives at
// the configuration boundary; everything past it works with explicit indices.
func ParseCloneIDs(label string) ([]int, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty clone-index list %q", label)
	}

	ids := make([]int, 0, len(fields))

	for _, field := range fields {
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("clone-index list %q: %q is not an integer", label, field)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
