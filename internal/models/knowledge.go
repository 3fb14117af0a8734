package models

import (
	"strings"
)

// Equivalence is one row of the reference table, e.g. "1 hour = 60 minutes"
type Equivalence struct {
	Left  string
	Right string
}

// Mnemonic is a memory aid shown on the knowledge panel
type Mnemonic struct {
	Phrase  string
	Meaning string
}

// LifeExample ties a conversion to an everyday activity
type LifeExample struct {
	Activity string
	Value    TimeValue
	Units    []Unit
}

// Text renders the example's value in each of its units, joined by " = "
func (e LifeExample) Text() string {
	parts := make([]string, 0, len(e.Units))
	for _, u := range e.Units {
		parts = append(parts, e.Value.Text(u)+" "+string(u))
	}
	return strings.Join(parts, " = ")
}

// KnowledgePanel is the static reference content
type KnowledgePanel struct {
	Equivalences []Equivalence
	Mnemonics    []Mnemonic
	Examples     []LifeExample
}
