package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Discipline identifies a scheduling discipline. The numeric values match the
// scheduler_type argument of the command line.
type Discipline int

const (
	DisciplineFCFS Discipline = iota + 1
	DisciplineSJF
	DisciplinePNP
	DisciplinePP
	DisciplineRR
)

var disciplineNames = map[Discipline]string{
	DisciplineFCFS: "FCFS",
	DisciplineSJF:  "SJF",
	DisciplinePNP:  "PNP",
	DisciplinePP:   "PP",
	DisciplineRR:   "RR",
}

var disciplineTitles = map[Discipline]string{
	DisciplineFCFS: "First-come, first-served",
	DisciplineSJF:  "Shortest job first",
	DisciplinePNP:  "Priority, no preemption",
	DisciplinePP:   "Priority, with preemption",
	DisciplineRR:   "Round-robin",
}

// AllDisciplines returns every discipline in command-line order.
func AllDisciplines() []Discipline {
	return []Discipline{DisciplineFCFS, DisciplineSJF, DisciplinePNP, DisciplinePP, DisciplineRR}
}

// String returns the short name of the discipline ("FCFS", "RR", ...).
func (d Discipline) String() string {
	if name, ok := disciplineNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Discipline(%d)", int(d))
}

// Title returns a human-readable name for reports.
func (d Discipline) Title() string {
	if title, ok := disciplineTitles[d]; ok {
		return title
	}
	return d.String()
}

// Valid reports whether d is one of the five known disciplines.
func (d Discipline) Valid() bool {
	_, ok := disciplineNames[d]
	return ok
}

// Preemptive reports whether the discipline can take the CPU away from a
// process that has not finished.
func (d Discipline) Preemptive() bool {
	return d == DisciplinePP || d == DisciplineRR
}

// DisciplineFromType maps a numeric scheduler type to a Discipline.
// Out-of-range values fall back to FCFS.
func DisciplineFromType(n int) Discipline {
	d := Discipline(n)
	if !d.Valid() {
		return DisciplineFCFS
	}
	return d
}

// ParseDiscipline accepts a short name (case-insensitive) or a number 1-5.
func ParseDiscipline(s string) (Discipline, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		d := Discipline(n)
		if !d.Valid() {
			return 0, fmt.Errorf("unknown discipline %d", n)
		}
		return d, nil
	}
	for d, name := range disciplineNames {
		if strings.EqualFold(name, s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown discipline %q", s)
}

// MarshalText encodes the discipline by its short name.
func (d Discipline) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a short name or number.
func (d *Discipline) UnmarshalText(text []byte) error {
	parsed, err := ParseDiscipline(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
