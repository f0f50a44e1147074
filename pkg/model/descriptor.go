package model

import (
	"cmp"
	"slices"
)

// Descriptor is the immutable input record for one simulated process.
type Descriptor struct {
	CreationTime int `json:"creation_time" yaml:"creation_time"`
	Duration     int `json:"duration" yaml:"duration"`
	Priority     int `json:"priority" yaml:"priority"`
}

// Sanitize returns a copy with every field replaced by its absolute value.
func (d Descriptor) Sanitize() Descriptor {
	return Descriptor{
		CreationTime: abs(d.CreationTime),
		Duration:     abs(d.Duration),
		Priority:     abs(d.Priority),
	}
}

// SortForAdmission returns a copy of descs ordered by creation time. Ties keep
// their input order.
func SortForAdmission(descs []Descriptor) []Descriptor {
	sorted := slices.Clone(descs)
	slices.SortStableFunc(sorted, func(a, b Descriptor) int {
		return cmp.Compare(a.CreationTime, b.CreationTime)
	})
	return sorted
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
