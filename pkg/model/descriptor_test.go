package model

import (
	"reflect"
	"testing"
)

func TestDescriptor_Sanitize(t *testing.T) {
	got := Descriptor{CreationTime: -3, Duration: -2, Priority: 4}.Sanitize()
	want := Descriptor{CreationTime: 3, Duration: 2, Priority: 4}
	if got != want {
		t.Errorf("Sanitize() = %+v, want %+v", got, want)
	}
}

func TestSortForAdmission(t *testing.T) {
	in := []Descriptor{
		{CreationTime: 4, Duration: 1, Priority: 0},
		{CreationTime: 0, Duration: 5, Priority: 1},
		{CreationTime: 4, Duration: 2, Priority: 0},
		{CreationTime: 0, Duration: 6, Priority: 2},
	}
	got := SortForAdmission(in)
	want := []Descriptor{
		{CreationTime: 0, Duration: 5, Priority: 1},
		{CreationTime: 0, Duration: 6, Priority: 2},
		{CreationTime: 4, Duration: 1, Priority: 0},
		{CreationTime: 4, Duration: 2, Priority: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortForAdmission() = %+v, want %+v", got, want)
	}
	if in[0].CreationTime != 4 {
		t.Error("SortForAdmission modified its input")
	}
}
