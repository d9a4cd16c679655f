package deps

import (
	"reflect"
	"testing"
)

func TestRequirementString(t *testing.T) {
	tests := []struct {
		req  Requirement
		want string
	}{
		{Requirement{"foo", ">=1.2.0,<2.0.0"}, "foo>=1.2.0,<2.0.0"},
		{Requirement{"bar", "==0.3"}, "bar==0.3"},
		{Requirement{"baz", ""}, "baz"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.req.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequirementSet(t *testing.T) {
	var s RequirementSet

	if s.Has("foo") {
		t.Error("zero value should be empty")
	}
	if !s.Add(Requirement{"foo", ">=1"}) {
		t.Error("Add(foo) = false, want true")
	}
	if !s.Add(Requirement{"bar", "==2"}) {
		t.Error("Add(bar) = false, want true")
	}
	if s.Add(Requirement{"foo", "==9"}) {
		t.Error("Add(duplicate foo) = true, want false")
	}

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	if !s.Has("foo") || s.Has("missing") {
		t.Error("Has() should report only recorded names")
	}

	want := []Requirement{{"foo", ">=1"}, {"bar", "==2"}}
	if list := s.List(); !reflect.DeepEqual(list, want) {
		t.Errorf("List() = %v, want %v", list, want)
	}
}

func TestRequirementSetListIsCopy(t *testing.T) {
	var s RequirementSet
	s.Add(Requirement{"foo", ">=1"})

	list := s.List()
	list[0].Constraint = "changed"

	if got := s.List()[0]; got.Constraint != ">=1" {
		t.Errorf("mutating List() result changed the set: %v", got)
	}
}
