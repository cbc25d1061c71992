package relic

import (
	"reflect"
	"testing"
)

func TestNormalizeIDs(t *testing.T) {
	t.Parallel()

	got := NormalizeIDs([]int{30, 10, 30, 20, 10})
	if want := (IDList{10, 20, 30}); !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeIDs = %v, want %v", got, want)
	}
	if NormalizeIDs(nil) != nil {
		t.Error("NormalizeIDs(nil) must stay nil")
	}
}

func TestUnionIDsCommutative(t *testing.T) {
	t.Parallel()

	a := IDList{10, 20}
	b := IDList{20, 30}
	ab := UnionIDs(a, b)
	ba := UnionIDs(b, a)
	if !reflect.DeepEqual(ab, ba) {
		t.Errorf("union order matters: %v vs %v", ab, ba)
	}
	if want := (IDList{10, 20, 30}); !reflect.DeepEqual(ab, want) {
		t.Errorf("union = %v, want %v", ab, want)
	}
}

func TestIntersectIDs(t *testing.T) {
	t.Parallel()

	if !IntersectIDs(IDList{1, 2}, IDList{2, 3}) {
		t.Error("shared id not detected")
	}
	if IntersectIDs(IDList{1, 2}, IDList{3, 4}) {
		t.Error("disjoint lists reported as intersecting")
	}
	if IntersectIDs(nil, IDList{1}) {
		t.Error("empty list intersects nothing")
	}
}

func TestParseIDString(t *testing.T) {
	t.Parallel()

	got := parseIDString("30, 10,, junk, 20")
	if want := (IDList{10, 20, 30}); !reflect.DeepEqual(got, want) {
		t.Errorf("parseIDString = %v, want %v", got, want)
	}
}

func TestParseStacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Stacks
		wantErr bool
	}{
		{"", StacksUnset, false},
		{"Yes", StacksYes, false},
		{"No", StacksNo, false},
		{"  Yes  ", StacksYes, false},
		{"maybe", StacksUnset, true},
	}
	for _, tt := range tests {
		got, err := ParseStacks(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseStacks(%q) = (%v, %v), want (%v, err=%v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
