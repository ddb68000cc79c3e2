package extract

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		existing Fields
		patch    Fields
		want     Fields
	}{
		{
			name:     "adds new keys",
			existing: Fields{"percentage": 70.0},
			patch:    Fields{"gpa": 8.2},
			want:     Fields{"percentage": 70.0, "gpa": 8.2},
		},
		{
			name:     "patch overwrites existing",
			existing: Fields{"percentage": 70.0, "university": "Old"},
			patch:    Fields{"percentage": 91.0},
			want:     Fields{"percentage": 91.0, "university": "Old"},
		},
		{
			name:     "nil patch value clears a field",
			existing: Fields{"gpa": 8.2},
			patch:    Fields{"gpa": nil},
			want:     Fields{"gpa": nil},
		},
		{
			name:     "empty existing",
			existing: nil,
			patch:    Fields{"student_name": "Priya"},
			want:     Fields{"student_name": "Priya"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.existing, tt.patch)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Merge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	existing := Fields{"percentage": 70.0}
	patch := Fields{"percentage": 91.0}
	_ = Merge(existing, patch)

	if existing["percentage"] != 70.0 {
		t.Fatalf("existing mutated: %v", existing)
	}
}
