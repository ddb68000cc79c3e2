package extract

import (
	"testing"

	"github.com/arunpathak904/univaegis-assignment/constants"
)

func TestAcademicPercentagePrecedence(t *testing.T) {
	// A bare "N%" match beats a labeled value later in the text.
	fields := Extract(constants.DocTypeAcademic, "Marks: 91%, percentage 70")
	got, ok := fields.Number(FieldPercentage)
	if !ok {
		t.Fatalf("percentage missing: %v", fields[FieldPercentage])
	}
	if got != 91.0 {
		t.Fatalf("percentage = %v, want 91.0", got)
	}
}

func TestAcademicPercentageLabelFallback(t *testing.T) {
	fields := Extract(constants.DocTypeAcademic, "Student scored 82 in the final exam")
	got, ok := fields.Number(FieldPercentage)
	if !ok || got != 82.0 {
		t.Fatalf("percentage = %v (ok=%v), want 82.0", fields[FieldPercentage], ok)
	}
}

func TestAcademicGPA(t *testing.T) {
	tests := []struct {
		name string
		text string
		want any
	}{
		{"colon", "GPA: 8.7", 8.7},
		{"space", "gpa 9.1 overall", 9.1},
		{"integer", "GPA: 8", 8.0},
		{"absent", "no grade information here", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Extract(constants.DocTypeAcademic, tt.text)
			if tt.want == nil {
				if fields[FieldGPA] != nil {
					t.Fatalf("gpa = %v, want nil", fields[FieldGPA])
				}
				return
			}
			got, ok := fields.Number(FieldGPA)
			if !ok || got != tt.want.(float64) {
				t.Fatalf("gpa = %v (ok=%v), want %v", fields[FieldGPA], ok, tt.want)
			}
		})
	}
}

func TestAcademicYearOfPassing(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"labeled", "Year of Passing: 2021", 2021},
		{"class of", "Class of 2018", 2018},
		{"bare fallback", "Graduated in 2019", 2019},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Extract(constants.DocTypeAcademic, tt.text)
			got, ok := fields.Number(FieldYearOfPassing)
			if !ok || int(got) != tt.want {
				t.Fatalf("year_of_passing = %v (ok=%v), want %d", fields[FieldYearOfPassing], ok, tt.want)
			}
		})
	}
}

func TestAcademicStudentName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want any
	}{
		{"labeled", "Student Name: Priya Sharma\nUniversity: Delhi University", "Priya Sharma"},
		{"short label", "Name - Rahul Verma", "Rahul Verma"},
		{"line fallback lowercase", "name: anil kumar", "anil kumar"},
		{"absent", "Transcript of Records\nSemester I", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Extract(constants.DocTypeAcademic, tt.text)
			if fields[FieldStudentName] != tt.want {
				t.Fatalf("student_name = %v, want %v", fields[FieldStudentName], tt.want)
			}
		})
	}
}

func TestAcademicUniversityAndCourse(t *testing.T) {
	text := "University: Anna University, Chennai\nCourse: B.Tech Computer Science"
	fields := Extract(constants.DocTypeAcademic, text)

	if got := fields[FieldUniversity]; got != "Anna University, Chennai" {
		t.Fatalf("university = %v", got)
	}
	if got := fields[FieldCourse]; got != "B.Tech Computer Science" {
		t.Fatalf("course = %v", got)
	}
}

func TestAcademicAllFieldsNil(t *testing.T) {
	fields := Extract(constants.DocTypeAcademic, "completely unrelated text")

	if fields[FieldDocType] != string(constants.DocTypeAcademic) {
		t.Fatalf("doc_type = %v", fields[FieldDocType])
	}
	for _, name := range []string{
		FieldStudentName, FieldUniversity, FieldCourse,
		FieldPercentage, FieldGPA, FieldYearOfPassing,
	} {
		if fields[name] != nil {
			t.Errorf("%s = %v, want nil", name, fields[name])
		}
	}
	if fields.HasError() {
		t.Fatal("non-empty text must not produce the error sentinel")
	}
}

func TestAcademicCarriageReturnNormalization(t *testing.T) {
	fields := Extract(constants.DocTypeAcademic, "Student Name: Asha Patel\r\nGPA: 8.2")
	if fields[FieldStudentName] != "Asha Patel" {
		t.Fatalf("student_name = %v", fields[FieldStudentName])
	}
	if got, _ := fields.Number(FieldGPA); got != 8.2 {
		t.Fatalf("gpa = %v", fields[FieldGPA])
	}
}
