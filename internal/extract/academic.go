package extract

import (
	"regexp"
	"strings"

	"github.com/arunpathak904/univaegis-assignment/constants"
)

// Academic patterns, compiled once so their exact semantics (anchoring,
// case sensitivity, digit bounds) are pinned in one place.
var (
	// "85%" or "85.5 %"
	rePercentValue = regexp.MustCompile(`(\d{1,3}(?:\.\d+)?)[\s]*%+`)
	rePercentLabel = regexp.MustCompile(`(?i)(percentage|marks|scored)[\s:\-]*([0-9]{1,3}(?:\.\d+)?)`)

	// "GPA: 8.5". The digit bound captures single-digit GPAs with at
	// most one decimal place; two-digit GPA-like numbers are truncated.
	// Known limitation, kept for compatibility with stored data.
	reGPA = regexp.MustCompile(`(?i)\bGPA[:\s]*([0-9]\.?[0-9]?)\b`)

	reYearLabel = regexp.MustCompile(`(?i)(Year of Passing|Passed in|Passing Year|Class of)[\s:\-]*([12][0-9]{3})`)
	reYearBare  = regexp.MustCompile(`\b(19[9][0-9]|20[0-9]{2})\b`)

	// Case-sensitive on purpose: the capture must start with a capital.
	reNameLabel = regexp.MustCompile(`(Student Name|Name of Student|Name)[:\s\-]{1,10}([A-Z][A-Za-z ,.'-]{1,80})`)
	reNameSplit = regexp.MustCompile(`:|-`)

	reUniversity = regexp.MustCompile(`(?i)(University|College|Institute|School)[:\s\-]{1,10}(.{3,120})`)
	reCourse     = regexp.MustCompile(`(?i)(Course|Program|Programme|Degree)[:\s\-]{1,10}(.{2,80})`)
)

var (
	percentageRules = []fieldRule{
		{re: rePercentValue, parse: floatGroup(1)},
		{re: rePercentLabel, parse: floatGroup(2)},
	}
	gpaRules = []fieldRule{
		{re: reGPA, parse: floatGroup(1)},
	}
	yearRules = []fieldRule{
		{re: reYearLabel, parse: intGroup(2)},
		{re: reYearBare, parse: intGroup(1)},
	}
	universityRules = []fieldRule{
		{re: reUniversity, parse: trimmedGroup(2)},
	}
	courseRules = []fieldRule{
		{re: reCourse, parse: trimmedGroup(2)},
	}
)

// academicFields extracts transcript fields: student name, university,
// course, percentage or GPA, and year of passing. Absent fields are
// present with nil values.
func academicFields(t string) Fields {
	return Fields{
		FieldDocType:       string(constants.DocTypeAcademic),
		FieldPercentage:    resolve(t, percentageRules),
		FieldGPA:           resolve(t, gpaRules),
		FieldYearOfPassing: resolve(t, yearRules),
		FieldStudentName:   studentName(t),
		FieldUniversity:    resolve(t, universityRules),
		FieldCourse:        resolve(t, courseRules),
	}
}

// studentName tries the labeled, capitalized-name pattern first, then
// falls back to scanning for a short line mentioning "name" and taking
// the text after its first ':' or '-' separator.
func studentName(t string) any {
	if m := reNameLabel.FindStringSubmatch(t); m != nil {
		return strings.TrimSpace(m[2])
	}
	for _, line := range strings.Split(t, "\n") {
		if !strings.Contains(strings.ToLower(line), "name") {
			continue
		}
		if len(strings.Fields(line)) > 7 {
			continue
		}
		parts := reNameSplit.Split(line, -1)
		if len(parts) < 2 {
			continue
		}
		candidate := strings.TrimSpace(parts[1])
		if len(candidate) > 2 {
			return candidate
		}
	}
	return nil
}
