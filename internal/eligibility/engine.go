// Package eligibility evaluates the fixed study-visa policy: an
// academic threshold (percentage OR GPA) plus four independent IELTS
// band minimums. Evaluation is pure and stateless.
package eligibility

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arunpathak904/univaegis-assignment/internal/extract"
)

// Policy thresholds.
const (
	MinPercentage = 80.0
	MinGPA        = 8.0
	MinBandScore  = 8.0
)

// Band names in evaluation (and reason) order.
var bandOrder = []string{"listening", "reading", "writing", "speaking"}

// Scores carries the four IELTS band scores. A nil band means the
// caller did not supply it, which is itself a failing condition.
type Scores struct {
	Listening *float64 `json:"listening"`
	Reading   *float64 `json:"reading"`
	Writing   *float64 `json:"writing"`
	Speaking  *float64 `json:"speaking"`
}

func (s Scores) band(name string) *float64 {
	switch name {
	case "listening":
		return s.Listening
	case "reading":
		return s.Reading
	case "writing":
		return s.Writing
	case "speaking":
		return s.Speaking
	}
	return nil
}

// Map renders the supplied bands as a plain map for persistence,
// skipping bands that were never provided.
func (s Scores) Map() map[string]any {
	out := make(map[string]any, len(bandOrder))
	for _, band := range bandOrder {
		if v := s.band(band); v != nil {
			out[band] = *v
		}
	}
	return out
}

// Decision is the outcome of one eligibility evaluation. Reasons holds
// one entry per failed rule, in rule order; it is empty (never nil)
// when eligible.
type Decision struct {
	Eligible bool     `json:"eligible"`
	Reasons  []string `json:"reasons"`
}

// Evaluate applies every rule and records every failure; it does not
// short-circuit, so simultaneous failures all surface. Inputs are not
// mutated.
func Evaluate(fields extract.Fields, scores Scores) Decision {
	reasons := make([]string, 0, len(bandOrder)+1)

	// Academic rule: need a percentage or a GPA, and at least one of
	// them above its threshold.
	percentage, hasPercentage := fields.Number(extract.FieldPercentage)
	gpa, hasGPA := fields.Number(extract.FieldGPA)

	if !hasPercentage && !hasGPA {
		reasons = append(reasons, "No percentage or GPA found in the document.")
	} else {
		academicOK := (hasPercentage && percentage >= MinPercentage) ||
			(hasGPA && gpa >= MinGPA)
		if !academicOK {
			reasons = append(reasons, "Academic score below threshold (need >=80% or GPA>=8.0).")
		}
	}

	// IELTS rules, one reason per missing or low band.
	for _, band := range bandOrder {
		val := scores.band(band)
		switch {
		case val == nil:
			reasons = append(reasons, fmt.Sprintf("IELTS %s score is missing.", band))
		case *val < MinBandScore:
			reasons = append(reasons, fmt.Sprintf("IELTS %s below 8.0 (got %s).", band, formatScore(*val)))
		}
	}

	return Decision{Eligible: len(reasons) == 0, Reasons: reasons}
}

// formatScore renders a band score with at least one decimal place, so
// reasons read "got 7.0" rather than "got 7".
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
