package schema

import "testing"

func TestCorrectionSchema(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"single field", `{"percentage": 91.5}`, false},
		{"several fields", `{"gpa": 8.2, "student_name": "Priya Sharma"}`, false},
		{"null clears a field", `{"university": null}`, false},
		{"integer year", `{"year_of_passing": 2021}`, false},
		{"financial field", `{"available_balance": 500000}`, false},
		{"unknown key rejected", `{"nickname": "P"}`, true},
		{"empty object rejected", `{}`, true},
		{"wrong type rejected", `{"percentage": "91"}`, true},
		{"fractional year rejected", `{"year_of_passing": 2021.5}`, true},
		{"not an object", `[1,2]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(CorrectionSchema(), []byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%s) err = %v, wantErr %v", tt.body, err, tt.wantErr)
			}
		})
	}
}

func TestEligibilityRequestSchema(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			"valid",
			`{"document_id": 3, "ielts_scores": {"listening": 8, "reading": 8.5, "writing": 7.5, "speaking": 8}}`,
			false,
		},
		{
			"missing band",
			`{"document_id": 3, "ielts_scores": {"listening": 8, "reading": 8.5, "writing": 7.5}}`,
			true,
		},
		{
			"extra band key",
			`{"document_id": 3, "ielts_scores": {"listening": 8, "reading": 8, "writing": 8, "speaking": 8, "overall": 8}}`,
			true,
		},
		{
			"missing document_id",
			`{"ielts_scores": {"listening": 8, "reading": 8, "writing": 8, "speaking": 8}}`,
			true,
		},
		{
			"zero document_id",
			`{"document_id": 0, "ielts_scores": {"listening": 8, "reading": 8, "writing": 8, "speaking": 8}}`,
			true,
		},
		{
			"string score",
			`{"document_id": 3, "ielts_scores": {"listening": "8", "reading": 8, "writing": 8, "speaking": 8}}`,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(EligibilityRequestSchema(), []byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%s) err = %v, wantErr %v", tt.body, err, tt.wantErr)
			}
		})
	}
}

func TestValidateInvalidJSON(t *testing.T) {
	if err := Validate(CorrectionSchema(), []byte("{not json")); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
