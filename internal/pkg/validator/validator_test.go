package validator

import "testing"

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"a", false},
		{" a ", false},
	}

	for _, tt := range tests {
		if got := IsEmpty(tt.input); got != tt.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"supervisor@agroverde.com", true},
		{"a.b+tag@sub.domain.org", true},
		{"no-at-sign", false},
		{"@missing-local.com", false},
		{"missing-domain@", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.input); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidWorkerCode(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"COOP1-0042", true},
		{"coop1-0042", true},
		{"AB-0001", true},
		{"C-0042", false},
		{"COOP1-42", false},
		{"COOP1-00421", false},
		{"COOP10042", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidWorkerCode(tt.input); got != tt.want {
			t.Errorf("IsValidWorkerCode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidBagNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"BAG-2026-001", true},
		{"bag-2026-001", true},
		{"ABC", true},
		{"AB", false},
		{"BAG 001", false},
		{"BAG_001", false},
		{"A234567890123456789012345678901", false},
	}

	for _, tt := range tests {
		if got := IsValidBagNumber(tt.input); got != tt.want {
			t.Errorf("IsValidBagNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidBusinessCode(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"EXP01", true},
		{"exp01", true},
		{"AB", true},
		{"A", false},
		{"EX-01", false},
		{"A23456789012345678901", false},
	}

	for _, tt := range tests {
		if got := IsValidBusinessCode(tt.input); got != tt.want {
			t.Errorf("IsValidBusinessCode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2026-03-10", true},
		{"2026-02-29", false},
		{"2026-13-01", false},
		{"10-03-2026", false},
		{"2026-03-10T08:00:00Z", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, got := IsValidDate(tt.input); got != tt.want {
			t.Errorf("IsValidDate(%q) ok = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2026-03-10T08:00:00Z", true},
		{"2026-03-10T08:00:00+07:00", true},
		{"2026-03-10T08:00:00.123456789Z", true},
		{"2026-03-10", false},
		{"not-a-time", false},
	}

	for _, tt := range tests {
		if _, got := IsValidDateTime(tt.input); got != tt.want {
			t.Errorf("IsValidDateTime(%q) ok = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"active", "inactive", "suspended"}

	tests := []struct {
		value string
		want  bool
	}{
		{"active", true},
		{"suspended", true},
		{"Active", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsInSlice(tt.value, statuses); got != tt.want {
			t.Errorf("IsInSlice(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "code", Message: "code is invalid"},
	}

	want := "name: name is required; code: code is invalid"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "code", Message: "code is invalid"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() len = %d, want 2", len(m))
	}
	if m["name"] != "name is required" {
		t.Errorf("ToMap()[name] = %q", m["name"])
	}
	if m["code"] != "code is invalid" {
		t.Errorf("ToMap()[code] = %q", m["code"])
	}
}
