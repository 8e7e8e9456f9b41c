package validator

import (
	"errors"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"OT Hours", "othours"},
		{"ot_hours", "othours"},
		{"  Supervisor-Name ", "supervisorname"},
		{"Total Manhours", "totalmanhours"},
		{"", ""},
	}
	for _, c := range cases {
		got := NormalizeHeader(c.input)
		if got != c.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestValidateHeader(t *testing.T) {
	expected := []string{"Date", "Supervisor Name", "OT Hours"}

	valid := [][]string{
		{"Date", "Supervisor Name", "OT Hours"},
		{"date", "supervisor_name", "ot hours"},
		{"DATE", "SUPERVISOR NAME", "OTHOURS", "Remarks"},
	}
	for _, got := range valid {
		if err := ValidateHeader(expected, got); err != nil {
			t.Errorf("ValidateHeader(%q) = %v, want nil", got, err)
		}
	}

	invalid := [][]string{
		{"Date", "Supervisor Name"},
		{"Date", "Worker Name", "OT Hours"},
		{"", "Supervisor Name", "OT Hours"},
		{},
	}
	for _, got := range invalid {
		err := ValidateHeader(expected, got)
		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			t.Errorf("ValidateHeader(%q) = %v, want ValidationErrors", got, err)
		}
	}
}

func TestValidateHeader_ReportsEachColumn(t *testing.T) {
	err := ValidateHeader([]string{"A", "B", "C"}, []string{"A"})
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	m := verrs.ToMap()
	if len(m) != 2 {
		t.Errorf("expected 2 column errors, got %d: %v", len(m), m)
	}
	if _, ok := m["column[1]"]; !ok {
		t.Errorf("expected column[1] error, got %v", m)
	}
}

func TestParseLimit(t *testing.T) {
	n, err := ParseLimit("limit", "", 10, 100)
	if err != nil || n != 10 {
		t.Errorf("ParseLimit(\"\") = %d, %v, want 10, nil", n, err)
	}
	n, err = ParseLimit("limit", " 25 ", 10, 100)
	if err != nil || n != 25 {
		t.Errorf("ParseLimit(\" 25 \") = %d, %v, want 25, nil", n, err)
	}
	for _, bad := range []string{"0", "-1", "101", "abc"} {
		if _, err := ParseLimit("limit", bad, 10, 100); err == nil {
			t.Errorf("ParseLimit(%q) = nil error, want error", bad)
		}
	}
}
