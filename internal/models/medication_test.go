package models

import "testing"

func TestActiveOnIsInclusive(t *testing.T) {
	medication := Medication{StartDate: "2024-01-10", EndDate: "2024-01-20"}

	cases := []struct {
		date     string
		expected bool
	}{
		{"2024-01-09", false},
		{"2024-01-10", true},
		{"2024-01-15", true},
		{"2024-01-20", true},
		{"2024-01-21", false},
	}

	for _, tc := range cases {
		if got := medication.ActiveOn(tc.date); got != tc.expected {
			t.Fatalf("ActiveOn(%q): expected %v, got %v", tc.date, tc.expected, got)
		}
	}
}

func TestIsValidKind(t *testing.T) {
	for _, kind := range []string{KindTablet, KindCapsule, KindLiquid, KindInjection} {
		if !IsValidKind(kind) {
			t.Fatalf("expected %q to be a valid kind", kind)
		}
	}
	if IsValidKind("gummy") {
		t.Fatal("expected unknown kind to be invalid")
	}
}

func TestIsValidFrequency(t *testing.T) {
	for _, frequency := range []string{FrequencyDaily, FrequencyWeekly, FrequencyMonthly} {
		if !IsValidFrequency(frequency) {
			t.Fatalf("expected %q to be a valid frequency", frequency)
		}
	}
	if IsValidFrequency("hourly") {
		t.Fatal("expected unknown frequency to be invalid")
	}
}
