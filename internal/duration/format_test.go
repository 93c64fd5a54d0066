package duration

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "few seconds"},
		{"six seconds", 6, "few seconds"},
		{"just under a minute", 59.999, "few seconds"},
		{"one minute", 60, "1 minute"},
		{"seconds truncated", 80, "1 minute"},
		{"just under two minutes", 119.9, "1 minute"},
		{"two minutes", 120, "2 minutes"},
		{"forty five minutes", 2700, "45 minutes"},
		{"one hour", 3600, "1 hour"},
		{"one hour one minute", 3660, "1 hour 1 minute"},
		{"hour and minutes", 4320, "1 hour 12 minutes"},
		{"two hours", 7200, "2 hours"},
		{"two hours fifty nine", 7200 + 59*60 + 59, "2 hours 59 minutes"},
		{"a day", 86400, "24 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.seconds); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormat_UnderOneMinute(t *testing.T) {
	for s := 0.0; s < 60; s += 0.25 {
		if got := Format(s); got != FewSeconds {
			t.Fatalf("Format(%v) = %q, want %q", s, got, FewSeconds)
		}
	}
}

func TestFormat_OutOfRange(t *testing.T) {
	if got := Format(-10); got != FewSeconds {
		t.Errorf("Format(-10) = %q, want %q", got, FewSeconds)
	}
	if got := Format(math.NaN()); got != FewSeconds {
		t.Errorf("Format(NaN) = %q, want %q", got, FewSeconds)
	}
	if got := Format(math.Inf(1)); got == "" || got == FewSeconds {
		t.Errorf("Format(+Inf) = %q, want an hours phrase", got)
	}
}

func TestFormat_Deterministic(t *testing.T) {
	for _, s := range []float64{0, 61, 3599, 4320, 90000} {
		if a, b := Format(s), Format(s); a != b {
			t.Errorf("Format(%v) not deterministic: %q vs %q", s, a, b)
		}
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		elapsed  float64
		wantMsg  string
		wantShow bool
	}{
		{0, "", false},
		{4.99, "", false},
		{5, "few seconds", true},
		{6, "few seconds", true},
		{59, "few seconds", true},
		{2700, "45 minutes", true},
		{4320, "1 hour 12 minutes", true},
	}

	for _, tt := range tests {
		msg, show := Summary(tt.elapsed)
		if msg != tt.wantMsg || show != tt.wantShow {
			t.Errorf("Summary(%v) = (%q, %v), want (%q, %v)",
				tt.elapsed, msg, show, tt.wantMsg, tt.wantShow)
		}
	}
}
