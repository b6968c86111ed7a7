package billing

import (
	"errors"
	"testing"
	"time"
)

var entry = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

func TestHourlyChargeMinimumOneHour(t *testing.T) {
	cases := []struct {
		name string
		exit time.Time
	}{
		{"one second", entry.Add(time.Second)},
		{"one minute", entry.Add(time.Minute)},
		{"59 minutes", entry.Add(59 * time.Minute)},
		{"exactly one hour", entry.Add(time.Hour)},
		{"zero duration", entry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hours, fee, err := HourlyCharge(entry, tc.exit, 500, ClampNegative)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hours != 1 {
				t.Errorf("hours = %d, want 1", hours)
			}
			if fee != 500 {
				t.Errorf("fee = %v, want 500", fee)
			}
		})
	}
}

func TestHourlyChargeRoundsStartedHoursUp(t *testing.T) {
	cases := []struct {
		name      string
		exit      time.Time
		wantHours int
		wantFee   float64
	}{
		{"61 minutes", entry.Add(61 * time.Minute), 2, 1000},
		{"two hours one minute", entry.Add(2*time.Hour + time.Minute), 3, 1500},
		{"exactly three hours", entry.Add(3 * time.Hour), 3, 1500},
		{"three hours one second", entry.Add(3*time.Hour + time.Second), 4, 2000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hours, fee, err := HourlyCharge(entry, tc.exit, 500, ClampNegative)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hours != tc.wantHours {
				t.Errorf("hours = %d, want %d", hours, tc.wantHours)
			}
			if fee != tc.wantFee {
				t.Errorf("fee = %v, want %v", fee, tc.wantFee)
			}
		})
	}
}

func TestHourlyChargeNegativeDuration(t *testing.T) {
	exit := entry.Add(-30 * time.Minute)

	hours, fee, err := HourlyCharge(entry, exit, 500, ClampNegative)
	if err != nil {
		t.Fatalf("clamp policy returned error: %v", err)
	}
	if hours != 1 || fee != 500 {
		t.Errorf("clamp: got hours=%d fee=%v, want 1/500", hours, fee)
	}

	if _, _, err := HourlyCharge(entry, exit, 500, RejectNegative); !errors.Is(err, ErrNegativeDuration) {
		t.Errorf("reject: err = %v, want ErrNegativeDuration", err)
	}
}

func TestChargeFlatIgnoresDuration(t *testing.T) {
	hours, fee, err := Charge(KindFlat, entry, entry.Add(26*time.Hour), 0, 7500, ClampNegative)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hours != 0 {
		t.Errorf("hours = %d, want 0", hours)
	}
	if fee != 7500 {
		t.Errorf("fee = %v, want 7500", fee)
	}
}

func TestChargePerLiter(t *testing.T) {
	_, fee, err := Charge(KindPerLiter, entry, entry, 42.5, 1800, ClampNegative)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fee != 42.5*1800 {
		t.Errorf("fee = %v, want %v", fee, 42.5*1800)
	}

	if _, _, err := Charge(KindPerLiter, entry, entry, 0, 1800, ClampNegative); !errors.Is(err, ErrQuantityRequired) {
		t.Errorf("zero quantity: err = %v, want ErrQuantityRequired", err)
	}
}

func TestChargeUnknownKind(t *testing.T) {
	if _, _, err := Charge("per_lightyear", entry, entry, 0, 1, ClampNegative); !errors.Is(err, ErrUnknownRateKind) {
		t.Errorf("err = %v, want ErrUnknownRateKind", err)
	}
}

func TestNegativeDurationPolicyValid(t *testing.T) {
	if !ClampNegative.Valid() || !RejectNegative.Valid() {
		t.Error("built-in policies must be valid")
	}
	if NegativeDurationPolicy("ignore").Valid() {
		t.Error("unknown policy reported valid")
	}
}
