package domain

import "testing"

func TestUrgencySeverityOrder(t *testing.T) {
	ordered := []UrgencyLevel{
		UrgencySelfCare,
		UrgencyOutpatient,
		UrgencyUrgent,
		UrgencyEmergency,
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i].Severity() <= ordered[i-1].Severity() {
			t.Fatalf("expected %q more severe than %q", ordered[i], ordered[i-1])
		}
	}

	if UrgencyLevel("whatever").Severity() != -1 {
		t.Fatalf("expected unknown level to rank below all tiers")
	}
}
