package analytics

import "testing"

func TestProject(t *testing.T) {
	if got := Project(1000, 10, 20); got != 2000 {
		t.Fatalf("Project(1000, 10, 20) = %v, want 2000", got)
	}
	if got := Project(1000, 0, 20); got != 0 {
		t.Fatalf("Project with zero elapsed days = %v, want 0", got)
	}
	if got := Project(0, 5, 20); got != 0 {
		t.Fatalf("Project with zero revenue = %v, want 0", got)
	}
}

func TestAttainmentGuards(t *testing.T) {
	if got := Attainment(0, 5000); got != 0 {
		t.Fatalf("Attainment(0, 5000) = %v, want 0", got)
	}
	if got := Attainment(1234, 0); got != 0 {
		t.Fatalf("Attainment against zero target = %v, want 0", got)
	}
	if got := Attainment(50, 200); got != 25 {
		t.Fatalf("Attainment(50, 200) = %v, want 25", got)
	}
	// Not capped: overshooting the target is reported as-is.
	if got := Attainment(300, 200); got != 150 {
		t.Fatalf("Attainment(300, 200) = %v, want 150", got)
	}
}

func TestStatusColor(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{120, StatusGreen},
		{100, StatusGreen},
		{99.9, StatusYellow},
		{70, StatusYellow},
		{69.9, StatusRed},
		{0, StatusRed},
	}
	for _, c := range cases {
		if got := StatusColor(c.pct); got != c.want {
			t.Errorf("StatusColor(%v) = %q, want %q", c.pct, got, c.want)
		}
	}
}
