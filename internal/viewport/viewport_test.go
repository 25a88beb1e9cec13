package viewport

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		width int
		want  Regime
	}{
		{0, Mobile},
		{320, Mobile},
		{500, Mobile},
		{501, Narrow},
		{600, Narrow},
		{700, Narrow},
		{701, Desktop},
		{1920, Desktop},
	}
	for _, tc := range cases {
		if got := Classify(tc.width); got != tc.want {
			t.Fatalf("Classify(%d) = %v, expected %v", tc.width, got, tc.want)
		}
	}
}

func TestRegimeString(t *testing.T) {
	if Mobile.String() != "mobile" || Narrow.String() != "narrow" || Desktop.String() != "desktop" {
		t.Fatalf("unexpected regime names: %v %v %v", Mobile, Narrow, Desktop)
	}
}

func TestOverlay(t *testing.T) {
	if !Mobile.Overlay() {
		t.Fatalf("mobile should overlay")
	}
	if Narrow.Overlay() || Desktop.Overlay() {
		t.Fatalf("narrow and desktop should push")
	}
}

func TestTrackerReportsTransitions(t *testing.T) {
	tr := NewTracker(800)
	if tr.Current() != Desktop {
		t.Fatalf("expected desktop seed, got %v", tr.Current())
	}

	prev, next, changed := tr.Resize(600)
	if !changed || prev != Desktop || next != Narrow {
		t.Fatalf("expected desktop→narrow transition, got prev=%v next=%v changed=%v", prev, next, changed)
	}

	prev, next, changed = tr.Resize(400)
	if !changed || prev != Narrow || next != Mobile {
		t.Fatalf("expected narrow→mobile transition, got prev=%v next=%v changed=%v", prev, next, changed)
	}

	if _, _, changed = tr.Resize(450); changed {
		t.Fatalf("resize within a regime reported a transition")
	}
}
