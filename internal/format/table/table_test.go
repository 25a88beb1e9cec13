package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"search", "react"},
		{"city", "Berlin"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	want := []string{
		"search  react ",
		"city    Berlin",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, got[i], want[i])
		}
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"a", "1"},
		{"long", "22"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignRight})
	want := []string{
		"   a   1",
		"long  22",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, got[i], want[i])
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for no rows, got %v", got)
	}
}

func TestFormatCountsRunes(t *testing.T) {
	rows := [][]string{
		{"⌂", "x"},
		{"ab", "y"},
	}
	got := Format(rows, nil)
	if got[0] != "⌂   x" || got[1] != "ab  y" {
		t.Fatalf("unexpected padding: %q %q", got[0], got[1])
	}
}
