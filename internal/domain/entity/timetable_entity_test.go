package entity

import (
	"encoding/json"
	"testing"
)

func TestNormalizeClock(t *testing.T) {
	for in, want := range map[string]string{"9:05": "09:05", "09:05": "09:05", "23:59": "23:59", "0:00": "00:00"} {
		got, err := NormalizeClock(in)
		if err != nil || got != want {
			t.Fatalf("NormalizeClock(%q) = %q, %v", in, got, err)
		}
	}
	for _, bad := range []string{"24:00", "12:60", "noon", ""} {
		if _, err := NormalizeClock(bad); err == nil {
			t.Fatalf("NormalizeClock(%q) should fail", bad)
		}
	}
}

func TestTimetablePatchAssignments(t *testing.T) {
	var p TimetablePatch
	if err := json.Unmarshal([]byte(`{"dayOfWeek":0,"location":"Room 1","userId":"x"}`), &p); err != nil {
		t.Fatal(err)
	}
	got := p.Assignments()
	if len(got) != 2 || got[0].Column != EntryColDayOfWeek || got[1].Column != EntryColLocation {
		t.Fatalf("assignments = %+v", got)
	}
	if got[0].Value != 0 {
		t.Fatalf("sunday lost: %#v", got[0].Value)
	}
}
