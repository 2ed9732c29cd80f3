package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/oksasatya/student-planner-api/config"
	"github.com/oksasatya/student-planner-api/internal/domain/entity"
)

func TestRenderOverdueDigest(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	tasks := []entity.Task{
		{Title: "Essay draft", Subject: "History", Priority: entity.PriorityHigh, Deadline: now.Add(-2 * time.Hour)},
		{Title: "Problem set 4", Subject: "Math", Priority: entity.PriorityLow, Deadline: now.Add(-26 * time.Hour)},
	}
	data := NewOverdueDigestData(&config.Config{AppName: "Planner"}, "Ana", "ana@example.com", tasks, WithTime(now), WithLocation(loc))

	subject, text, html, err := Render(OverdueDigest, data)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(subject, "2 overdue tasks") {
		t.Fatalf("subject %q", subject)
	}
	for _, want := range []string{"Hi Ana", "Essay draft", "Problem set 4", "10 May 2024, 05:00 WIB", "10 May 2024, 07:00 WIB"} {
		if !strings.Contains(text, want) {
			t.Fatalf("text missing %q:\n%s", want, text)
		}
	}
	if !strings.Contains(html, "Essay draft") {
		t.Fatalf("html missing task:\n%s", html)
	}
}

func TestBaseDataWithoutConfig(t *testing.T) {
	d := NewBaseEmailData(nil, OverdueDigest, "Ana", "ana@example.com", "ana@example.com")
	if d.Time != "" || d.AppName != "" {
		t.Fatalf("unexpected %+v", d)
	}
}
