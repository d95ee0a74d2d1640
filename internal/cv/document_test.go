package cv

import (
	"testing"
	"time"

	"github.com/devfolio/internal/db"
)

func TestSplitBulletsDropsBlankLines(t *testing.T) {
	bullets := SplitBullets("line1\n\nline2")
	if len(bullets) != 2 {
		t.Fatalf("expected 2 bullets, got %d: %v", len(bullets), bullets)
	}
	if bullets[0] != "line1" || bullets[1] != "line2" {
		t.Fatalf("unexpected bullets: %v", bullets)
	}

	bullets = SplitBullets("  padded  \n\t\n")
	if len(bullets) != 1 || bullets[0] != "padded" {
		t.Fatalf("expected single trimmed bullet, got %v", bullets)
	}

	if got := SplitBullets(""); len(got) != 0 {
		t.Fatalf("expected no bullets for empty input, got %v", got)
	}
}

func TestFormatDateRange(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{"completed", "2022-01-10", "2024-06-01", false, "Jan 2022 - Jun 2024"},
		{"current overrides end", "2022-01-10", "2024-06-01", true, "Jan 2022 - Present"},
		{"missing end", "2022-01-10", "", false, "Jan 2022 - Present"},
		{"rfc3339 input", "2022-01-10T00:00:00Z", "2024-06-01T00:00:00Z", false, "Jan 2022 - Jun 2024"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatDateRange(tc.start, tc.end, tc.current)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormatYearRange(t *testing.T) {
	if got := FormatYearRange("2018-09-01", "2022-06-30", false); got != "2018 - 2022" {
		t.Fatalf("expected year range, got %q", got)
	}
	if got := FormatYearRange("2023-09-01", "", true); got != "2023 - Present" {
		t.Fatalf("expected Present for ongoing study, got %q", got)
	}
}

func TestFormatMonthYearInvalidInput(t *testing.T) {
	if got := FormatMonthYear("not-a-date"); got != "" {
		t.Fatalf("expected empty string for invalid date, got %q", got)
	}
	if got := FormatYear(""); got != "" {
		t.Fatalf("expected empty string for empty date, got %q", got)
	}
}

func TestBuildWithNilProfile(t *testing.T) {
	doc := Build(nil, nil, nil, nil, nil)

	if doc.Name != "" || doc.Summary != "" {
		t.Fatalf("expected empty identity fields, got %+v", doc)
	}
	if doc.Skills == nil || doc.Projects == nil || doc.Experiences == nil || doc.Educations == nil {
		t.Fatal("expected non-nil empty collections")
	}
}

func TestBuildSummaryFallsBackToBio(t *testing.T) {
	profile := &db.Profile{Name: "Alice", Bio: "bio text", CVSummary: "  "}

	doc := Build(profile, nil, nil, nil, nil)
	if doc.Summary != "bio text" {
		t.Fatalf("expected bio fallback, got %q", doc.Summary)
	}

	profile.CVSummary = "objective text"
	doc = Build(profile, nil, nil, nil, nil)
	if doc.Summary != "objective text" {
		t.Fatalf("expected cv summary preferred, got %q", doc.Summary)
	}
}

func TestBuildSanitizesAvatarURL(t *testing.T) {
	profile := &db.Profile{Name: "Alice", AvatarURL: "://bad url"}
	doc := Build(profile, nil, nil, nil, nil)
	if doc.AvatarURL != "" {
		t.Fatalf("expected invalid avatar dropped, got %q", doc.AvatarURL)
	}

	profile.AvatarURL = "https://example.com/avatar.png"
	doc = Build(profile, nil, nil, nil, nil)
	if doc.AvatarURL != "https://example.com/avatar.png" {
		t.Fatalf("expected valid avatar preserved, got %q", doc.AvatarURL)
	}
}

func TestBuildConvertsEntities(t *testing.T) {
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	experiences := []db.Experience{{
		Position:    "Engineer",
		Company:     "Acme",
		StartDate:   time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     &end,
		Description: "built things\n\nshipped things",
	}}
	skills := []db.Skill{{Name: "Go"}, {Name: "React"}}
	projects := []db.CVProject{{Title: "Portfolio", Description: "wrote it"}}

	doc := Build(&db.Profile{Name: "Alice"}, skills, projects, experiences, nil)

	if len(doc.Skills) != 2 || doc.Skills[0] != "Go" {
		t.Fatalf("unexpected skills: %v", doc.Skills)
	}
	if len(doc.Projects) != 1 || doc.Projects[0].Title != "Portfolio" {
		t.Fatalf("unexpected projects: %+v", doc.Projects)
	}
	if len(doc.Experiences) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(doc.Experiences))
	}

	exp := doc.Experiences[0]
	if exp.StartDate != "2022-01-10T00:00:00Z" || exp.EndDate != "2024-06-01T00:00:00Z" {
		t.Fatalf("unexpected experience dates: %q / %q", exp.StartDate, exp.EndDate)
	}
	if FormatDateRange(exp.StartDate, exp.EndDate, exp.Current) != "Jan 2022 - Jun 2024" {
		t.Fatalf("unexpected formatted range for %q / %q", exp.StartDate, exp.EndDate)
	}
	if len(exp.Bullets) != 2 {
		t.Fatalf("expected 2 bullets, got %v", exp.Bullets)
	}
}

func TestHasSocial(t *testing.T) {
	if (Document{}).HasSocial() {
		t.Fatal("expected no social block for empty document")
	}
	if !(Document{GitHub: "https://github.com/alice"}).HasSocial() {
		t.Fatal("expected social block with github link")
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("Alice Chen"); got != "Alice_Chen_CV.pdf" {
		t.Fatalf("expected Alice_Chen_CV.pdf, got %q", got)
	}
	if got := FileName("  "); got != "CV.pdf" {
		t.Fatalf("expected CV.pdf fallback, got %q", got)
	}
}
