package cv

import (
	"bytes"
	"sync"
	"testing"
)

func sampleDocument() Document {
	return Document{
		Name:     "Alice Chen",
		Title:    "Software Engineer",
		Email:    "alice@example.com",
		Phone:    "+1 555 0100",
		Location: "Berlin, Germany",
		Summary:  "Engineer focused on backend systems.",
		GitHub:   "https://github.com/alice",
		LinkedIn: "https://linkedin.com/in/alice",
		Skills:   []string{"Go", "TypeScript", "PostgreSQL"},
		Projects: []ProjectEntry{{
			Title:        "Portfolio",
			Technologies: []string{"Go", "Gin"},
			Bullets:      []string{"Built a CMS", "Shipped a CV generator"},
		}},
		Experiences: []ExperienceEntry{{
			Position:  "Engineer",
			Company:   "Acme",
			Location:  "Remote",
			StartDate: "2022-01-10T00:00:00Z",
			Current:   true,
			Bullets:   []string{"Owned the billing service"},
		}},
		Educations: []EducationEntry{{
			Institution: "TU Berlin",
			Degree:      "BSc",
			Field:       "Computer Science",
			StartDate:   "2018-09-01T00:00:00Z",
			EndDate:     "2022-06-30T00:00:00Z",
		}},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	composer := NewComposer()

	out, err := composer.Render(sampleDocument())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", out[:min(len(out), 8)])
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	composer := NewComposer()

	out, err := composer.Render(Document{})
	if err != nil {
		t.Fatalf("render of empty document failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("expected PDF header for empty document")
	}
}

func TestRenderConcurrent(t *testing.T) {
	composer := NewComposer()
	doc := sampleDocument()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := composer.Render(doc); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent render failed: %v", err)
	}
}
