package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupProjectTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:project-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Project{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestCreateProjectAppendsSort(t *testing.T) {
	gdb, cleanup := setupProjectTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)

	first, err := svc.Create(ProjectInput{Title: "First", Description: "demo"})
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second, err := svc.Create(ProjectInput{Title: "Second", Description: "demo"})
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	if first.Sort != 0 {
		t.Fatalf("expected first sort 0, got %d", first.Sort)
	}
	if second.Sort != 1 {
		t.Fatalf("expected second sort 1, got %d", second.Sort)
	}
}

func TestCreateProjectCleansTechnologies(t *testing.T) {
	gdb, cleanup := setupProjectTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)

	project, err := svc.Create(ProjectInput{
		Title:        "Tech",
		Description:  "demo",
		Technologies: []string{" Go ", "", "React", "  "},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(project.Technologies) != 2 {
		t.Fatalf("expected 2 technologies, got %v", project.Technologies)
	}
	if project.Technologies[0] != "Go" || project.Technologies[1] != "React" {
		t.Fatalf("expected trimmed technologies, got %v", project.Technologies)
	}
}

func TestCreateProjectRequiresTitle(t *testing.T) {
	gdb, cleanup := setupProjectTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)

	if _, err := svc.Create(ProjectInput{Title: "  "}); !errors.Is(err, ErrProjectInvalidInput) {
		t.Fatalf("expected ErrProjectInvalidInput, got %v", err)
	}
}

func TestListProjectsStableOrder(t *testing.T) {
	gdb, cleanup := setupProjectTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)

	sort := 5
	for _, title := range []string{"A", "B", "C"} {
		if _, err := svc.Create(ProjectInput{Title: title, Sort: &sort}); err != nil {
			t.Fatalf("create %s failed: %v", title, err)
		}
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(items))
	}
	// 相同排序值按插入顺序返回
	if items[0].Title != "A" || items[1].Title != "B" || items[2].Title != "C" {
		t.Fatalf("expected insertion order for equal sort, got %s %s %s", items[0].Title, items[1].Title, items[2].Title)
	}
}

func TestReorderProjects(t *testing.T) {
	gdb, cleanup := setupProjectTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)

	var ids []uint
	for _, title := range []string{"A", "B", "C"} {
		project, err := svc.Create(ProjectInput{Title: title})
		if err != nil {
			t.Fatalf("create %s failed: %v", title, err)
		}
		ids = append(ids, project.ID)
	}

	if err := svc.Reorder([]uint{ids[2], ids[0], ids[1]}); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if items[0].Title != "C" || items[1].Title != "A" || items[2].Title != "B" {
		t.Fatalf("unexpected order after reorder: %s %s %s", items[0].Title, items[1].Title, items[2].Title)
	}
}

func TestIncrementViews(t *testing.T) {
	gdb, cleanup := setupProjectTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)

	project, err := svc.Create(ProjectInput{Title: "Counted"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := svc.IncrementViews(project.ID); err != nil {
			t.Fatalf("increment %d failed: %v", i, err)
		}
	}

	got, err := svc.Get(project.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Views != 3 {
		t.Fatalf("expected 3 views, got %d", got.Views)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	gdb, cleanup := setupProjectTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)

	if _, err := svc.Get(999); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if _, err := svc.Update(999, ProjectInput{Title: "X"}); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound on update, got %v", err)
	}
}
