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

func setupExperienceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:experience-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Experience{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestCreateExperienceCurrentClearsEndDate(t *testing.T) {
	gdb, cleanup := setupExperienceTestDB(t)
	defer cleanup()

	svc := NewExperienceService(gdb)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	exp, err := svc.Create(ExperienceInput{
		Position:  "Engineer",
		Company:   "Acme",
		StartDate: time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Current:   true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if exp.EndDate != nil {
		t.Fatalf("expected end date cleared for current role, got %v", exp.EndDate)
	}
	if !exp.Current {
		t.Fatal("expected current flag preserved")
	}
}

func TestUpdateExperienceKeepsEndDateWhenNotCurrent(t *testing.T) {
	gdb, cleanup := setupExperienceTestDB(t)
	defer cleanup()

	svc := NewExperienceService(gdb)
	start := time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)

	exp, err := svc.Create(ExperienceInput{
		Position:  "Engineer",
		Company:   "Acme",
		StartDate: start,
		Current:   true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(exp.ID, ExperienceInput{
		Position:  "Engineer",
		Company:   "Acme",
		StartDate: start,
		EndDate:   &end,
		Current:   false,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.EndDate == nil || !updated.EndDate.Equal(end) {
		t.Fatalf("expected end date %v, got %v", end, updated.EndDate)
	}
	if updated.Current {
		t.Fatal("expected current flag cleared")
	}
}

func TestExperienceValidation(t *testing.T) {
	gdb, cleanup := setupExperienceTestDB(t)
	defer cleanup()

	svc := NewExperienceService(gdb)
	start := time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Create(ExperienceInput{Company: "Acme", StartDate: start}); !errors.Is(err, ErrExperienceInvalidInput) {
		t.Fatalf("expected ErrExperienceInvalidInput for missing position, got %v", err)
	}
	if _, err := svc.Create(ExperienceInput{Position: "Engineer", StartDate: start}); !errors.Is(err, ErrExperienceInvalidInput) {
		t.Fatalf("expected ErrExperienceInvalidInput for missing company, got %v", err)
	}
	if _, err := svc.Create(ExperienceInput{Position: "Engineer", Company: "Acme"}); !errors.Is(err, ErrExperienceInvalidInput) {
		t.Fatalf("expected ErrExperienceInvalidInput for missing start date, got %v", err)
	}
}

func TestListExperiencesNewestFirst(t *testing.T) {
	gdb, cleanup := setupExperienceTestDB(t)
	defer cleanup()

	svc := NewExperienceService(gdb)

	older := time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Create(ExperienceInput{Position: "Junior", Company: "Acme", StartDate: older}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ExperienceInput{Position: "Senior", Company: "Acme", StartDate: newer, Current: true}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 experiences, got %d", len(items))
	}
	if items[0].Position != "Senior" || items[1].Position != "Junior" {
		t.Fatalf("expected newest first, got %s then %s", items[0].Position, items[1].Position)
	}
}

func TestDeleteExperience(t *testing.T) {
	gdb, cleanup := setupExperienceTestDB(t)
	defer cleanup()

	svc := NewExperienceService(gdb)

	exp, err := svc.Create(ExperienceInput{
		Position:  "Engineer",
		Company:   "Acme",
		StartDate: time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(exp.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(exp.ID); !errors.Is(err, ErrExperienceNotFound) {
		t.Fatalf("expected ErrExperienceNotFound after delete, got %v", err)
	}
}
