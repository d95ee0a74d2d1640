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

func setupSkillTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:skill-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Skill{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestCreateSkillAcceptsUnknownIcon(t *testing.T) {
	gdb, cleanup := setupSkillTestDB(t)
	defer cleanup()

	svc := NewSkillService(gdb)

	// 图标键在写入时不校验，渲染阶段才回退到默认图形
	skill, err := svc.Create(SkillInput{Name: "Zig", Icon: "zig"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if skill.Icon != "zig" {
		t.Fatalf("expected icon key preserved, got %q", skill.Icon)
	}
}

func TestCreateSkillRequiresName(t *testing.T) {
	gdb, cleanup := setupSkillTestDB(t)
	defer cleanup()

	svc := NewSkillService(gdb)

	if _, err := svc.Create(SkillInput{Icon: "go"}); !errors.Is(err, ErrSkillInvalidInput) {
		t.Fatalf("expected ErrSkillInvalidInput, got %v", err)
	}
}

func TestReorderSkills(t *testing.T) {
	gdb, cleanup := setupSkillTestDB(t)
	defer cleanup()

	svc := NewSkillService(gdb)

	var ids []uint
	for _, name := range []string{"Go", "React", "Docker"} {
		skill, err := svc.Create(SkillInput{Name: name})
		if err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
		ids = append(ids, skill.ID)
	}

	if err := svc.Reorder([]uint{ids[1], ids[2], ids[0]}); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if items[0].Name != "React" || items[1].Name != "Docker" || items[2].Name != "Go" {
		t.Fatalf("unexpected order: %s %s %s", items[0].Name, items[1].Name, items[2].Name)
	}
}

func TestUpdateSkill(t *testing.T) {
	gdb, cleanup := setupSkillTestDB(t)
	defer cleanup()

	svc := NewSkillService(gdb)

	skill, err := svc.Create(SkillInput{Name: "Go", Icon: "go"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(skill.ID, SkillInput{Name: "Golang", Icon: "go"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Golang" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}

	if _, err := svc.Update(999, SkillInput{Name: "X"}); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}
