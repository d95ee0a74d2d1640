package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrExperienceNotFound 在指定的工作经历不存在时返回
	ErrExperienceNotFound = errors.New("experience not found")
	// ErrExperienceInvalidInput 在输入数据不完整时返回
	ErrExperienceInvalidInput = errors.New("invalid experience input")
)

// ExperienceService 负责工作经历的增删改查
// Current=true 的条目在写入边界清空 EndDate，保证数据一致
type ExperienceService struct {
	db *gorm.DB
}

// NewExperienceService 构造 ExperienceService
func NewExperienceService(gdb *gorm.DB) *ExperienceService {
	return &ExperienceService{db: gdb}
}

// ExperienceInput 描述创建或更新工作经历时可设置的字段
type ExperienceInput struct {
	Position    string
	Company     string
	Location    string
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
	Description string
}

// List 返回全部工作经历，按开始时间倒序
func (s *ExperienceService) List() ([]db.Experience, error) {
	var items []db.Experience
	if err := s.db.Order("start_date DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return items, nil
}

// Get 根据主键获取工作经历
func (s *ExperienceService) Get(id uint) (*db.Experience, error) {
	var item db.Experience
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("get experience: %w", err)
	}
	return &item, nil
}

// Create 新建工作经历
func (s *ExperienceService) Create(input ExperienceInput) (*db.Experience, error) {
	if err := validateExperienceInput(input); err != nil {
		return nil, err
	}

	exp := db.Experience{
		Position:    strings.TrimSpace(input.Position),
		Company:     strings.TrimSpace(input.Company),
		Location:    strings.TrimSpace(input.Location),
		StartDate:   input.StartDate,
		EndDate:     normalizeEndDate(input.EndDate, input.Current),
		Current:     input.Current,
		Description: input.Description,
	}

	if err := s.db.Create(&exp).Error; err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}

	return &exp, nil
}

// Update 更新指定工作经历
func (s *ExperienceService) Update(id uint, input ExperienceInput) (*db.Experience, error) {
	if err := validateExperienceInput(input); err != nil {
		return nil, err
	}

	var exp db.Experience
	if err := s.db.First(&exp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("find experience: %w", err)
	}

	exp.Position = strings.TrimSpace(input.Position)
	exp.Company = strings.TrimSpace(input.Company)
	exp.Location = strings.TrimSpace(input.Location)
	exp.StartDate = input.StartDate
	exp.EndDate = normalizeEndDate(input.EndDate, input.Current)
	exp.Current = input.Current
	exp.Description = input.Description

	if err := s.db.Save(&exp).Error; err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}

	return &exp, nil
}

// Delete 删除指定工作经历
func (s *ExperienceService) Delete(id uint) error {
	if err := s.db.Delete(&db.Experience{}, id).Error; err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	return nil
}

func validateExperienceInput(input ExperienceInput) error {
	if strings.TrimSpace(input.Position) == "" {
		return fmt.Errorf("%w: position is required", ErrExperienceInvalidInput)
	}
	if strings.TrimSpace(input.Company) == "" {
		return fmt.Errorf("%w: company is required", ErrExperienceInvalidInput)
	}
	if input.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrExperienceInvalidInput)
	}
	return nil
}

// normalizeEndDate 在 current 为 true 时丢弃结束时间
func normalizeEndDate(endDate *time.Time, current bool) *time.Time {
	if current {
		return nil
	}
	return endDate
}
