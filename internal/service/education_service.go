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
	// ErrEducationNotFound 在指定的教育经历不存在时返回
	ErrEducationNotFound = errors.New("education not found")
	// ErrEducationInvalidInput 在输入数据不完整时返回
	ErrEducationInvalidInput = errors.New("invalid education input")
)

// EducationService 负责教育经历的增删改查
type EducationService struct {
	db *gorm.DB
}

// NewEducationService 构造 EducationService
func NewEducationService(gdb *gorm.DB) *EducationService {
	return &EducationService{db: gdb}
}

// EducationInput 描述创建或更新教育经历时可设置的字段
type EducationInput struct {
	Institution string
	Degree      string
	Field       string
	Location    string
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
	Description string
}

// List 返回全部教育经历，按开始时间倒序
func (s *EducationService) List() ([]db.Education, error) {
	var items []db.Education
	if err := s.db.Order("start_date DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list educations: %w", err)
	}
	return items, nil
}

// Get 根据主键获取教育经历
func (s *EducationService) Get(id uint) (*db.Education, error) {
	var item db.Education
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEducationNotFound
		}
		return nil, fmt.Errorf("get education: %w", err)
	}
	return &item, nil
}

// Create 新建教育经历
func (s *EducationService) Create(input EducationInput) (*db.Education, error) {
	if err := validateEducationInput(input); err != nil {
		return nil, err
	}

	edu := db.Education{
		Institution: strings.TrimSpace(input.Institution),
		Degree:      strings.TrimSpace(input.Degree),
		Field:       strings.TrimSpace(input.Field),
		Location:    strings.TrimSpace(input.Location),
		StartDate:   input.StartDate,
		EndDate:     normalizeEndDate(input.EndDate, input.Current),
		Current:     input.Current,
		Description: input.Description,
	}

	if err := s.db.Create(&edu).Error; err != nil {
		return nil, fmt.Errorf("create education: %w", err)
	}

	return &edu, nil
}

// Update 更新指定教育经历
func (s *EducationService) Update(id uint, input EducationInput) (*db.Education, error) {
	if err := validateEducationInput(input); err != nil {
		return nil, err
	}

	var edu db.Education
	if err := s.db.First(&edu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEducationNotFound
		}
		return nil, fmt.Errorf("find education: %w", err)
	}

	edu.Institution = strings.TrimSpace(input.Institution)
	edu.Degree = strings.TrimSpace(input.Degree)
	edu.Field = strings.TrimSpace(input.Field)
	edu.Location = strings.TrimSpace(input.Location)
	edu.StartDate = input.StartDate
	edu.EndDate = normalizeEndDate(input.EndDate, input.Current)
	edu.Current = input.Current
	edu.Description = input.Description

	if err := s.db.Save(&edu).Error; err != nil {
		return nil, fmt.Errorf("update education: %w", err)
	}

	return &edu, nil
}

// Delete 删除指定教育经历
func (s *EducationService) Delete(id uint) error {
	if err := s.db.Delete(&db.Education{}, id).Error; err != nil {
		return fmt.Errorf("delete education: %w", err)
	}
	return nil
}

func validateEducationInput(input EducationInput) error {
	if strings.TrimSpace(input.Institution) == "" {
		return fmt.Errorf("%w: institution is required", ErrEducationInvalidInput)
	}
	if strings.TrimSpace(input.Degree) == "" {
		return fmt.Errorf("%w: degree is required", ErrEducationInvalidInput)
	}
	if strings.TrimSpace(input.Field) == "" {
		return fmt.Errorf("%w: field is required", ErrEducationInvalidInput)
	}
	if input.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrEducationInvalidInput)
	}
	return nil
}
