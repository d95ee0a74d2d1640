package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrSkillNotFound 在指定的技能不存在时返回
	ErrSkillNotFound = errors.New("skill not found")
	// ErrSkillInvalidInput 在输入数据不完整时返回
	ErrSkillInvalidInput = errors.New("invalid skill input")
)

// SkillService 负责技能条目的增删改查与排序
// 图标键不在此处校验，未知键由展示侧回退到默认图标
type SkillService struct {
	db *gorm.DB
}

// NewSkillService 构造 SkillService
func NewSkillService(gdb *gorm.DB) *SkillService {
	return &SkillService{db: gdb}
}

// SkillInput 描述创建或更新技能时可设置的字段
type SkillInput struct {
	Name string
	Icon string
	Sort *int
}

// List 返回全部技能，按排序值升序，相同排序按创建顺序
func (s *SkillService) List() ([]db.Skill, error) {
	var items []db.Skill
	if err := s.db.Order("sort ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return items, nil
}

// Get 根据主键获取技能
func (s *SkillService) Get(id uint) (*db.Skill, error) {
	var item db.Skill
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}
	return &item, nil
}

// Create 新建技能，未指定排序时自动追加到末尾
func (s *SkillService) Create(input SkillInput) (*db.Skill, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrSkillInvalidInput)
	}

	sortValue, err := resolveSort(s.db, &db.Skill{}, input.Sort)
	if err != nil {
		return nil, err
	}

	skill := db.Skill{
		Name: strings.TrimSpace(input.Name),
		Icon: strings.TrimSpace(input.Icon),
		Sort: sortValue,
	}

	if err := s.db.Create(&skill).Error; err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}

	return &skill, nil
}

// Update 更新指定技能
func (s *SkillService) Update(id uint, input SkillInput) (*db.Skill, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrSkillInvalidInput)
	}

	var skill db.Skill
	if err := s.db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}

	skill.Name = strings.TrimSpace(input.Name)
	skill.Icon = strings.TrimSpace(input.Icon)
	if input.Sort != nil {
		skill.Sort = *input.Sort
	}

	if err := s.db.Save(&skill).Error; err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}

	return &skill, nil
}

// Delete 删除指定技能
func (s *SkillService) Delete(id uint) error {
	if err := s.db.Delete(&db.Skill{}, id).Error; err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}

// Reorder 按给定顺序重排排序字段
func (s *SkillService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			if err := tx.Model(&db.Skill{}).Where("id = ?", id).Update("sort", index).Error; err != nil {
				return fmt.Errorf("reorder skills: %w", err)
			}
		}
		return nil
	})
}
