package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrCVProjectNotFound 在指定的简历项目不存在时返回
	ErrCVProjectNotFound = errors.New("cv project not found")
	// ErrCVProjectInvalidInput 在输入数据不完整时返回
	ErrCVProjectInvalidInput = errors.New("invalid cv project input")
)

// CVProjectService 负责简历专用项目条目的增删改查与排序
type CVProjectService struct {
	db *gorm.DB
}

// NewCVProjectService 构造 CVProjectService
func NewCVProjectService(gdb *gorm.DB) *CVProjectService {
	return &CVProjectService{db: gdb}
}

// CVProjectInput 描述创建或更新简历项目时可设置的字段
type CVProjectInput struct {
	Title        string
	Description  string
	Technologies []string
	LiveLink     string
	GitHubLink   string
	Sort         *int
}

// List 返回全部简历项目，按排序值升序
func (s *CVProjectService) List() ([]db.CVProject, error) {
	var items []db.CVProject
	if err := s.db.Order("sort ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list cv projects: %w", err)
	}
	return items, nil
}

// Get 根据主键获取简历项目
func (s *CVProjectService) Get(id uint) (*db.CVProject, error) {
	var item db.CVProject
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCVProjectNotFound
		}
		return nil, fmt.Errorf("get cv project: %w", err)
	}
	return &item, nil
}

// Create 新建简历项目，未指定排序时自动追加到末尾
func (s *CVProjectService) Create(input CVProjectInput) (*db.CVProject, error) {
	if err := validateCVProjectInput(input); err != nil {
		return nil, err
	}

	sortValue, err := resolveSort(s.db, &db.CVProject{}, input.Sort)
	if err != nil {
		return nil, err
	}

	project := db.CVProject{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Technologies: datatypes.NewJSONSlice(cleanTechnologies(input.Technologies)),
		LiveLink:     strings.TrimSpace(input.LiveLink),
		GitHubLink:   strings.TrimSpace(input.GitHubLink),
		Sort:         sortValue,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create cv project: %w", err)
	}

	return &project, nil
}

// Update 更新指定简历项目
func (s *CVProjectService) Update(id uint, input CVProjectInput) (*db.CVProject, error) {
	if err := validateCVProjectInput(input); err != nil {
		return nil, err
	}

	var project db.CVProject
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCVProjectNotFound
		}
		return nil, fmt.Errorf("find cv project: %w", err)
	}

	project.Title = strings.TrimSpace(input.Title)
	project.Description = input.Description
	project.Technologies = datatypes.NewJSONSlice(cleanTechnologies(input.Technologies))
	project.LiveLink = strings.TrimSpace(input.LiveLink)
	project.GitHubLink = strings.TrimSpace(input.GitHubLink)
	if input.Sort != nil {
		project.Sort = *input.Sort
	}

	if err := s.db.Save(&project).Error; err != nil {
		return nil, fmt.Errorf("update cv project: %w", err)
	}

	return &project, nil
}

// Delete 删除指定简历项目
func (s *CVProjectService) Delete(id uint) error {
	if err := s.db.Delete(&db.CVProject{}, id).Error; err != nil {
		return fmt.Errorf("delete cv project: %w", err)
	}
	return nil
}

// Reorder 按给定顺序重排排序字段
func (s *CVProjectService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			if err := tx.Model(&db.CVProject{}).Where("id = ?", id).Update("sort", index).Error; err != nil {
				return fmt.Errorf("reorder cv projects: %w", err)
			}
		}
		return nil
	})
}

func validateCVProjectInput(input CVProjectInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrCVProjectInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrCVProjectInvalidInput)
	}
	return nil
}
