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
	// ErrProjectNotFound 在指定的项目不存在时返回
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectInvalidInput 在输入数据不完整时返回
	ErrProjectInvalidInput = errors.New("invalid project input")
)

// ProjectService 负责作品集项目的增删改查与排序
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService 构造 ProjectService
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// ProjectInput 描述创建或更新项目时可设置的字段
// Sort 使用指针判断是否显式传入
type ProjectInput struct {
	Title        string
	Description  string
	ImageURL     string
	Technologies []string
	LiveLink     string
	RepoLink     string
	GitHubLink   string
	Sort         *int
}

// List 返回全部项目，按排序值升序，相同排序按创建顺序
func (s *ProjectService) List() ([]db.Project, error) {
	var items []db.Project
	if err := s.db.Order("sort ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return items, nil
}

// Get 根据主键获取项目
func (s *ProjectService) Get(id uint) (*db.Project, error) {
	var item db.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &item, nil
}

// Create 新建项目，未指定排序时自动追加到末尾
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	sortValue, err := resolveSort(s.db, &db.Project{}, input.Sort)
	if err != nil {
		return nil, err
	}

	project := db.Project{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		ImageURL:     strings.TrimSpace(input.ImageURL),
		Technologies: datatypes.NewJSONSlice(cleanTechnologies(input.Technologies)),
		LiveLink:     strings.TrimSpace(input.LiveLink),
		RepoLink:     strings.TrimSpace(input.RepoLink),
		GitHubLink:   strings.TrimSpace(input.GitHubLink),
		Sort:         sortValue,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return &project, nil
}

// Update 更新指定项目
func (s *ProjectService) Update(id uint, input ProjectInput) (*db.Project, error) {
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	project.Title = strings.TrimSpace(input.Title)
	project.Description = input.Description
	project.ImageURL = strings.TrimSpace(input.ImageURL)
	project.Technologies = datatypes.NewJSONSlice(cleanTechnologies(input.Technologies))
	project.LiveLink = strings.TrimSpace(input.LiveLink)
	project.RepoLink = strings.TrimSpace(input.RepoLink)
	project.GitHubLink = strings.TrimSpace(input.GitHubLink)
	if input.Sort != nil {
		project.Sort = *input.Sort
	}

	if err := s.db.Save(&project).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	return &project, nil
}

// Delete 删除指定项目
func (s *ProjectService) Delete(id uint) error {
	if err := s.db.Delete(&db.Project{}, id).Error; err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// Reorder 按给定顺序重排排序字段
// 传入的 IDs 会被依次赋值 0,1,2...，未包含的条目保持原排序
func (s *ProjectService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			if err := tx.Model(&db.Project{}).Where("id = ?", id).Update("sort", index).Error; err != nil {
				return fmt.Errorf("reorder projects: %w", err)
			}
		}
		return nil
	})
}

// IncrementViews 原子地累加项目浏览数，失败时只记录不阻断页面渲染
func (s *ProjectService) IncrementViews(id uint) error {
	if err := s.db.Model(&db.Project{}).Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error; err != nil {
		return fmt.Errorf("increment project views: %w", err)
	}
	return nil
}

func validateProjectInput(input ProjectInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrProjectInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrProjectInvalidInput)
	}
	return nil
}

func cleanTechnologies(raw []string) []string {
	cleaned := make([]string, 0, len(raw))
	for _, tech := range raw {
		trimmed := strings.TrimSpace(tech)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}

// resolveSort 计算追加到末尾的排序值，供各内容服务共用
func resolveSort(gdb *gorm.DB, model interface{}, sortPtr *int) (int, error) {
	if sortPtr != nil {
		return *sortPtr, nil
	}

	var maxSort int
	if err := gdb.Model(model).Select("COALESCE(MAX(sort), -1)").Scan(&maxSort).Error; err != nil {
		return 0, fmt.Errorf("resolve sort: %w", err)
	}

	return maxSort + 1, nil
}
