package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ErrProfileNotFound 在尚未创建任何个人信息时返回
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService 负责维护站点主人的个人信息
// 约定只使用第一条记录，Upsert 在记录不存在时创建
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService 构造 ProfileService
func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// ProfileInput 描述更新个人信息时可设置的字段
type ProfileInput struct {
	Name      string
	Title     string
	Bio       string
	CVSummary string
	Email     string
	Phone     string
	Location  string
	Website   string
	GitHub    string
	LinkedIn  string
	Telegram  string
	AvatarURL string
}

// Get 返回第一条个人信息记录
func (s *ProfileService) Get() (*db.Profile, error) {
	var profile db.Profile
	if err := s.db.Order("id ASC").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Upsert 更新个人信息，不存在时创建并为必填字段兜底
func (s *ProfileService) Upsert(input ProfileInput) (*db.Profile, error) {
	var profile db.Profile
	err := s.db.Order("id ASC").First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = db.Profile{}
	case err != nil:
		return nil, fmt.Errorf("find profile: %w", err)
	}

	profile.Name = fallback(strings.TrimSpace(input.Name), "Your Name")
	profile.Title = fallback(strings.TrimSpace(input.Title), "Your Title")
	profile.Bio = input.Bio
	profile.CVSummary = input.CVSummary
	profile.Email = fallback(strings.TrimSpace(input.Email), "placeholder@email.com")
	profile.Phone = strings.TrimSpace(input.Phone)
	profile.Location = strings.TrimSpace(input.Location)
	profile.Website = strings.TrimSpace(input.Website)
	profile.GitHub = strings.TrimSpace(input.GitHub)
	profile.LinkedIn = strings.TrimSpace(input.LinkedIn)
	profile.Telegram = strings.TrimSpace(input.Telegram)
	profile.AvatarURL = strings.TrimSpace(input.AvatarURL)

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	return &profile, nil
}

func fallback(value, alt string) string {
	if value == "" {
		return alt
	}
	return value
}
