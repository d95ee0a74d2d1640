package db

import "gorm.io/gorm"

// Profile 保存站点主人的个人信息，约定只使用第一条记录
// CVSummary 为简历专用的职业目标，为空时回退到 Bio
type Profile struct {
	gorm.Model
	Name      string `gorm:"size:120;not null"`
	Title     string `gorm:"size:120;not null"`
	Bio       string `gorm:"type:text"`
	CVSummary string `gorm:"type:text"`
	Email     string `gorm:"size:255;not null"`
	Phone     string `gorm:"size:50"`
	Location  string `gorm:"size:120"`
	Website   string `gorm:"size:255"`
	GitHub    string `gorm:"size:255"`
	LinkedIn  string `gorm:"size:255"`
	Telegram  string `gorm:"size:120"`
	AvatarURL string `gorm:"size:255"`
}
