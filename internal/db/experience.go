package db

import (
	"time"

	"gorm.io/gorm"
)

// Experience 定义了工作经历模型
// Description 以换行分隔的要点文本存储
// Current 为 true 时 EndDate 必须为空，由写入边界保证
type Experience struct {
	gorm.Model
	Position    string `gorm:"size:160;not null"`
	Company     string `gorm:"size:160;not null"`
	Location    string `gorm:"size:120"`
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
	Description string `gorm:"type:text"`
}
