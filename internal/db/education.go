package db

import (
	"time"

	"gorm.io/gorm"
)

// Education 定义了教育经历模型
type Education struct {
	gorm.Model
	Institution string `gorm:"size:160;not null"`
	Degree      string `gorm:"size:120;not null"`
	Field       string `gorm:"size:120;not null"`
	Location    string `gorm:"size:120"`
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
	Description string `gorm:"type:text"`
}
