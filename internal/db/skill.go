package db

import "gorm.io/gorm"

// Skill 定义了技能条目模型
// Icon 字段用于匹配内置的技术图标
type Skill struct {
	gorm.Model
	Name string `gorm:"size:80;not null"`
	Icon string `gorm:"size:50"`
	Sort int    `gorm:"default:0"`
}
