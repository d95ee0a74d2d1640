package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project 定义了作品集项目模型
// Technologies 以 JSON 数组存储，保持录入顺序
// Sort 值越小越靠前，相同时按创建顺序排列
type Project struct {
	gorm.Model
	Title        string                      `gorm:"size:160;not null"`
	Description  string                      `gorm:"type:text;not null"`
	ImageURL     string                      `gorm:"size:255"`
	Technologies datatypes.JSONSlice[string] `gorm:"type:text"`
	LiveLink     string                      `gorm:"size:255"`
	RepoLink     string                      `gorm:"size:255"`
	GitHubLink   string                      `gorm:"size:255"`
	Views        uint64                      `gorm:"default:0"`
	Sort         int                         `gorm:"default:0"`
}

// CVProject 是专为简历维护的项目条目，与作品集项目相互独立
type CVProject struct {
	gorm.Model
	Title        string                      `gorm:"size:160;not null"`
	Description  string                      `gorm:"type:text;not null"`
	Technologies datatypes.JSONSlice[string] `gorm:"type:text"`
	LiveLink     string                      `gorm:"size:255"`
	GitHubLink   string                      `gorm:"size:255"`
	Sort         int                         `gorm:"default:0"`
}

// TableName 指定自定义表名，避免自动复数化出现 c_v_projects
func (CVProject) TableName() string {
	return "cv_projects"
}
