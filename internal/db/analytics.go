package db

import "time"

// PageView 记录单次页面浏览，只追加不更新
type PageView struct {
	ID        uint   `gorm:"primaryKey"`
	Path      string `gorm:"size:255;not null;index"`
	UserAgent string `gorm:"size:255"`
	Referrer  string `gorm:"size:255"`
	Country   string `gorm:"size:80"`
	CreatedAt time.Time
}

// TableName 指定自定义表名
func (PageView) TableName() string {
	return "page_views"
}

// Visitor 以会话为粒度聚合访客数据
// SessionID 唯一，同一会话的并发上报由存储层的 upsert 保证不丢计数
type Visitor struct {
	ID         uint   `gorm:"primaryKey"`
	SessionID  string `gorm:"size:64;uniqueIndex"`
	FirstVisit time.Time
	LastVisit  time.Time
	PageViews  uint64 `gorm:"default:0"`
	UserAgent  string `gorm:"size:255"`
	Country    string `gorm:"size:80"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName 指定自定义表名
func (Visitor) TableName() string {
	return "visitors"
}
