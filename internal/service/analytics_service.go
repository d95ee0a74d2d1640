package service

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultRecentActivityLimit = 10

// ErrAnalyticsInvalidInput 在上报数据缺少必填字段时返回
var ErrAnalyticsInvalidInput = errors.New("invalid analytics input")

// AnalyticsService 负责页面浏览与访客会话的统计逻辑。
// 写入侧保证同一会话并发上报不丢计数，读取侧在存储故障时降级为空结果。
type AnalyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService 创建 AnalyticsService
func NewAnalyticsService(gdb *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: gdb}
}

// RecordView 追加一条页面浏览记录，并对访客会话执行 upsert。
// path 与 sessionID 为必填；两次写入彼此独立，访客计数由存储层的
// 原子自增表达式保证并发正确。
func (s *AnalyticsService) RecordView(path, sessionID, userAgent, referrer string, now time.Time) error {
	path = strings.TrimSpace(path)
	sessionID = strings.TrimSpace(sessionID)
	if path == "" {
		return fmt.Errorf("%w: path is required", ErrAnalyticsInvalidInput)
	}
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", ErrAnalyticsInvalidInput)
	}

	view := db.PageView{
		Path:      path,
		UserAgent: userAgent,
		Referrer:  referrer,
		CreatedAt: now,
	}
	if err := s.db.Create(&view).Error; err != nil {
		return fmt.Errorf("record page view: %w", err)
	}

	visitor := db.Visitor{
		SessionID:  sessionID,
		FirstVisit: now,
		LastVisit:  now,
		PageViews:  1,
		UserAgent:  userAgent,
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_visit": now,
			"page_views": gorm.Expr("page_views + 1"),
			"updated_at": now,
		}),
	}).Create(&visitor).Error; err != nil {
		return fmt.Errorf("upsert visitor: %w", err)
	}

	return nil
}

// RecentPageView 描述面板上展示的近期访问记录
type RecentPageView struct {
	Path      string    `json:"path"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnalyticsSummary 汇总面板首屏需要的统计数据
type AnalyticsSummary struct {
	TotalVisitors  int64            `json:"totalVisitors"`
	TotalPageViews int64            `json:"totalPageViews"`
	RecentActivity []RecentPageView `json:"recentActivity"`
}

// Summary 返回访客总数、浏览总数与最近的访问记录（新到旧）。
// 任何存储故障都降级为零值结果，面板永远可渲染。
func (s *AnalyticsService) Summary(recentLimit int) AnalyticsSummary {
	if recentLimit <= 0 {
		recentLimit = defaultRecentActivityLimit
	}

	summary := AnalyticsSummary{RecentActivity: []RecentPageView{}}

	if err := s.db.Model(&db.Visitor{}).Count(&summary.TotalVisitors).Error; err != nil {
		log.Printf("analytics summary: count visitors: %v", err)
		return AnalyticsSummary{RecentActivity: []RecentPageView{}}
	}

	if err := s.db.Model(&db.PageView{}).Count(&summary.TotalPageViews).Error; err != nil {
		log.Printf("analytics summary: count page views: %v", err)
		return AnalyticsSummary{RecentActivity: []RecentPageView{}}
	}

	var recent []RecentPageView
	if err := s.db.Model(&db.PageView{}).
		Select("path, user_agent, created_at").
		Order("created_at DESC, id DESC").
		Limit(recentLimit).
		Scan(&recent).Error; err != nil {
		log.Printf("analytics summary: recent activity: %v", err)
		return AnalyticsSummary{RecentActivity: []RecentPageView{}}
	}
	if recent != nil {
		summary.RecentActivity = recent
	}

	return summary
}

// PageStat 描述单一路径的累计浏览数
type PageStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// TopPages 返回浏览数最高的路径，按精确路径分组不做归一化。
// 同数时按路径字典序升序，保证结果确定。存储故障降级为空列表。
func (s *AnalyticsService) TopPages(limit int) []PageStat {
	if limit <= 0 {
		limit = defaultRecentActivityLimit
	}

	var stats []PageStat
	if err := s.db.Model(&db.PageView{}).
		Select("path, COUNT(*) AS views").
		Group("path").
		Order("views DESC, path ASC").
		Limit(limit).
		Scan(&stats).Error; err != nil {
		log.Printf("analytics top pages: %v", err)
		return []PageStat{}
	}

	if stats == nil {
		stats = []PageStat{}
	}
	return stats
}

// VisitorTrend 描述单日的新增访客数
type VisitorTrend struct {
	Date     string `json:"date"`
	Visitors int    `json:"visitors"`
}

// VisitorTrends 统计最近 N 天每天的新增访客数，按日期升序。
// 存储故障降级为空列表。
func (s *AnalyticsService) VisitorTrends(days int, now time.Time) []VisitorTrend {
	if days <= 0 {
		days = 7
	}
	start := now.AddDate(0, 0, -days)

	var visitors []db.Visitor
	if err := s.db.Select("first_visit").
		Where("first_visit >= ?", start).
		Find(&visitors).Error; err != nil {
		log.Printf("analytics visitor trends: %v", err)
		return []VisitorTrend{}
	}

	counts := make(map[string]int, len(visitors))
	for _, visitor := range visitors {
		date := visitor.FirstVisit.UTC().Format("2006-01-02")
		counts[date]++
	}

	trends := make([]VisitorTrend, 0, len(counts))
	for date, count := range counts {
		trends = append(trends, VisitorTrend{Date: date, Visitors: count})
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Date < trends[j].Date
	})

	return trends
}

// Reset 清空全部统计数据，供后台的重置操作使用
func (s *AnalyticsService) Reset() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM page_views").Error; err != nil {
			return fmt.Errorf("reset page views: %w", err)
		}
		if err := tx.Exec("DELETE FROM visitors").Error; err != nil {
			return fmt.Errorf("reset visitors: %w", err)
		}
		return nil
	})
}
