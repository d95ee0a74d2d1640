package cv

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/devfolio/internal/db"
)

// Document 是简历渲染所需的规范化数据模型。
// 日期统一转换为 ISO 字符串，描述文本在此处拆分为要点行。
type Document struct {
	Name      string
	Title     string
	Email     string
	Phone     string
	Location  string
	Summary   string
	AvatarURL string
	Website   string
	GitHub    string
	LinkedIn  string
	Telegram  string

	Skills      []string
	Projects    []ProjectEntry
	Experiences []ExperienceEntry
	Educations  []EducationEntry
}

// ProjectEntry 描述简历中的单个项目
type ProjectEntry struct {
	Title        string
	Technologies []string
	Bullets      []string
	LiveLink     string
	GitHubLink   string
}

// ExperienceEntry 描述简历中的单段工作经历
type ExperienceEntry struct {
	Position  string
	Company   string
	Location  string
	StartDate string
	EndDate   string
	Current   bool
	Bullets   []string
}

// EducationEntry 描述简历侧栏中的单段教育经历
type EducationEntry struct {
	Institution string
	Degree      string
	Field       string
	Location    string
	StartDate   string
	EndDate     string
	Current     bool
}

// HasSocial 判断是否需要渲染社交链接区块
func (d Document) HasSocial() bool {
	return d.LinkedIn != "" || d.GitHub != "" || d.Telegram != ""
}

// Build 将各实体集合组装为规范化的简历文档。
// profile 可以为 nil，缺失的可选字段一律渲染为空串。
func Build(profile *db.Profile, skills []db.Skill, projects []db.CVProject,
	experiences []db.Experience, educations []db.Education) Document {

	doc := Document{
		Skills:      make([]string, 0, len(skills)),
		Projects:    make([]ProjectEntry, 0, len(projects)),
		Experiences: make([]ExperienceEntry, 0, len(experiences)),
		Educations:  make([]EducationEntry, 0, len(educations)),
	}

	if profile != nil {
		doc.Name = profile.Name
		doc.Title = profile.Title
		doc.Email = profile.Email
		doc.Phone = profile.Phone
		doc.Location = profile.Location
		doc.Website = profile.Website
		doc.GitHub = profile.GitHub
		doc.LinkedIn = profile.LinkedIn
		doc.Telegram = profile.Telegram
		doc.AvatarURL = sanitizeAvatarURL(profile.AvatarURL)

		doc.Summary = profile.CVSummary
		if strings.TrimSpace(doc.Summary) == "" {
			doc.Summary = profile.Bio
		}
	}

	for _, skill := range skills {
		doc.Skills = append(doc.Skills, skill.Name)
	}

	for _, project := range projects {
		doc.Projects = append(doc.Projects, ProjectEntry{
			Title:        project.Title,
			Technologies: project.Technologies,
			Bullets:      SplitBullets(project.Description),
			LiveLink:     project.LiveLink,
			GitHubLink:   project.GitHubLink,
		})
	}

	for _, exp := range experiences {
		doc.Experiences = append(doc.Experiences, ExperienceEntry{
			Position:  exp.Position,
			Company:   exp.Company,
			Location:  exp.Location,
			StartDate: isoDate(exp.StartDate),
			EndDate:   isoDatePtr(exp.EndDate),
			Current:   exp.Current,
			Bullets:   SplitBullets(exp.Description),
		})
	}

	for _, edu := range educations {
		doc.Educations = append(doc.Educations, EducationEntry{
			Institution: edu.Institution,
			Degree:      edu.Degree,
			Field:       edu.Field,
			Location:    edu.Location,
			StartDate:   isoDate(edu.StartDate),
			EndDate:     isoDatePtr(edu.EndDate),
			Current:     edu.Current,
		})
	}

	return doc
}

// SplitBullets 将换行分隔的描述拆分为要点行，空行被丢弃
func SplitBullets(description string) []string {
	lines := strings.Split(description, "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		bullets = append(bullets, trimmed)
	}
	return bullets
}

// FormatMonthYear 将 ISO 日期渲染为 "Jan 2022" 形式，解析失败返回空串
func FormatMonthYear(iso string) string {
	parsed, ok := parseISO(iso)
	if !ok {
		return ""
	}
	return parsed.Format("Jan 2006")
}

// FormatYear 将 ISO 日期渲染为四位年份，解析失败返回空串
func FormatYear(iso string) string {
	parsed, ok := parseISO(iso)
	if !ok {
		return ""
	}
	return parsed.Format("2006")
}

// FormatDateRange 渲染月年粒度的起止区间，进行中或缺失结束时间时以 Present 收尾
func FormatDateRange(startISO, endISO string, current bool) string {
	start := FormatMonthYear(startISO)
	if current || strings.TrimSpace(endISO) == "" {
		return start + " - Present"
	}
	return start + " - " + FormatMonthYear(endISO)
}

// FormatYearRange 渲染教育侧栏使用的年份区间
func FormatYearRange(startISO, endISO string, current bool) string {
	start := FormatYear(startISO)
	if current || strings.TrimSpace(endISO) == "" {
		return start + " - Present"
	}
	return start + " - " + FormatYear(endISO)
}

func parseISO(iso string) (time.Time, bool) {
	trimmed := strings.TrimSpace(iso)
	if trimmed == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse("2006-01-02", trimmed); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func isoDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return isoDate(*t)
}

// sanitizeAvatarURL 校验头像地址，非法时按缺失处理并记录告警
func sanitizeAvatarURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		log.Printf("cv: invalid avatar url, falling back to none: %q", trimmed)
		return ""
	}
	return trimmed
}
