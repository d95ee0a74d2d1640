package handler

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/devfolio/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown 将 Markdown 渲染为净化后的 HTML，失败时回退到原文
func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		log.Printf("render markdown: %v", err)
		return source
	}
	return sanitizer.Sanitize(buf.String())
}

// ShowHome 返回公共首页所需的数据，读取失败时降级为空集合
func (a *API) ShowHome(c *gin.Context) {
	payload := gin.H{
		"skills":   []skillViewModel{},
		"projects": []gin.H{},
	}

	if profile, err := a.profiles.Get(); err == nil {
		payload["profile"] = profileViewModel(profile)
	} else if !errors.Is(err, service.ErrProfileNotFound) {
		log.Printf("home: get profile: %v", err)
	}

	if skills, err := a.skills.List(); err == nil {
		payload["skills"] = buildSkillViewModels(skills)
	} else {
		log.Printf("home: list skills: %v", err)
	}

	if projects, err := a.projects.List(); err == nil {
		views := make([]gin.H, 0, len(projects))
		for _, project := range projects {
			views = append(views, projectViewModel(project, false))
		}
		payload["projects"] = views
	} else {
		log.Printf("home: list projects: %v", err)
	}

	c.JSON(http.StatusOK, payload)
}

// ListProjects 返回全部作品集项目，读取失败时降级为空列表
func (a *API) ListProjects(c *gin.Context) {
	projects, err := a.projects.List()
	if err != nil {
		log.Printf("list projects: %v", err)
		c.JSON(http.StatusOK, gin.H{"projects": []gin.H{}})
		return
	}

	views := make([]gin.H, 0, len(projects))
	for _, project := range projects {
		views = append(views, projectViewModel(project, false))
	}
	c.JSON(http.StatusOK, gin.H{"projects": views})
}

// ShowProject 返回项目详情并尽力累加浏览数
func (a *API) ShowProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	project, err := a.projects.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "project not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load project")
		return
	}

	// 浏览计数失败不阻断页面
	if err := a.projects.IncrementViews(id); err != nil {
		log.Printf("show project: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"project": projectViewModel(*project, true)})
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Contact 处理联系表单提交
func (a *API) Contact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req, "all fields are required") {
		return
	}

	msg := service.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := a.contact.Send(msg); err != nil {
		switch {
		case errors.Is(err, service.ErrContactInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrEmailNotConfigured):
			respondError(c, http.StatusServiceUnavailable, "contact form is temporarily unavailable")
		default:
			log.Printf("contact: %v", err)
			respondError(c, http.StatusInternalServerError, "failed to process your message")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent, thank you!"})
}

type trackRequest struct {
	Path      string `json:"path"`
	SessionID string `json:"sessionId"`
	UserAgent string `json:"userAgent"`
	Referrer  string `json:"referrer"`
}

// Track 记录一次页面浏览。除必填字段缺失外全部按尽力而为处理，
// 存储故障不影响调用方的页面渲染。
func (a *API) Track(c *gin.Context) {
	var req trackRequest
	if !bindJSON(c, &req, "missing required fields") {
		return
	}

	err := a.analytics.RecordView(req.Path, req.SessionID, req.UserAgent, req.Referrer, time.Now().UTC())
	if err != nil {
		if errors.Is(err, service.ErrAnalyticsInvalidInput) {
			respondError(c, http.StatusBadRequest, "missing required fields")
			return
		}
		log.Printf("analytics track: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListIcons 返回可选图标键，供前台/后台的选择器使用
func (a *API) ListIcons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"names":   view.SkillIconNames(),
		"options": view.SkillIconOptions(),
	})
}

type skillViewModel struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	SVG  string `json:"svg"`
}

// buildSkillViewModels 为每个技能解析图标，未知键回退到默认图形
func buildSkillViewModels(skills []db.Skill) []skillViewModel {
	views := make([]skillViewModel, 0, len(skills))
	for _, skill := range skills {
		svg, ok := view.ResolveSkillIcon(skill.Icon)
		if !ok {
			svg = view.DefaultSkillIconSVG()
		}
		views = append(views, skillViewModel{
			ID:   skill.ID,
			Name: skill.Name,
			Icon: skill.Icon,
			SVG:  svg,
		})
	}
	return views
}

func profileViewModel(profile *db.Profile) gin.H {
	return gin.H{
		"name":      profile.Name,
		"title":     profile.Title,
		"bio":       profile.Bio,
		"bioHtml":   renderMarkdown(profile.Bio),
		"email":     profile.Email,
		"location":  profile.Location,
		"website":   profile.Website,
		"github":    profile.GitHub,
		"linkedin":  profile.LinkedIn,
		"telegram":  profile.Telegram,
		"avatarUrl": profile.AvatarURL,
	}
}

func projectViewModel(project db.Project, withHTML bool) gin.H {
	viewModel := gin.H{
		"id":           project.ID,
		"title":        project.Title,
		"description":  project.Description,
		"imageUrl":     project.ImageURL,
		"technologies": []string(project.Technologies),
		"liveLink":     project.LiveLink,
		"repoLink":     project.RepoLink,
		"githubLink":   project.GitHubLink,
		"views":        project.Views,
		"order":        project.Sort,
	}
	if withHTML {
		viewModel["descriptionHtml"] = renderMarkdown(project.Description)
	}
	return viewModel
}
