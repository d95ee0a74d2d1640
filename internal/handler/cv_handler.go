package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/devfolio/internal/cv"
	"github.com/devfolio/internal/db"
	"github.com/gin-gonic/gin"
)

// 简历只收录前若干个作品集项目作为兜底
const cvFallbackProjectLimit = 5

// GenerateCV 汇集各实体数据并输出 PDF 简历。
// download=true 时以附件形式返回，否则内联展示。
func (a *API) GenerateCV(c *gin.Context) {
	var profile *db.Profile
	if loaded, err := a.profiles.Get(); err == nil {
		profile = loaded
	} else {
		log.Printf("generate cv: get profile: %v", err)
	}

	skills, err := a.skills.List()
	if err != nil {
		log.Printf("generate cv: list skills: %v", err)
	}

	experiences, err := a.experiences.List()
	if err != nil {
		log.Printf("generate cv: list experiences: %v", err)
	}

	educations, err := a.educations.List()
	if err != nil {
		log.Printf("generate cv: list educations: %v", err)
	}

	projects := a.resolveCVProjects()

	doc := cv.Build(profile, skills, projects, experiences, educations)

	pdfBytes, err := a.composer.Render(doc)
	if err != nil {
		log.Printf("generate cv: %v", err)
		respondError(c, http.StatusInternalServerError, "failed to generate cv")
		return
	}

	disposition := "inline"
	if c.Query("download") == "true" {
		disposition = fmt.Sprintf("attachment; filename=%q", cv.FileName(doc.Name))
	}

	c.Header("Content-Disposition", disposition)
	c.Header("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// resolveCVProjects 优先使用专门维护的简历项目，为空时回退到作品集前几项
func (a *API) resolveCVProjects() []db.CVProject {
	curated, err := a.cvProjects.List()
	if err != nil {
		log.Printf("generate cv: list cv projects: %v", err)
	}
	if len(curated) > 0 {
		return curated
	}

	portfolio, err := a.projects.List()
	if err != nil {
		log.Printf("generate cv: list projects: %v", err)
		return nil
	}
	if len(portfolio) > cvFallbackProjectLimit {
		portfolio = portfolio[:cvFallbackProjectLimit]
	}

	fallback := make([]db.CVProject, 0, len(portfolio))
	for _, project := range portfolio {
		fallback = append(fallback, db.CVProject{
			Title:        project.Title,
			Description:  project.Description,
			Technologies: project.Technologies,
			LiveLink:     project.LiveLink,
			GitHubLink:   project.GitHubLink,
			Sort:         project.Sort,
		})
	}
	return fallback
}
