package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// parseDate 接受 "2006-01-02" 或 RFC3339 两种格式
func parseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse("2006-01-02", trimmed); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", raw)
}

func parseOptionalDate(raw string) (*time.Time, error) {
	parsed, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	if parsed.IsZero() {
		return nil, nil
	}
	return &parsed, nil
}

type experienceRequest struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (r experienceRequest) toInput() (service.ExperienceInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return service.ExperienceInput{}, err
	}
	end, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return service.ExperienceInput{}, err
	}
	return service.ExperienceInput{
		Position:    r.Position,
		Company:     r.Company,
		Location:    r.Location,
		StartDate:   start,
		EndDate:     end,
		Current:     r.Current,
		Description: r.Description,
	}, nil
}

// GetExperiences 返回工作经历列表
func (a *API) GetExperiences(c *gin.Context) {
	items, err := a.experiences.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list experiences")
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiences": items})
}

// CreateExperience 新建工作经历
func (a *API) CreateExperience(c *gin.Context) {
	var req experienceRequest
	if !bindJSON(c, &req, "invalid experience payload") {
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	exp, err := a.experiences.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrExperienceInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create experience")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"experience": exp})
}

// UpdateExperience 更新工作经历
func (a *API) UpdateExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req experienceRequest
	if !bindJSON(c, &req, "invalid experience payload") {
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	exp, err := a.experiences.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExperienceNotFound):
			respondError(c, http.StatusNotFound, "experience not found")
		case errors.Is(err, service.ErrExperienceInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update experience")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"experience": exp})
}

// DeleteExperience 删除工作经历
func (a *API) DeleteExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.experiences.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type educationRequest struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (r educationRequest) toInput() (service.EducationInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return service.EducationInput{}, err
	}
	end, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return service.EducationInput{}, err
	}
	return service.EducationInput{
		Institution: r.Institution,
		Degree:      r.Degree,
		Field:       r.Field,
		Location:    r.Location,
		StartDate:   start,
		EndDate:     end,
		Current:     r.Current,
		Description: r.Description,
	}, nil
}

// GetEducations 返回教育经历列表
func (a *API) GetEducations(c *gin.Context) {
	items, err := a.educations.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list educations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"educations": items})
}

// CreateEducation 新建教育经历
func (a *API) CreateEducation(c *gin.Context) {
	var req educationRequest
	if !bindJSON(c, &req, "invalid education payload") {
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	edu, err := a.educations.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrEducationInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create education")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"education": edu})
}

// UpdateEducation 更新教育经历
func (a *API) UpdateEducation(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req educationRequest
	if !bindJSON(c, &req, "invalid education payload") {
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	edu, err := a.educations.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEducationNotFound):
			respondError(c, http.StatusNotFound, "education not found")
		case errors.Is(err, service.ErrEducationInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update education")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"education": edu})
}

// DeleteEducation 删除教育经历
func (a *API) DeleteEducation(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.educations.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete education")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type cvProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	LiveLink     string   `json:"liveLink"`
	GitHubLink   string   `json:"githubLink"`
	Sort         *int     `json:"order"`
}

// GetCVProjects 返回简历项目列表
func (a *API) GetCVProjects(c *gin.Context) {
	items, err := a.cvProjects.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list cv projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cvProjects": items})
}

// CreateCVProject 新建简历项目
func (a *API) CreateCVProject(c *gin.Context) {
	var req cvProjectRequest
	if !bindJSON(c, &req, "invalid cv project payload") {
		return
	}

	project, err := a.cvProjects.Create(service.CVProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		LiveLink:     req.LiveLink,
		GitHubLink:   req.GitHubLink,
		Sort:         req.Sort,
	})
	if err != nil {
		if errors.Is(err, service.ErrCVProjectInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create cv project")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cvProject": project})
}

// UpdateCVProject 更新简历项目
func (a *API) UpdateCVProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req cvProjectRequest
	if !bindJSON(c, &req, "invalid cv project payload") {
		return
	}

	project, err := a.cvProjects.Update(id, service.CVProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		LiveLink:     req.LiveLink,
		GitHubLink:   req.GitHubLink,
		Sort:         req.Sort,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCVProjectNotFound):
			respondError(c, http.StatusNotFound, "cv project not found")
		case errors.Is(err, service.ErrCVProjectInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update cv project")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"cvProject": project})
}

// DeleteCVProject 删除简历项目
func (a *API) DeleteCVProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.cvProjects.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete cv project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type profileRequest struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	CVSummary string `json:"cvSummary"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Website   string `json:"website"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Telegram  string `json:"telegram"`
	AvatarURL string `json:"avatarUrl"`
}

// GetProfile 返回个人信息，未创建时返回空对象
func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.profiles.Get()
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusOK, gin.H{"profile": nil})
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile 更新个人信息，不存在时创建
func (a *API) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if !bindJSON(c, &req, "invalid profile payload") {
		return
	}

	profile, err := a.profiles.Upsert(service.ProfileInput{
		Name:      req.Name,
		Title:     req.Title,
		Bio:       req.Bio,
		CVSummary: req.CVSummary,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
		Website:   req.Website,
		GitHub:    req.GitHub,
		LinkedIn:  req.LinkedIn,
		Telegram:  req.Telegram,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
