package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	Technologies []string `json:"technologies"`
	LiveLink     string   `json:"liveLink"`
	RepoLink     string   `json:"repoLink"`
	GitHubLink   string   `json:"githubLink"`
	Sort         *int     `json:"order"`
}

func (r projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Technologies: r.Technologies,
		LiveLink:     r.LiveLink,
		RepoLink:     r.RepoLink,
		GitHubLink:   r.GitHubLink,
		Sort:         r.Sort,
	}
}

// GetProjects 返回后台项目列表
func (a *API) GetProjects(c *gin.Context) {
	projects, err := a.projects.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject 返回单个项目
func (a *API) GetProject(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// CreateProject 新建项目
func (a *API) CreateProject(c *gin.Context) {
	var req projectRequest
	if !bindJSON(c, &req, "invalid project payload") {
		return
	}

	project, err := a.projects.Create(req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrProjectInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create project")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// UpdateProject 更新项目
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req projectRequest
	if !bindJSON(c, &req, "invalid project payload") {
		return
	}

	project, err := a.projects.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			respondError(c, http.StatusNotFound, "project not found")
		case errors.Is(err, service.ErrProjectInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update project")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// DeleteProject 删除项目
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.projects.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type reorderRequest struct {
	IDs []uint `json:"ids"`
}

// ReorderProjects 重排项目顺序
func (a *API) ReorderProjects(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "invalid reorder payload") {
		return
	}

	if err := a.projects.Reorder(req.IDs); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to reorder projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
