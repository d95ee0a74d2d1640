package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type skillRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Sort *int   `json:"order"`
}

// GetSkills 返回后台技能列表
func (a *API) GetSkills(c *gin.Context) {
	skills, err := a.skills.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list skills")
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// GetSkill 返回单个技能
func (a *API) GetSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	skill, err := a.skills.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			respondError(c, http.StatusNotFound, "skill not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load skill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"skill": skill})
}

// CreateSkill 新建技能
func (a *API) CreateSkill(c *gin.Context) {
	var req skillRequest
	if !bindJSON(c, &req, "invalid skill payload") {
		return
	}

	skill, err := a.skills.Create(service.SkillInput{Name: req.Name, Icon: req.Icon, Sort: req.Sort})
	if err != nil {
		if errors.Is(err, service.ErrSkillInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create skill")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"skill": skill})
}

// UpdateSkill 更新技能
func (a *API) UpdateSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req skillRequest
	if !bindJSON(c, &req, "invalid skill payload") {
		return
	}

	skill, err := a.skills.Update(id, service.SkillInput{Name: req.Name, Icon: req.Icon, Sort: req.Sort})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSkillNotFound):
			respondError(c, http.StatusNotFound, "skill not found")
		case errors.Is(err, service.ErrSkillInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update skill")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"skill": skill})
}

// DeleteSkill 删除技能
func (a *API) DeleteSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.skills.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete skill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReorderSkills 重排技能顺序
func (a *API) ReorderSkills(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "invalid reorder payload") {
		return
	}

	if err := a.skills.Reorder(req.IDs); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to reorder skills")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
