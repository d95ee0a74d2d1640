package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// 统一的登录失败提示，不暴露用户是否存在
const invalidCredentialsMessage = "invalid email or password"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login 处理管理员登录请求
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "email and password are required") {
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	// 查找用户；未找到与密码错误返回同一提示
	var user db.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, invalidCredentialsMessage)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, invalidCredentialsMessage)
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("user_email", user.Email)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout 处理管理员登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Printf("logout: save session: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AuthRequired 是后台路由的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

type setupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SetupStatus 报告是否仍需初始化管理员
func (a *API) SetupStatus(c *gin.Context) {
	var userCount int64
	if err := a.db.Model(&db.User{}).Count(&userCount).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"setupRequired": true, "error": "could not check user count"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"setupRequired": userCount == 0, "userCount": userCount})
}

// Setup 一次性创建管理员账号，已存在任何用户时禁用
func (a *API) Setup(c *gin.Context) {
	var userCount int64
	if err := a.db.Model(&db.User{}).Count(&userCount).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to check existing users")
		return
	}
	if userCount > 0 {
		respondError(c, http.StatusForbidden, "admin user already exists, this endpoint is disabled")
		return
	}

	var req setupRequest
	if !bindJSON(c, &req, "email and password are required") {
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || len(req.Password) < 6 {
		respondError(c, http.StatusBadRequest, "email and password (min 6 characters) are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Admin"
	}

	user := db.User{Name: name, Email: email, Password: string(hashed)}
	if err := a.db.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create admin user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "admin user created successfully",
		"user":    gin.H{"email": user.Email, "name": user.Name},
	})
}
