package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHandlerTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Profile{}, &db.Project{}, &db.Skill{},
		&db.Experience{}, &db.Education{}, &db.CVProject{}, &db.PageView{}, &db.Visitor{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func newTestRouter(gdb *gorm.DB) (*gin.Engine, *API) {
	gin.SetMode(gin.TestMode)

	api := NewAPI(gdb, config.AppConfig{})

	router := gin.New()
	router.Use(sessions.Sessions("devfolio_session", cookie.NewStore([]byte("test-secret"))))

	router.POST("/admin/login", api.Login)
	router.GET("/admin/logout", api.Logout)
	router.GET("/api/setup", api.SetupStatus)
	router.POST("/api/setup", api.Setup)

	protected := router.Group("/admin/api", AuthRequired())
	protected.GET("/profile", api.GetProfile)

	return router, api
}

func createTestUser(t *testing.T, gdb *gorm.DB, email, password string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := db.User{Name: "Admin", Email: email, Password: string(hashed)}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
}

func postJSON(router *gin.Engine, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		request.AddCookie(c)
	}
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestLoginUniformErrorMessage(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()

	createTestUser(t, gdb, "admin@example.com", "correct-password")
	router, _ := newTestRouter(gdb)

	wrongPassword := postJSON(router, "/admin/login", `{"email":"admin@example.com","password":"wrong"}`, nil)
	unknownEmail := postJSON(router, "/admin/login", `{"email":"nobody@example.com","password":"wrong"}`, nil)

	if wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", wrongPassword.Code)
	}
	if unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", unknownEmail.Code)
	}

	// 两种失败返回完全相同的响应体，不暴露账号是否存在
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("expected identical error bodies, got %q vs %q", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestLoginGrantsSessionAccess(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()

	createTestUser(t, gdb, "admin@example.com", "correct-password")
	router, _ := newTestRouter(gdb)

	// 未登录时受保护路由拒绝访问
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/api/profile", nil)
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", recorder.Code)
	}

	login := postJSON(router, "/admin/login", `{"email":"admin@example.com","password":"correct-password"}`, nil)
	if login.Code != http.StatusOK {
		t.Fatalf("expected login 200, got %d: %s", login.Code, login.Body.String())
	}

	cookies := login.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie after login")
	}

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodGet, "/admin/api/profile", nil)
	for _, c := range cookies {
		request.AddCookie(c)
	}
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 with session, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestSetupCreatesFirstAdminOnly(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()

	router, _ := newTestRouter(gdb)

	// 初始状态需要初始化
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/setup", nil)
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected setup status 200, got %d", recorder.Code)
	}
	var status map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &status); err != nil {
		t.Fatalf("failed to parse setup status: %v", err)
	}
	if status["setupRequired"] != true {
		t.Fatalf("expected setupRequired=true, got %v", status["setupRequired"])
	}

	first := postJSON(router, "/api/setup", `{"name":"Alice","email":"alice@example.com","password":"secret123"}`, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("expected first setup 200, got %d: %s", first.Code, first.Body.String())
	}

	// 存在用户后端点被禁用
	second := postJSON(router, "/api/setup", `{"email":"mallory@example.com","password":"secret123"}`, nil)
	if second.Code != http.StatusForbidden {
		t.Fatalf("expected second setup 403, got %d", second.Code)
	}

	var userCount int64
	if err := gdb.Model(&db.User{}).Count(&userCount).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if userCount != 1 {
		t.Fatalf("expected exactly 1 user, got %d", userCount)
	}
}

func TestSetupRejectsShortPassword(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()

	router, _ := newTestRouter(gdb)

	recorder := postJSON(router, "/api/setup", `{"email":"alice@example.com","password":"123"}`, nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %d", recorder.Code)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()

	createTestUser(t, gdb, "admin@example.com", "correct-password")
	router, _ := newTestRouter(gdb)

	login := postJSON(router, "/admin/login", `{"email":"admin@example.com","password":"correct-password"}`, nil)
	cookies := login.Result().Cookies()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	for _, c := range cookies {
		request.AddCookie(c)
	}
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected logout 200, got %d", recorder.Code)
	}

	// 登出后的会话 cookie 不再有效
	recorder2 := httptest.NewRecorder()
	request2 := httptest.NewRequest(http.MethodGet, "/admin/api/profile", nil)
	for _, c := range recorder.Result().Cookies() {
		request2.AddCookie(c)
	}
	router.ServeHTTP(recorder2, request2)
	if recorder2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", recorder2.Code)
	}
}
