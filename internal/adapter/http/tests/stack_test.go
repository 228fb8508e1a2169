package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dontforgetsemicologne/task-flow/internal/adapter/db"
	apihttp "github.com/dontforgetsemicologne/task-flow/internal/adapter/http"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/handlers"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/middleware"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/routers"
	"github.com/dontforgetsemicologne/task-flow/internal/app/service"
	"github.com/dontforgetsemicologne/task-flow/pkg/apierrors"
)

// newStack wires the same graph as cmd/api on top of gdb.
func newStack(gdb *gorm.DB, sqlDB *sqlx.DB) *gin.Engine {
	userRepo := db.NewUserRepository(gdb)
	taskRepo := db.NewTaskRepository(gdb)
	commentRepo := db.NewCommentRepository(gdb)
	teamRepo := db.NewTeamRepository(gdb)
	tagRepo := db.NewTagRepository(gdb)

	appRouter := routers.NewAppRouter(
		service.NewUserService(userRepo, taskRepo, teamRepo),
		service.NewTaskService(taskRepo, commentRepo),
		service.NewTeamService(teamRepo),
		service.NewTagService(tagRepo, taskRepo),
	)

	engine := gin.New()
	engine.Use(middleware.RequestIDMiddleware())
	apihttp.RegisterRoutes(
		engine,
		handlers.NewHealthHandler(sqlDB, len(appRouter.Procedures())),
		handlers.NewProcedureHandler(appRouter),
	)
	return engine
}

func callQuery(engine *gin.Engine, name, input string) *httptest.ResponseRecorder {
	target := "/api/trpc/" + name
	if input != "" {
		target += "?input=" + url.QueryEscape(input)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func callMutation(engine *gin.Engine, name, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/trpc/"+name, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func resultOf[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var envelope struct {
		Result struct {
			Data T `json:"data"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Result.Data
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder, status int) apierrors.Err {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got.ErrDetails
}

func idsOf[T any](items []T, id func(T) uint64) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}
