package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMatchLanguage(t *testing.T) {
	cases := map[string]string{
		"":                        "en",
		"fr-FR,fr;q=0.9,en;q=0.8": "fr",
		"en-US":                   "en",
		"de-DE":                   "en",
		"not a header;;;":         "en",
	}

	for header, expected := range cases {
		assert.Equal(t, expected, matchLanguage(header), "header %q", header)
	}
}

func TestRequestIDAndLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(RequestIDMiddleware(), GinZapMiddleware(zap.New(core)))
	router.GET("/api/trpc/:procedure", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trpc/userRouter.getUsers", nil)
	router.ServeHTTP(rec, req)

	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, id, fields["request_id"])
	assert.Equal(t, "userRouter.getUsers", fields["procedure"])
	assert.Equal(t, int64(http.StatusNoContent), fields["status"])
}

func TestRequestID_KeepsCallerValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.NewString()

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	router.ServeHTTP(rec, req)

	assert.Equal(t, id, rec.Body.String())
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
}
