package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func loginRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	Login()(c)
	return w
}

func TestLoginRejectsMissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"email":"guest@example.com"}`},
		{"missing email", `{"password":"secret123"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := loginRequest(t, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
