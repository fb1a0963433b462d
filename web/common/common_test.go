package common

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type signUp struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Hours    int    `json:"hours"`
}

func bindError(t *testing.T, body string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var req signUp
	return FormatBindingError(c.ShouldBindJSON(&req))
}

func TestFormatBindingError(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty body", body: "", want: "request body is empty"},
		{name: "syntax", body: `{"email":`, want: "invalid JSON"},
		{name: "type", body: `{"email":"a@b.co","password":"secret1","hours":"8"}`, want: "hours must be of type int"},
		{name: "required", body: `{"password":"secret1"}`, want: "email is required"},
		{name: "email", body: `{"email":"nope","password":"secret1"}`, want: "email must be a valid email"},
		{name: "short password", body: `{"email":"a@b.co","password":"abc"}`, want: "password must be at least 6 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, bindError(t, tt.body), tt.want)
		})
	}
	assert.Empty(t, FormatBindingError(nil))
}

func TestSearchResponseEncodesEmptyList(t *testing.T) {
	var none []string
	b, err := json.Marshal(NewSearchResponse(none))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"pagination":{"total":0}}`, string(b))

	b, err = json.Marshal(NewSearchResponse([]string{"a", "b"}))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"data":["a","b"],"pagination":{"total":2}}`, string(b))
}
