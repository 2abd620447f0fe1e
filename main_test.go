package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := CreateServer([]string{"http://localhost:5173"})

	testCases := []struct {
		desc           string
		path           string
		origin         string
		expectedStatus int
	}{
		{
			desc:           "health endpoint is open",
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			desc:           "allowed origin passes",
			path:           "/nothing-here",
			origin:         "http://localhost:5173",
			expectedStatus: http.StatusNotFound,
		},
		{
			desc:           "missing origin passes",
			path:           "/nothing-here",
			expectedStatus: http.StatusNotFound,
		},
		{
			desc:           "unknown origin is rejected",
			path:           "/nothing-here",
			origin:         "http://evil.example",
			expectedStatus: http.StatusForbidden,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tC.path, nil)
			if tC.origin != "" {
				req.Header.Set("Origin", tC.origin)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tC.expectedStatus, w.Code)
		})
	}
}
