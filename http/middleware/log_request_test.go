package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/middleware"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name     string
		target   string
		ip       string
		info     any
		expected string
	}{
		{
			"Zero-Value",
			"https://example.com/",
			"",
			nil,
			"INFO GET /",
		},
		{
			"With-IP",
			"https://example.com/",
			"1.1.1.1",
			nil,
			"INFO 1.1.1.1 GET /",
		},
		{
			"With-Query-Params",
			"https://example.com/hitting/the/trails?param=true",
			"1.1.1.1",
			nil,
			"INFO 1.1.1.1 GET /hitting/the/trails?param=true",
		},
		{
			"With-Query-Params-Hid",
			"https://example.com/?param=true&password=hunter2",
			"1.1.1.1",
			nil,
			"INFO 1.1.1.1 GET /?param=true&password=" + waypoint.LogMaskVal,
		},
		{
			"With-Subject",
			"https://example.com/",
			"1.1.1.1",
			map[string]any{"sub": "auth0|123"},
			"INFO 1.1.1.1 GET / sub=auth0|123",
		},
		{
			"With-Subjectless-Info",
			"https://example.com/",
			"1.1.1.1",
			map[string]any{"iss": "my-issuer"},
			"INFO 1.1.1.1 GET /",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			tl := new(testLogger)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			if tc.ip != "" {
				r = r.Clone(context.WithValue(r.Context(), waypoint.IpAddrKey, tc.ip))
			}

			if tc.info != nil {
				r = r.Clone(waypoint.NewContext(r.Context(), waypoint.New(tc.info)))
			}

			// Act
			middleware.LogRequest(tl)(teapotHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, []string{tc.expected}, tl.recorded())
			require.Equal(t, http.StatusTeapot, w.Code)
		})
	}
}
