package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mikes-grill/api-gateway/internal/gateway"
	"mikes-grill/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func frontendDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>grill</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('grill')"), 0o644))
	return dir
}

func upstream(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_ProxiesToGrillService(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		wantURL string
	}{
		{"public menu", http.MethodGet, "/api/public/menu", "http://grill-svc/api/public/menu"},
		{"category filter with query", http.MethodGet, "/api/public/menu/category/Drinks?x=1", "http://grill-svc/api/public/menu/category/Drinks?x=1"},
		{"admin write", http.MethodPut, "/api/admin/hours", "http://grill-svc/api/admin/hours"},
		{"contact form", http.MethodPost, "/api/contact", "http://grill-svc/api/contact"},
		{"uploaded image", http.MethodGet, "/uploads/hero-1.png", "http://grill-svc/uploads/hero-1.png"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{GrillSvcURL: "http://grill-svc/"}, mockClient)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.URL.String() == testCase.wantURL && req.Method == testCase.method
			})).Return(upstream(http.StatusOK, `{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, strings.NewReader(`{}`))
			rr := httptest.NewRecorder()

			gw.SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_ForwardsSessionCookie(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{GrillSvcURL: "http://grill-svc"}, mockClient)

	resp := upstream(http.StatusOK, `{"message":"Login successful"}`)
	resp.Header.Add("Set-Cookie", "GRILL_SESSION=abc; Path=/; HttpOnly")
	mockClient.On("Do", mock.Anything).Return(resp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, "GRILL_SESSION=abc; Path=/; HttpOnly", rr.Header().Get("Set-Cookie"))

	mockClient2 := mocks.NewHTTPClient(t)
	gw2 := gateway.NewGateway(gateway.Config{GrillSvcURL: "http://grill-svc"}, mockClient2)
	mockClient2.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		cookie, err := req.Cookie("GRILL_SESSION")
		return err == nil && cookie.Value == "abc"
	})).Return(upstream(http.StatusOK, `[]`), nil).Once()

	req = httptest.NewRequest(http.MethodGet, "/api/admin/menu", nil)
	req.AddCookie(&http.Cookie{Name: "GRILL_SESSION", Value: "abc"})
	rr = httptest.NewRecorder()

	gw2.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_PassesUpstreamErrorsThrough(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{GrillSvcURL: "http://grill-svc"}, mockClient)
	mockClient.On("Do", mock.Anything).Return(upstream(http.StatusUnauthorized, `{"error":"Authentication required"}`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGateway_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{GrillSvcURL: "http://invalid"}, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/public/hours", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_SPARoutesServeIndex(t *testing.T) {
	dir := frontendDir(t)
	gw := gateway.NewGateway(gateway.Config{FrontendDir: dir}, nil)
	router := gw.SetupRoutes()

	for _, path := range []string{"/", "/menu", "/contact", "/admin", "/admin/menu", "/admin/hours"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), "<html>grill</html>")
		})
	}
}

func TestGateway_StaticAssets(t *testing.T) {
	dir := frontendDir(t)
	gw := gateway.NewGateway(gateway.Config{FrontendDir: dir}, nil)
	router := gw.SetupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "console.log")

	req = httptest.NewRequest(http.MethodGet, "/static/app.js", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/missing.css", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
