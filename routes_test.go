package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, doc ContentDocument, staticDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	composer := NewPageComposer(doc, WithClock(fixedClock(2030)))
	return NewSite(composer, staticDir).Router()
}

func get(r http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServePage(t *testing.T) {
	r := newTestRouter(t, DefaultContent(), t.TempDir())

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "<!DOCTYPE html>"))
	assert.Contains(t, w.Body.String(), "© 2030 Hamed Sahebi. All rights reserved.")
}

func TestServeSectionFragment(t *testing.T) {
	r := newTestRouter(t, DefaultContent(), t.TempDir())

	w := get(r, "/sections/projects")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), `<section id="projects"`))
	assert.NotContains(t, w.Body.String(), "<!DOCTYPE html>")

	w = get(r, "/sections/sidebar")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Section not found"}`, w.Body.String())
}

func TestServePageJSON(t *testing.T) {
	r := newTestRouter(t, DefaultContent(), t.TempDir())

	w := get(r, "/api/page")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var page struct {
		Sections []struct {
			Kind SectionKind `json:"kind"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	var kinds []SectionKind
	for _, s := range page.Sections {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, SectionKinds(), kinds)
}

func TestServeContentAndProjects(t *testing.T) {
	r := newTestRouter(t, DefaultContent(), t.TempDir())

	w := get(r, "/api/content")
	require.Equal(t, http.StatusOK, w.Code)
	var doc ContentDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Hamed Sahebi", doc.Profile.Name)
	require.Len(t, doc.Achievements, 4)
	assert.Equal(t, IconRocket, doc.Achievements[0].Icon)

	w = get(r, "/api/projects")
	require.Equal(t, http.StatusOK, w.Code)
	var projects []Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	assert.Len(t, projects, 4)
}

func TestServeProjectsEmpty(t *testing.T) {
	r := newTestRouter(t, minimalDoc(), t.TempDir())

	w := get(r, "/api/projects")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, minimalDoc(), t.TempDir())

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(t, minimalDoc(), t.TempDir())

	w := get(r, "/health")
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w = get(r, "/health", requestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestServeStaticAssetsAndCV(t *testing.T) {
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "site.css"), []byte("body{}"), 0o644))
	r := newTestRouter(t, minimalDoc(), static)

	w := get(r, "/static/site.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())

	w = get(r, "/my_cv.pdf")
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, os.WriteFile(filepath.Join(static, "my_cv.pdf"), []byte("%PDF-1.4"), 0o644))
	w = get(r, "/my_cv.pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestCVFileName(t *testing.T) {
	tests := []struct {
		cvPath string
		want   string
		ok     bool
	}{
		{cvPath: "/my_cv.pdf", want: "my_cv.pdf", ok: true},
		{cvPath: "", ok: false},
		{cvPath: "/", ok: false},
		{cvPath: "/..", ok: false},
		{cvPath: "my_cv.pdf", ok: false},
		{cvPath: "/docs/my_cv.pdf", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.cvPath, func(t *testing.T) {
			got, ok := cvFileName(tt.cvPath)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouterWithRootCVPath(t *testing.T) {
	doc := minimalDoc()
	doc.Profile.CVPath = "/"

	var r *gin.Engine
	require.NotPanics(t, func() {
		r = newTestRouter(t, doc, t.TempDir())
	})
	w := get(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "<!DOCTYPE html>"))
}
