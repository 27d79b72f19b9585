package main

import (
	"bytes"
	"net/http"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Site serves the rendered page. Everything it hands out is derived from the
// composer's document, so handlers share it without locking.
type Site struct {
	composer  *PageComposer
	html      HTMLBackend
	json      JSONBackend
	staticDir string
}

func NewSite(composer *PageComposer, staticDir string) *Site {
	return &Site{
		composer:  composer,
		html:      NewHTMLBackend(),
		json:      JSONBackend{},
		staticDir: staticDir,
	}
}

// Router builds the gin engine with middleware and every route.
func (s *Site) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog())
	s.setupRoutes(r)
	return r
}

func (s *Site) setupRoutes(r *gin.Engine) {
	r.Static("/static", s.staticDir)

	// CV download. A missing file is a plain 404.
	if name, ok := cvFileName(s.composer.Content().Profile.CVPath); ok {
		r.StaticFile("/"+name, filepath.Join(s.staticDir, name))
	}

	r.GET("/", func(c *gin.Context) {
		s.serveWith(c, s.html)
	})
	r.GET("/sections/:kind", s.serveSection)

	api := r.Group("/api")
	api.GET("/page", func(c *gin.Context) {
		s.serveWith(c, s.json)
	})
	api.GET("/content", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.composer.Content())
	})
	api.GET("/projects", func(c *gin.Context) {
		projects := s.composer.Content().Projects
		if projects == nil {
			projects = []Project{}
		}
		c.JSON(http.StatusOK, projects)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// cvFileName returns the file name of a CV served from the site root, like
// "/my_cv.pdf". Anything else is not served or exported.
func cvFileName(cvPath string) (string, bool) {
	if !path.IsAbs(cvPath) || path.Dir(cvPath) != "/" {
		return "", false
	}
	switch name := path.Base(cvPath); name {
	case "/", ".", "..":
		return "", false
	default:
		return name, true
	}
}

// serveWith composes the page and writes it through the given backend.
func (s *Site) serveWith(c *gin.Context, backend Backend) {
	var buf bytes.Buffer
	if err := backend.Render(c.Request.Context(), &buf, s.composer.Compose()); err != nil {
		log.Error().Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("backend", backend.Name()).
			Msg("render page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render page"})
		return
	}
	c.Data(http.StatusOK, backend.ContentType(), buf.Bytes())
}

// serveSection returns one section as an HTML fragment for partial swaps.
func (s *Site) serveSection(c *gin.Context) {
	kind := SectionKind(c.Param("kind"))
	section, ok := s.composer.Section(kind)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	var buf bytes.Buffer
	if err := s.html.Section(section).Render(c.Request.Context(), &buf); err != nil {
		log.Error().Err(err).Str("section", string(kind)).Msg("render section")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render section"})
		return
	}
	c.Data(http.StatusOK, s.html.ContentType(), buf.Bytes())
}
