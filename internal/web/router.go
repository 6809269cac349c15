package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"productos-admin/internal/views"
)

var funcMap = template.FuncMap{
	"field": func(form map[string]string, id string) string { return form[id] },
}

// NewRouter wires routes, sessions and templates. The save button posts to
// /productos; the initial list render happens on GET /.
func NewRouter(sessionSecret string, h *Handler, logger *slog.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("productos_session", store))

	tmpl, err := views.Templates(funcMap)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", views.Static())

	r.GET("/health", h.Health)
	r.GET("/", h.Index)
	r.POST("/productos", h.Save)
	r.GET("/productos/:id/edit", h.Edit)
	r.GET("/productos/:id/delete", h.ConfirmDelete)
	r.POST("/productos/:id/delete", h.Delete)

	return r, nil
}
