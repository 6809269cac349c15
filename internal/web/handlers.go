package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"productos-admin/internal/api"
	"productos-admin/internal/console"
)

type Handler struct {
	console *console.Console
	logger  *slog.Logger
}

func NewHandler(c *console.Console, logger *slog.Logger) *Handler {
	return &Handler{console: c, logger: logger}
}

// statusFor maps a console outcome to the response status.
func statusFor(err error) int {
	var missing *console.MissingFieldsError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.Is(err, console.ErrIncomplete):
		return http.StatusUnprocessableEntity
	case api.KindOf(err) != "":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) render(c *gin.Context, status int, p *page) {
	c.HTML(status, "index.tmpl", p.viewData())
}

// fillTable loads the list for display after an action that did not refresh
// it. Failures are logged only; the action already reported its own outcome.
func (h *Handler) fillTable(ctx context.Context, p *page) {
	_ = h.console.WithNotifier(NewLogNotifier(h.logger)).ShowProductos(ctx, p)
}

// Index is the page load: an empty form and one list render.
func (h *Handler) Index(c *gin.Context) {
	p := newPage()
	err := h.console.WithNotifier(p).ShowProductos(c.Request.Context(), p)
	if api.KindOf(err) == api.KindShape {
		// Logged by the console; the page still renders.
		err = nil
	}
	h.render(c, statusFor(err), p)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Save handles the form submit (the save button).
func (h *Handler) Save(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}
	ctx := c.Request.Context()
	p := pageFromForm(c.Request.PostForm)

	err := h.console.WithNotifier(p).SaveProducto(ctx, p, p)
	var missing *console.MissingFieldsError
	if errors.As(err, &missing) {
		c.String(http.StatusBadRequest, "%s", err.Error())
		return
	}
	switch {
	case errors.Is(err, console.ErrIncomplete):
		// Nothing may reach the API for an incomplete form, not even the list.
		p.stale = true
	case err != nil:
		h.fillTable(ctx, p)
	}
	h.render(c, statusFor(err), p)
}

// Edit loads one product into the form.
func (h *Handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	p := newPage()

	err := h.console.WithNotifier(p).LoadProducto(ctx, c.Param("id"), p)
	h.fillTable(ctx, p)
	h.render(c, statusFor(err), p)
}

// ConfirmDelete opens the confirmation dialog for one product.
func (h *Handler) ConfirmDelete(c *gin.Context) {
	id := c.Param("id")
	if err := rememberPendingDelete(c, id); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "Failed to save session", slog.Any("error", err))
		c.String(http.StatusInternalServerError, "session error")
		return
	}

	p := newPage()
	p.confirm = &confirmDialog{
		Title:       console.DeletePrompt.Title,
		ConfirmText: console.DeletePrompt.ConfirmText,
		Action:      "/productos/" + id + "/delete",
	}
	h.fillTable(c.Request.Context(), p)
	h.render(c, http.StatusOK, p)
}

// Delete runs the delete once the dialog was answered.
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	p := newPage()

	err := h.console.WithNotifier(p).DeleteProducto(ctx, id, sessionConfirmer{c: c, id: id}, p)
	if errors.Is(err, console.ErrDeclined) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if err != nil {
		h.fillTable(ctx, p)
	}
	h.render(c, statusFor(err), p)
}
