package console

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"productos-admin/internal/api"
)

var (
	// ErrIncomplete is returned when a required form value is empty; nothing was sent.
	ErrIncomplete = errors.New("console: form has empty required fields")
	// ErrDeclined is returned when the operator did not confirm a delete.
	ErrDeclined = errors.New("console: delete not confirmed")
)

// Dialog texts shown to the operator.
const (
	titleError     = "Error!"
	titleSuccess   = "Exito!"
	textIncomplete = "Por favor completa todos los campos."
)

// DeletePrompt is the question asked before every delete.
var DeletePrompt = Prompt{Title: "Esta seguro de eliminar el producto?", ConfirmText: "Eliminar"}

// Console holds the list renderer, the form submitter and the row actions.
// It keeps no view state of its own: every call is handed the table and form
// it should work on.
type Console struct {
	api      ProductAPI
	notify   Notifier
	logger   *slog.Logger
	validate *validator.Validate
}

func New(client ProductAPI, notify Notifier, logger *slog.Logger) *Console {
	return &Console{
		api:      client,
		notify:   notify,
		logger:   logger,
		validate: validator.New(),
	}
}

// WithNotifier returns a copy of c that reports to n. The web layer builds one
// per request so notices land on that request's page.
func (c *Console) WithNotifier(n Notifier) *Console {
	cp := *c
	cp.notify = n
	return &cp
}

// report logs a failed API call and raises the error alert.
func (c *Console) report(ctx context.Context, op string, err error) {
	attrs := []any{slog.String("operation", op), slog.Any("error", err)}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		attrs = append(attrs, slog.String("code", apiErr.Code()), slog.String("kind", string(apiErr.Kind)))
	}
	c.logger.ErrorContext(ctx, "Fetch error", attrs...)
	c.notify.Alert("An error occurred: " + err.Error())
}

func (c *Console) wiringFault(ctx context.Context, op string, err error) {
	c.logger.ErrorContext(ctx, "Form fields missing from page",
		slog.String("operation", op),
		slog.Any("error", err))
}
