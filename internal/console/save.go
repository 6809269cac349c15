package console

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"productos-admin/internal/models"
	"productos-admin/internal/telemetry"
)

// SaveProducto submits the form: PUT to the per-id endpoint when the hidden id
// is set, POST to the collection otherwise. On success the form is reset, the
// server message is shown and the table is re-rendered.
func (c *Console) SaveProducto(ctx context.Context, fields FieldResolver, table TableView) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "console.SaveProducto")
	defer telemetry.EndSpan(span, &err)

	form, err := ResolveForm(fields)
	if err != nil {
		c.wiringFault(ctx, "SaveProducto", err)
		return err
	}

	in := form.Input()
	if c.validate.Struct(in) != nil {
		c.notify.Notify(Notice{Level: LevelError, Title: titleError, Text: textIncomplete})
		return ErrIncomplete
	}

	mode := form.Mode()
	span.SetAttributes(attribute.String("form.mode", mode.String()))
	c.logger.DebugContext(ctx, "Producto data", slog.String("mode", mode.String()), slog.Any("producto", in))

	var res *models.Result
	if mode == ModeEdit {
		res, err = c.api.UpdateProducto(ctx, form.ID(), in)
	} else {
		res, err = c.api.CreateProducto(ctx, in)
	}
	if err != nil {
		c.report(ctx, "SaveProducto", err)
		return err
	}

	form.Reset()
	c.notify.Notify(Notice{Level: LevelSuccess, Title: titleSuccess, Text: res.Message})
	c.logger.InfoContext(ctx, "Producto saved", slog.String("mode", mode.String()))

	// A failed refresh is already reported; the save itself went through.
	_ = c.ShowProductos(ctx, table)
	return nil
}
