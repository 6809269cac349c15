package console

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"productos-admin/internal/telemetry"
)

// DeleteProducto removes a product after explicit confirmation, re-renders the
// table and then shows the server message.
func (c *Console) DeleteProducto(ctx context.Context, id string, confirm Confirmer, table TableView) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "console.DeleteProducto", attribute.String("producto.id", id))
	defer telemetry.EndSpan(span, &err)

	if !confirm.Confirm(ctx, DeletePrompt) {
		c.logger.DebugContext(ctx, "Delete not confirmed", slog.String("id", id))
		return ErrDeclined
	}

	res, err := c.api.DeleteProducto(ctx, id)
	if err != nil {
		c.report(ctx, "DeleteProducto", err)
		return err
	}
	c.logger.InfoContext(ctx, "Producto deleted", slog.String("id", id))

	_ = c.ShowProductos(ctx, table)
	c.notify.Notify(Notice{Level: LevelSuccess, Title: res.Message})
	return nil
}

// LoadProducto fetches one product and copies it into the form, which puts the
// form in Edit mode.
func (c *Console) LoadProducto(ctx context.Context, id string, fields FieldResolver) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "console.LoadProducto", attribute.String("producto.id", id))
	defer telemetry.EndSpan(span, &err)

	form, err := ResolveForm(fields)
	if err != nil {
		c.wiringFault(ctx, "LoadProducto", err)
		return err
	}

	p, err := c.api.GetProducto(ctx, id)
	if err != nil {
		c.report(ctx, "LoadProducto", err)
		return err
	}
	form.Load(*p)
	return nil
}
