package console

import (
	"context"
	"log/slog"

	"productos-admin/internal/api"
	"productos-admin/internal/telemetry"
)

// ShowProductos refetches the whole collection and rebuilds the table. On any
// failure the table is left exactly as it was.
func (c *Console) ShowProductos(ctx context.Context, table TableView) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "console.ShowProductos")
	defer telemetry.EndSpan(span, &err)

	productos, err := c.api.ListProductos(ctx)
	if err != nil {
		if api.KindOf(err) == api.KindShape {
			// The request itself worked, so no alert.
			c.logger.ErrorContext(ctx, "Expected an array but got something else", slog.Any("error", err))
			return err
		}
		c.report(ctx, "ShowProductos", err)
		return err
	}

	table.Clear()
	for _, p := range productos {
		table.Append(p)
	}
	c.logger.DebugContext(ctx, "Productos rendered", slog.Int("count", len(productos)))
	return nil
}
