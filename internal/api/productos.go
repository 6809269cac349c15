package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel/attribute"

	"productos-admin/internal/models"
	"productos-admin/internal/telemetry"
)

const (
	collectionPath = "/api/productos"
	// POST goes to the collection with a trailing slash.
	createPath = "/api/productos/"
)

func itemPath(id string) string {
	return "/api/productos/" + url.PathEscape(id)
}

// ListProductos fetches the whole collection. A body that is valid JSON but
// not an array is reported as KindShape.
func (c *Client) ListProductos(ctx context.Context) (productos []models.Product, err error) {
	ctx, span := telemetry.StartSpan(ctx, "api.ListProductos")
	defer telemetry.EndSpan(span, &err)

	var raw json.RawMessage
	if err = c.FetchJSON(ctx, http.MethodGet, collectionPath, nil, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		err = &Error{Kind: KindShape, Method: http.MethodGet, URL: c.baseURL + collectionPath, Body: string(trimmed)}
		return nil, err
	}
	if err = json.Unmarshal(trimmed, &productos); err != nil {
		err = &Error{Kind: KindDecode, Method: http.MethodGet, URL: c.baseURL + collectionPath, Err: err}
		return nil, err
	}
	span.SetAttributes(attribute.Int("productos.count", len(productos)))
	return productos, nil
}

func (c *Client) GetProducto(ctx context.Context, id string) (p *models.Product, err error) {
	ctx, span := telemetry.StartSpan(ctx, "api.GetProducto", attribute.String("producto.id", id))
	defer telemetry.EndSpan(span, &err)

	p = &models.Product{}
	if err = c.FetchJSON(ctx, http.MethodGet, itemPath(id), nil, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) CreateProducto(ctx context.Context, in models.ProductInput) (res *models.Result, err error) {
	ctx, span := telemetry.StartSpan(ctx, "api.CreateProducto")
	defer telemetry.EndSpan(span, &err)

	res = &models.Result{}
	if err = c.FetchJSON(ctx, http.MethodPost, createPath, in, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) UpdateProducto(ctx context.Context, id string, in models.ProductInput) (res *models.Result, err error) {
	ctx, span := telemetry.StartSpan(ctx, "api.UpdateProducto", attribute.String("producto.id", id))
	defer telemetry.EndSpan(span, &err)

	res = &models.Result{}
	if err = c.FetchJSON(ctx, http.MethodPut, itemPath(id), in, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) DeleteProducto(ctx context.Context, id string) (res *models.Result, err error) {
	ctx, span := telemetry.StartSpan(ctx, "api.DeleteProducto", attribute.String("producto.id", id))
	defer telemetry.EndSpan(span, &err)

	res = &models.Result{}
	if err = c.FetchJSON(ctx, http.MethodDelete, itemPath(id), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}
