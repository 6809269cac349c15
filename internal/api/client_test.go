package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productos-admin/internal/logging"
	"productos-admin/internal/models"
)

type recorded struct {
	Method      string
	Path        string
	ContentType string
	Body        map[string]any
}

// fakeAPI answers every request with status/body and records what it got.
func fakeAPI(t *testing.T, status int, body string) (*Client, func() []recorded) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{Method: r.Method, Path: r.URL.Path, ContentType: r.Header.Get("Content-Type")}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			assert.NoError(t, json.Unmarshal(raw, &rec.Body))
		}
		mu.Lock()
		calls = append(calls, rec)
		mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	snapshot := func() []recorded {
		mu.Lock()
		defer mu.Unlock()
		return append([]recorded(nil), calls...)
	}
	return New(srv.URL, 5*time.Second, WithLogger(logging.Discard())), snapshot
}

var solitario = models.ProductInput{
	Categoria:      "Anillos",
	NombreProducto: "Solitario",
	Material:       "Oro",
	Descripcion:    "x",
	Precio:         "120",
	Imagen:         "a.png",
}

func TestListProductos(t *testing.T) {
	c, calls := fakeAPI(t, http.StatusOK,
		`[{"id":7,"categoria":"Anillos","nombre_producto":"Solitario","material":"Oro","descripcion":"x","precio":120,"imagen":"a.png"}]`)

	ps, err := c.ListProductos(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, int64(7), ps[0].ID)
	assert.Equal(t, models.Text("120"), ps[0].Precio)

	got := calls()
	require.Len(t, got, 1)
	assert.Equal(t, http.MethodGet, got[0].Method)
	assert.Equal(t, "/api/productos", got[0].Path)
	assert.Equal(t, "application/json", got[0].ContentType)
}

func TestListProductosRejectsNonArray(t *testing.T) {
	for _, body := range []string{`{"message":"db down"}`, `null`, `"x"`} {
		c, _ := fakeAPI(t, http.StatusOK, body)

		ps, err := c.ListProductos(context.Background())
		assert.Nil(t, ps)
		assert.Equal(t, KindShape, KindOf(err), body)
	}
}

func TestStatusErrorCarriesBodyText(t *testing.T) {
	c, _ := fakeAPI(t, http.StatusNotFound, "Producto no encontrado")

	p, err := c.GetProducto(context.Background(), "99")
	assert.Nil(t, p)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindStatus, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Error 404: Producto no encontrado", apiErr.Error())
	assert.Equal(t, "SERVICE_UNAVAILABLE", apiErr.Code())
}

func TestDecodeError(t *testing.T) {
	c, _ := fakeAPI(t, http.StatusOK, "<html>oops</html>")

	_, err := c.GetProducto(context.Background(), "7")
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, time.Second, WithLogger(logging.Discard()))
	_, err := c.ListProductos(context.Background())
	assert.Equal(t, KindTransport, KindOf(err))
	assert.Equal(t, "NETWORK_ERROR", err.(*Error).Code())
}

func TestCreateUsesCollectionWithTrailingSlash(t *testing.T) {
	c, calls := fakeAPI(t, http.StatusCreated, `{"message":"Producto creado"}`)

	res, err := c.CreateProducto(context.Background(), solitario)
	require.NoError(t, err)
	assert.Equal(t, "Producto creado", res.Message)

	got := calls()[0]
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/productos/", got.Path)
	assert.Equal(t, "Solitario", got.Body["nombre_producto"])
	assert.NotContains(t, got.Body, "id")
}

func TestUpdateAndDeleteUsePerIDEndpoint(t *testing.T) {
	c, calls := fakeAPI(t, http.StatusOK, `{"message":"ok"}`)

	_, err := c.UpdateProducto(context.Background(), "7", solitario)
	require.NoError(t, err)
	_, err = c.DeleteProducto(context.Background(), "7")
	require.NoError(t, err)

	got := calls()
	require.Len(t, got, 2)
	assert.Equal(t, http.MethodPut, got[0].Method)
	assert.Equal(t, "/api/productos/7", got[0].Path)
	assert.Equal(t, "120", got[0].Body["precio"])
	assert.Equal(t, http.MethodDelete, got[1].Method)
	assert.Equal(t, "/api/productos/7", got[1].Path)
	assert.Nil(t, got[1].Body)
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(block) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := New(srv.URL, 0, WithLogger(logging.Discard()))
	_, err := c.ListProductos(ctx)
	assert.Equal(t, KindTransport, KindOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
