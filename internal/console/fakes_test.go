package console

import (
	"context"
	"errors"

	"productos-admin/internal/api"
	"productos-admin/internal/models"
)

type call struct {
	Method string
	ID     string
	Input  models.ProductInput
}

type fakeAPI struct {
	productos []models.Product
	listErr   error
	err       error // returned by every non-list call when set
	calls     []call
}

func (f *fakeAPI) ListProductos(context.Context) ([]models.Product, error) {
	f.calls = append(f.calls, call{Method: "GET"})
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Product(nil), f.productos...), nil
}

func (f *fakeAPI) GetProducto(_ context.Context, id string) (*models.Product, error) {
	f.calls = append(f.calls, call{Method: "GET", ID: id})
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.productos {
		if p.IDString() == id {
			return &p, nil
		}
	}
	return nil, &api.Error{Kind: api.KindStatus, Status: 404, Body: "not found"}
}

func (f *fakeAPI) CreateProducto(_ context.Context, in models.ProductInput) (*models.Result, error) {
	f.calls = append(f.calls, call{Method: "POST", Input: in})
	if f.err != nil {
		return nil, f.err
	}
	f.productos = append(f.productos, models.Product{
		ID: int64(len(f.productos) + 100), Categoria: in.Categoria, NombreProducto: in.NombreProducto,
		Material: in.Material, Descripcion: in.Descripcion, Precio: models.Text(in.Precio), Imagen: in.Imagen,
	})
	return &models.Result{Message: "Producto creado"}, nil
}

func (f *fakeAPI) UpdateProducto(_ context.Context, id string, in models.ProductInput) (*models.Result, error) {
	f.calls = append(f.calls, call{Method: "PUT", ID: id, Input: in})
	if f.err != nil {
		return nil, f.err
	}
	return &models.Result{Message: "Producto actualizado"}, nil
}

func (f *fakeAPI) DeleteProducto(_ context.Context, id string) (*models.Result, error) {
	f.calls = append(f.calls, call{Method: "DELETE", ID: id})
	if f.err != nil {
		return nil, f.err
	}
	kept := f.productos[:0]
	for _, p := range f.productos {
		if p.IDString() != id {
			kept = append(kept, p)
		}
	}
	f.productos = kept
	return &models.Result{Message: "Producto eliminado"}, nil
}

func (f *fakeAPI) mutations() []call {
	var out []call
	for _, c := range f.calls {
		if c.Method != "GET" {
			out = append(out, c)
		}
	}
	return out
}

var errStatus = &api.Error{Kind: api.KindStatus, Status: 500, Body: "Internal Server Error"}

var errBoom = errors.New("boom")

// events records table and notifier activity in order.
type events struct {
	log []string
}

type fakeTable struct {
	ev   *events
	rows []models.Product
}

func (t *fakeTable) Clear() {
	t.rows = nil
	if t.ev != nil {
		t.ev.log = append(t.ev.log, "table.clear")
	}
}

func (t *fakeTable) Append(p models.Product) { t.rows = append(t.rows, p) }

type fakeNotifier struct {
	ev      *events
	alerts  []string
	notices []Notice
}

func (n *fakeNotifier) Alert(msg string) { n.alerts = append(n.alerts, msg) }

func (n *fakeNotifier) Notify(no Notice) {
	n.notices = append(n.notices, no)
	if n.ev != nil {
		n.ev.log = append(n.ev.log, "notify."+string(no.Level))
	}
}

type fakeField struct{ v string }

func (f *fakeField) Value() string     { return f.v }
func (f *fakeField) SetValue(v string) { f.v = v }

type fakeForm map[string]*fakeField

func (f fakeForm) Field(id string) (Field, bool) {
	fld, ok := f[id]
	if !ok {
		return nil, false
	}
	return fld, true
}

func (f fakeForm) value(id string) string { return f[id].v }

func newForm(values map[string]string) fakeForm {
	f := fakeForm{}
	for _, id := range FieldIDs {
		f[id] = &fakeField{v: values[id]}
	}
	return f
}

func filledForm(id string) fakeForm {
	return newForm(map[string]string{
		FieldID:          id,
		FieldCategoria:   "Anillos",
		FieldNombre:      "Solitario",
		FieldMaterial:    "Oro",
		FieldDescripcion: "x",
		FieldPrecio:      "120",
		FieldImagen:      "a.png",
	})
}

type fakeConfirmer struct {
	answer bool
	asked  []Prompt
}

func (c *fakeConfirmer) Confirm(_ context.Context, p Prompt) bool {
	c.asked = append(c.asked, p)
	return c.answer
}
