package console

import (
	"fmt"
	"strings"

	"productos-admin/internal/models"
)

// Form field ids, which the page also uses as input names.
const (
	FieldID          = "id-producto"
	FieldCategoria   = "categoria"
	FieldNombre      = "nombre"
	FieldMaterial    = "material"
	FieldDescripcion = "descripcion"
	FieldPrecio      = "precio"
	FieldImagen      = "foto"
)

// FieldIDs lists every field the product form must expose, hidden id first.
var FieldIDs = []string{
	FieldID, FieldCategoria, FieldNombre, FieldMaterial, FieldDescripcion, FieldPrecio, FieldImagen,
}

// Field is one input of the form.
type Field interface {
	Value() string
	SetValue(v string)
}

// FieldResolver looks inputs up by id.
type FieldResolver interface {
	Field(id string) (Field, bool)
}

// MissingFieldsError means the page does not expose some of the inputs the
// console needs. It is a wiring fault, not something the operator can fix.
type MissingFieldsError struct {
	IDs []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("one or more form fields were not found: %s", strings.Join(e.IDs, ", "))
}

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Form is the product form with all seven inputs resolved.
type Form struct {
	id, categoria, nombre, material, descripcion, precio, imagen Field
}

// ResolveForm resolves every input once, reporting all missing ids together.
func ResolveForm(r FieldResolver) (*Form, error) {
	var missing []string
	get := func(id string) Field {
		f, ok := r.Field(id)
		if !ok || f == nil {
			missing = append(missing, id)
			return nil
		}
		return f
	}

	f := &Form{
		id:          get(FieldID),
		categoria:   get(FieldCategoria),
		nombre:      get(FieldNombre),
		material:    get(FieldMaterial),
		descripcion: get(FieldDescripcion),
		precio:      get(FieldPrecio),
		imagen:      get(FieldImagen),
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{IDs: missing}
	}
	return f, nil
}

func (f *Form) ID() string { return f.id.Value() }

// Mode is Edit while the hidden id holds a value.
func (f *Form) Mode() Mode {
	if f.id.Value() != "" {
		return ModeEdit
	}
	return ModeCreate
}

// Input collects the six data fields; the id is never part of the payload.
func (f *Form) Input() models.ProductInput {
	return models.ProductInput{
		Categoria:      f.categoria.Value(),
		NombreProducto: f.nombre.Value(),
		Material:       f.material.Value(),
		Descripcion:    f.descripcion.Value(),
		Precio:         f.precio.Value(),
		Imagen:         f.imagen.Value(),
	}
}

// Load copies a fetched product into the inputs, hidden id included.
func (f *Form) Load(p models.Product) {
	f.id.SetValue(p.IDString())
	f.categoria.SetValue(p.Categoria)
	f.nombre.SetValue(p.NombreProducto)
	f.material.SetValue(p.Material)
	f.descripcion.SetValue(p.Descripcion)
	f.precio.SetValue(p.Precio.String())
	f.imagen.SetValue(p.Imagen)
}

// Reset clears every input, which also returns the form to Create mode.
func (f *Form) Reset() {
	for _, fld := range []Field{f.id, f.categoria, f.nombre, f.material, f.descripcion, f.precio, f.imagen} {
		fld.SetValue("")
	}
}
