package models

import "strconv"

// Product — a catalogue entry as served by /api/productos
type Product struct {
	ID             int64  `json:"id"`
	Categoria      string `json:"categoria"`
	NombreProducto string `json:"nombre_producto"`
	Material       string `json:"material"`
	Descripcion    string `json:"descripcion"`
	Precio         Text   `json:"precio"`
	Imagen         string `json:"imagen"` // URL or relative path, rendered as-is
}

// ProductInput — create/update payload, everything but the id
type ProductInput struct {
	Categoria      string `json:"categoria" validate:"required"`
	NombreProducto string `json:"nombre_producto" validate:"required"`
	Material       string `json:"material" validate:"required"`
	Descripcion    string `json:"descripcion" validate:"required"`
	Precio         string `json:"precio" validate:"required"`
	Imagen         string `json:"imagen" validate:"required"`
}

// Result — body returned by create, update and delete
type Result struct {
	Message string `json:"message"`
}

// IDString formats the id the way the hidden form field carries it.
func (p Product) IDString() string {
	return strconv.FormatInt(p.ID, 10)
}

func (p Product) Input() ProductInput {
	return ProductInput{
		Categoria:      p.Categoria,
		NombreProducto: p.NombreProducto,
		Material:       p.Material,
		Descripcion:    p.Descripcion,
		Precio:         p.Precio.String(),
		Imagen:         p.Imagen,
	}
}
