package console

import (
	"context"

	"productos-admin/internal/models"
)

// ProductAPI is the slice of the productos API the console drives.
type ProductAPI interface {
	ListProductos(ctx context.Context) ([]models.Product, error)
	GetProducto(ctx context.Context, id string) (*models.Product, error)
	CreateProducto(ctx context.Context, in models.ProductInput) (*models.Result, error)
	UpdateProducto(ctx context.Context, id string, in models.ProductInput) (*models.Result, error)
	DeleteProducto(ctx context.Context, id string) (*models.Result, error)
}

// TableView is the productos table body.
type TableView interface {
	Clear()
	Append(p models.Product)
}

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a modal dialog: a title, optional text and an icon level.
type Notice struct {
	Level Level
	Title string
	Text  string
}

// Notifier shows messages to the operator.
type Notifier interface {
	// Alert is the plain blocking alert used for request failures.
	Alert(message string)
	Notify(n Notice)
}

// Prompt is a yes/no question with a label for the affirmative button.
type Prompt struct {
	Title       string
	ConfirmText string
}

// Confirmer asks the operator to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) bool
}
