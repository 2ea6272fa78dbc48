// Package ui holds the client-side core: the row renderer, the view
// contracts, and the controller that keeps the rendered table in sync with
// the store and tracks the form's edit mode.
package ui

// Mode tells whether a form submission creates a product or updates one.
type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

// FormValues holds the raw textual contents of the product form.
type FormValues struct {
	Name        string
	Description string
	Price       string
	Quantity    string
}

// TableView is the render target for the product list.
type TableView interface {
	// SetRows replaces the entire table contents.
	SetRows(rows []Row)
	// ShowEmpty replaces the table contents with a single placeholder row.
	ShowEmpty(message string)
}

// FormView is the mutation entry point. Both submit controls exist from
// construction; SetMode only switches which one is active.
type FormView interface {
	Values() FormValues
	SetValues(v FormValues)
	Reset()
	SetMode(m Mode)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(message string) bool
}
