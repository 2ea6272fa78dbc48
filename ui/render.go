package ui

import (
	"strconv"

	"github.com/dcastano/gestion-inventario/client"
)

// Class markers identifying the row action controls.
const (
	ActionEdit   = "edit-product"
	ActionDelete = "delete-product"
)

// NoProductsMessage is the placeholder row shown when the store is empty.
const NoProductsMessage = "No se han agregado productos aún..."

// ConfirmDeleteMessage precedes every delete request.
const ConfirmDeleteMessage = "¿Estás seguro de que quieres eliminar este producto?"

// Action is a control attached to a row, closed over the record it targets.
type Action struct {
	Class     string
	ProductID string
}

// Row is the renderable projection of a product record.
type Row struct {
	Cells   []string
	Actions []Action
}

// RenderRow builds the table row for a product: name, description, price with
// a currency prefix, quantity, and the edit/delete controls.
func RenderRow(p client.Product) Row {
	return Row{
		Cells: []string{
			p.Name,
			p.Description,
			"$ " + strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.Itoa(p.Quantity),
		},
		Actions: []Action{
			{Class: ActionEdit, ProductID: p.ID},
			{Class: ActionDelete, ProductID: p.ID},
		},
	}
}

// RenderRows maps records to rows, preserving order.
func RenderRows(products []client.Product) []Row {
	rows := make([]Row, len(products))
	for i, p := range products {
		rows[i] = RenderRow(p)
	}
	return rows
}
