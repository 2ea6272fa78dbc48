package ui

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/dcastano/gestion-inventario/client"
)

// InventoryAPI is the slice of the API client the controller needs.
type InventoryAPI interface {
	ListProducts(ctx context.Context) ([]client.Product, error)
	GetProduct(ctx context.Context, id string) (*client.Product, error)
	CreateProduct(ctx context.Context, in client.ProductInput) (*client.Product, error)
	UpdateProduct(ctx context.Context, id string, in client.ProductInput) (*client.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Controller keeps the rendered table in sync with the store and decides
// whether a form submission creates a product or updates the one being
// edited. Request failures never reach the user: the previous rendered state
// is kept and the failure goes to the log. Methods still return the error so
// an embedding program can act on it.
type Controller struct {
	api     InventoryAPI
	table   TableView
	form    FormView
	confirm Confirmer
	log     *zap.SugaredLogger

	// editingID is the identifier of the record being edited, empty in add mode.
	editingID string
}

func NewController(api InventoryAPI, table TableView, form FormView, confirm Confirmer, log *zap.SugaredLogger) *Controller {
	c := &Controller{
		api:     api,
		table:   table,
		form:    form,
		confirm: confirm,
		log:     log,
	}
	c.form.SetMode(ModeAdd)
	return c
}

// Mode reports whether a submission would create or update.
func (c *Controller) Mode() Mode {
	if c.editingID != "" {
		return ModeEdit
	}
	return ModeAdd
}

// EditingID returns the identifier of the record being edited, empty in add mode.
func (c *Controller) EditingID() string {
	return c.editingID
}

// Refresh re-fetches the product list and rebuilds the table, one row per
// record in received order, or the placeholder row when the list is empty.
// On failure the previous rendered state is left untouched.
func (c *Controller) Refresh(ctx context.Context) error {
	products, err := c.api.ListProducts(ctx)
	if err != nil {
		c.log.Errorf("error al obtener los productos: %v", err)
		return err
	}

	if len(products) == 0 {
		c.table.ShowEmpty(NoProductsMessage)
		return nil
	}
	c.table.SetRows(RenderRows(products))
	return nil
}

// BeginEdit fetches the product by id and fills the form with its current
// values. The rendered row is never reused: the store may be ahead of it.
func (c *Controller) BeginEdit(ctx context.Context, id string) error {
	product, err := c.api.GetProduct(ctx, id)
	if err != nil {
		c.log.Errorf("error al obtener el producto %s: %v", id, err)
		return err
	}

	c.form.SetValues(FormValues{
		Name:        product.Name,
		Description: product.Description,
		Price:       strconv.FormatFloat(product.Price, 'f', -1, 64),
		Quantity:    strconv.Itoa(product.Quantity),
	})
	c.editingID = product.ID
	c.form.SetMode(ModeEdit)
	return nil
}

// Submit sends the form: a create in add mode, an update scoped to the edited
// record otherwise. On success the form is cleared, the machine returns to
// add mode and the table is re-fetched.
func (c *Controller) Submit(ctx context.Context) error {
	input := c.parseForm()

	if c.editingID != "" {
		if _, err := c.api.UpdateProduct(ctx, c.editingID, input); err != nil {
			c.log.Errorf("error al actualizar el producto: %v", err)
			return err
		}
		c.editingID = ""
	} else {
		if _, err := c.api.CreateProduct(ctx, input); err != nil {
			c.log.Errorf("error al añadir el producto: %v", err)
			return err
		}
	}

	c.form.Reset()
	c.form.SetMode(ModeAdd)
	return c.Refresh(ctx)
}

// Delete asks for confirmation and, if granted, deletes the product and
// re-fetches the list. A declined confirmation issues no request.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if !c.confirm.Confirm(ConfirmDeleteMessage) {
		return nil
	}

	if err := c.api.DeleteProduct(ctx, id); err != nil {
		c.log.Errorf("error al eliminar el producto: %v", err)
		return err
	}

	if c.editingID == id {
		c.editingID = ""
		c.form.SetMode(ModeAdd)
	}
	return c.Refresh(ctx)
}

// parseForm coerces the numeric fields. A value that does not parse becomes
// zero; the form never rejects input, the store is the validation authority.
func (c *Controller) parseForm() client.ProductInput {
	v := c.form.Values()

	price, err := strconv.ParseFloat(v.Price, 64)
	if err != nil {
		c.log.Debugf("precio no numérico %q, se envía 0", v.Price)
		price = 0
	}
	quantity, err := strconv.Atoi(v.Quantity)
	if err != nil {
		c.log.Debugf("cantidad no numérica %q, se envía 0", v.Quantity)
		quantity = 0
	}

	return client.ProductInput{
		Name:        v.Name,
		Description: v.Description,
		Price:       price,
		Quantity:    quantity,
	}
}
