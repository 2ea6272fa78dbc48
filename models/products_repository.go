package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrMissingFields is returned when a write lacks name or description.
var ErrMissingFields = errors.New("name and description are required")

// ProductFields carries the mutable attributes of a product for an update.
type ProductFields struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetAllProducts returns every product in insertion order.
func (r *ProductsRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.
		Order("date_added, id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(id string) (*Product, error) {
	var product Product
	if err := r.db.
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// CreateProduct inserts a new product. The identifier and creation date are
// filled in by the model's BeforeCreate hook.
func (r *ProductsRepository) CreateProduct(product *Product) error {
	if product.Name == "" || product.Description == "" {
		return ErrMissingFields
	}
	return r.db.Create(product).Error
}

// UpdateProduct replaces the mutable fields of the product identified by id
// and returns the updated record. Identifier and creation date are preserved.
func (r *ProductsRepository) UpdateProduct(id string, fields ProductFields) (*Product, error) {
	if fields.Name == "" || fields.Description == "" {
		return nil, ErrMissingFields
	}

	product, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = fields.Name
	product.Description = fields.Description
	product.Price = fields.Price
	product.Quantity = fields.Quantity

	if err := r.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product identified by id. The deletion is
// irreversible; there is no soft-delete.
func (r *ProductsRepository) DeleteProduct(id string) error {
	res := r.db.Where("id = ?", id).Delete(&Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
