package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/domain/entity"
)

// ProductModel is the document stored in the "products" collection.
type ProductModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Stock       int                `bson:"stock"`
	ImageURL    string             `bson:"image_url"`
}

// ToDomain maps the stored document back to a pure domain entity.
func (m *ProductModel) ToDomain() *entity.Product {
	return &entity.Product{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		ImageURL:    m.ImageURL,
	}
}

// ProductFromDomain maps a domain entity to its document representation.
func ProductFromDomain(product *entity.Product) *ProductModel {
	oid, _ := primitive.ObjectIDFromHex(product.ID)

	return &ProductModel{
		ID:          oid,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		ImageURL:    product.ImageURL,
	}
}
