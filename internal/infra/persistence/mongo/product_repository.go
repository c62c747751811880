package mongo

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// productRepository implements the repository.ProductRepository interface
// against the "products" collection.
type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{
		collection: db.Collection(productsCollection),
	}
}

// FindAll retrieves every product in the catalog.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query products")
	}
	defer cursor.Close(ctx)

	var models []model.ProductModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, len(models))
	for i := range models {
		products[i] = models[i].ToDomain()
	}

	return products, nil
}

// FindByID retrieves a single product by its store-assigned ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrProductNotFound
	}

	var productM model.ProductModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&productM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return productM.ToDomain(), nil
}

// Save persists a new product document and writes the store-assigned ID back
// onto the entity.
func (repo *productRepository) Save(ctx context.Context, product *entity.Product) error {
	productM := model.ProductFromDomain(product)
	if productM.ID.IsZero() {
		productM.ID = primitive.NewObjectID()
	}

	if _, err := repo.collection.InsertOne(ctx, productM); err != nil {
		return errors.Wrap(err, "failed to insert product")
	}

	product.ID = productM.ID.Hex()

	return nil
}

// Update replaces the stored fields of an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return repository.ErrProductNotFound
	}

	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"stock":       product.Stock,
			"image_url":   product.ImageURL,
		}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update product")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ExistsByID reports whether a product with the given ID exists.
func (repo *productRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	count, err := repo.collection.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, errors.Wrap(err, "failed to count products by id")
	}

	return count > 0, nil
}

// DeleteByID removes a product permanently.
func (repo *productRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrProductNotFound
	}

	if _, err := repo.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
