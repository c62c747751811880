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

// orderRepository implements the repository.OrderRepository interface against
// the "orders" collection.
type orderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{
		collection: db.Collection(ordersCollection),
	}
}

// FindAll retrieves every order in the store, in store-native order.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	return repo.find(ctx, bson.M{})
}

// FindByID retrieves a single order by its store-assigned ID.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrOrderNotFound
	}

	var orderM model.OrderModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&orderM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return orderM.ToDomain(), nil
}

// FindByUserID retrieves all orders whose owning-user field equals userID.
func (repo *orderRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Order, error) {
	return repo.find(ctx, bson.M{"user_id": userID})
}

// Save persists a new order document and writes the store-assigned ID back
// onto the entity.
func (repo *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	orderM := model.OrderFromDomain(order)
	if orderM.ID.IsZero() {
		orderM.ID = primitive.NewObjectID()
	}

	if _, err := repo.collection.InsertOne(ctx, orderM); err != nil {
		return errors.Wrap(err, "failed to insert order")
	}

	order.ID = orderM.ID.Hex()

	return nil
}

// UpdateStatus sets the status field of an existing order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrOrderNotFound
	}

	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update order status")
	}
	if result.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// ExistsByID reports whether an order with the given ID exists.
func (repo *orderRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	count, err := repo.collection.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, errors.Wrap(err, "failed to count orders by id")
	}

	return count > 0, nil
}

// DeleteByID removes an order permanently.
func (repo *orderRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrOrderNotFound
	}

	if _, err := repo.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

func (repo *orderRepository) find(ctx context.Context, filter bson.M) ([]*entity.Order, error) {
	cursor, err := repo.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query orders")
	}
	defer cursor.Close(ctx)

	var models []model.OrderModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, len(models))
	for i := range models {
		orders[i] = models[i].ToDomain()
	}

	return orders, nil
}
