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

// userRepository implements the repository.UserRepository interface against
// the "users" collection.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(usersCollection),
	}
}

// FindByID retrieves a single user by their store-assigned ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed ID can never match a stored document.
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return userM.ToDomain(), nil
}

// FindByUsername retrieves a single user by their login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, bson.M{"username": username}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return userM.ToDomain(), nil
}

// ExistsByUsername reports whether a user with the given username exists.
func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	count, err := repo.collection.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, errors.Wrap(err, "failed to count users by username")
	}

	return count > 0, nil
}

// ExistsByEmail reports whether a user with the given email exists.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := repo.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, errors.Wrap(err, "failed to count users by email")
	}

	return count > 0, nil
}

// Save persists a new user document and writes the store-assigned ID back
// onto the entity.
func (repo *userRepository) Save(ctx context.Context, user *entity.User) error {
	userM := model.UserFromDomain(user)
	if userM.ID.IsZero() {
		userM.ID = primitive.NewObjectID()
	}

	if _, err := repo.collection.InsertOne(ctx, userM); err != nil {
		return errors.Wrap(err, "failed to insert user")
	}

	user.ID = userM.ID.Hex()

	return nil
}
