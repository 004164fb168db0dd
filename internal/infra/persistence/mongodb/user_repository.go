package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface on MongoDB.
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

// Create persists a new user document. The unique indexes on username and
// email make the uniqueness check and the insert a single atomic operation
// on the store; concurrent registrations of the same username cannot both
// succeed.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)
	if userM.CreatedAt.IsZero() {
		userM.CreatedAt = time.Now().UTC()
	}

	result, err := repo.collection.InsertOne(ctx, userM)
	if err != nil {
		// Convert store errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Propagate the generated identifier back to the entity
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	user.CreatedAt = userM.CreatedAt

	return nil
}

// FindByUsername retrieves a single user by their login username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.collection.FindOne(ctx, bson.M{"username": username}).Decode(&userM)
	if err != nil {
		// If the error is 'no documents', return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return userM.ToUserDomain(), nil
}
