package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/infra/persistence/model"
)

// contactRepository implements the repository.ContactRepository interface on MongoDB.
type contactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *mongo.Database) repository.ContactRepository {
	return &contactRepository{
		collection: db.Collection(contactsCollection),
	}
}

// Create persists a new contact form submission. The collection carries no
// uniqueness constraints, so this is a plain insert.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := model.FromContactDomain(contact)
	if contactM.CreatedAt.IsZero() {
		contactM.CreatedAt = time.Now().UTC()
	}

	result, err := repo.collection.InsertOne(ctx, contactM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save contact form data")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid.Hex()
	}
	contact.CreatedAt = contactM.CreatedAt

	return nil
}
