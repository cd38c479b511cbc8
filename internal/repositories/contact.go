package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/paperplane-redeem/internal/logger"
	"github.com/sbilibin2017/paperplane-redeem/internal/models"
)

// now is the store clock. Mongo keeps millisecond precision, so values are
// truncated to make the returned record equal to what a later read yields.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// ContactReadRepository reads contacts from a MongoDB collection.
type ContactReadRepository struct {
	coll *mongo.Collection
}

func NewContactReadRepository(coll *mongo.Collection) *ContactReadRepository {
	return &ContactReadRepository{coll: coll}
}

// GetByID returns the contact with the given id, or nil if there is none.
func (r *ContactReadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	filter := bson.M{"_id": id}

	var contact models.Contact
	err := r.coll.FindOne(ctx, filter).Decode(&contact)

	logger.Log.Infow("findOne",
		"collection", r.coll.Name(),
		"filter", filter,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns limit contacts after skipping skip of them, in _id order,
// together with the total number of contacts.
func (r *ContactReadRepository) List(ctx context.Context, skip, limit int64) ([]models.Contact, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		logger.Log.Errorw("countDocuments", "collection", r.coll.Name(), "error", err)
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		logger.Log.Errorw("find", "collection", r.coll.Name(), "skip", skip, "limit", limit, "error", err)
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var contacts []models.Contact
	err = cur.All(ctx, &contacts)

	logger.Log.Infow("find",
		"collection", r.coll.Name(),
		"skip", skip,
		"limit", limit,
		"result", len(contacts),
		"total", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// ContactWriteRepository writes contacts to a MongoDB collection.
type ContactWriteRepository struct {
	coll *mongo.Collection
}

func NewContactWriteRepository(coll *mongo.Collection) *ContactWriteRepository {
	return &ContactWriteRepository{coll: coll}
}

// Insert assigns the id and timestamps of contact and stores it.
func (r *ContactWriteRepository) Insert(ctx context.Context, contact *models.Contact) error {
	contact.ID = primitive.NewObjectID()
	contact.CreatedAt = now()
	contact.UpdatedAt = contact.CreatedAt

	_, err := r.coll.InsertOne(ctx, contact)

	logger.Log.Infow("insertOne",
		"collection", r.coll.Name(),
		"id", contact.ID.Hex(),
		"error", err,
	)

	return err
}

// Update sets the supplied fields of in on the contact and returns the
// updated document, or nil if no contact has that id.
func (r *ContactWriteRepository) Update(ctx context.Context, id primitive.ObjectID, in models.ContactInput) (*models.Contact, error) {
	set, err := toSetDocument(in)
	if err != nil {
		return nil, err
	}
	set["updatedAt"] = now()

	filter := bson.M{"_id": id}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var contact models.Contact
	err = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&contact)

	logger.Log.Infow("findOneAndUpdate",
		"collection", r.coll.Name(),
		"filter", filter,
		"set", set,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Delete removes the contact and reports whether it existed.
func (r *ContactWriteRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id}

	res, err := r.coll.DeleteOne(ctx, filter)
	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}

	logger.Log.Infow("deleteOne",
		"collection", r.coll.Name(),
		"filter", filter,
		"result", deleted,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// toSetDocument keeps only the supplied (non-nil) fields of in.
func toSetDocument(in models.ContactInput) (bson.M, error) {
	raw, err := bson.Marshal(in)
	if err != nil {
		return nil, err
	}
	set := bson.M{}
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	return set, nil
}
