package services

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/paperplane-redeem/internal/logger"
	"github.com/sbilibin2017/paperplane-redeem/internal/models"
	"github.com/sbilibin2017/paperplane-redeem/internal/validation"
)

// Pagination defaults applied when the caller supplies no usable value.
// A limit above MaxLimit is lowered to MaxLimit.
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100
)

// Error variables
var (
	// ErrValidation reports a malformed or missing field.
	ErrValidation = validation.ErrValidation
	// ErrInvalidID reports an id that is not a valid ObjectId. It is a validation error.
	ErrInvalidID = fmt.Errorf("%w: id: Cast to ObjectId failed", validation.ErrValidation)
	// ErrContactNotFound reports that no contact has the requested id.
	ErrContactNotFound = errors.New("contact not found")
)

// ContactReader defines read operations on stored contacts.
type ContactReader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	List(ctx context.Context, skip, limit int64) ([]models.Contact, int64, error)
}

// ContactWriter defines write operations on stored contacts.
type ContactWriter interface {
	Insert(ctx context.Context, contact *models.Contact) error
	Update(ctx context.Context, id primitive.ObjectID, in models.ContactInput) (*models.Contact, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ContactCacher caches single contacts by id. Delete advances the generation
// of an id, and Set refuses to store a contact read under an older one.
type ContactCacher interface {
	Get(ctx context.Context, id string) (*models.Contact, error)
	Generation(ctx context.Context, id string) (int64, error)
	Set(ctx context.Context, contact *models.Contact, generation int64) error
	Delete(ctx context.Context, id string) error
}

// ContactService owns validation, identity and pagination of contacts.
type ContactService struct {
	reader ContactReader
	writer ContactWriter
	cache  ContactCacher
}

// NewContactService creates a ContactService. cache may be nil.
func NewContactService(reader ContactReader, writer ContactWriter, cache ContactCacher) *ContactService {
	return &ContactService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// Create validates the input and stores a new contact.
func (s *ContactService) Create(ctx context.Context, in models.ContactInput) (*models.Contact, error) {
	contact := models.NewContact(in)
	if err := validation.Validate(contact); err != nil {
		logger.Log.Warnw("contact rejected", "error", err)
		return nil, err
	}

	if err := s.writer.Insert(ctx, &contact); err != nil {
		logger.Log.Errorw("failed to insert contact", "error", err)
		return nil, err
	}

	logger.Log.Infow("contact created", "id", contact.ID.Hex())
	return &contact, nil
}

// GetByID returns the contact with the given hex id.
func (s *ContactService) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	cacheable := false
	var generation int64
	if s.cache != nil {
		contact, err := s.cache.Get(ctx, id)
		if err == nil {
			return contact, nil
		}
		logger.Log.Debugw("contact cache lookup failed", "id", id, "error", err)

		generation, err = s.cache.Generation(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to read contact cache generation", "id", id, "error", err)
		}
		cacheable = err == nil
	}

	contact, err := s.reader.GetByID(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to get contact", "id", id, "error", err)
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	if cacheable {
		if err := s.cache.Set(ctx, contact, generation); err != nil {
			logger.Log.Warnw("contact not cached", "id", id, "error", err)
		}
	}

	return contact, nil
}

// List returns one page of contacts. Values of page or limit below 1 fall
// back to DefaultPage and DefaultLimit. limit is capped at MaxLimit and page
// at the last page whose offset fits in an int64.
func (s *ContactService) List(ctx context.Context, page, limit int64) (*models.ContactPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page-1 > math.MaxInt64/limit {
		page = math.MaxInt64/limit + 1
	}

	items, total, err := s.reader.List(ctx, (page-1)*limit, limit)
	if err != nil {
		logger.Log.Errorw("failed to list contacts", "page", page, "limit", limit, "error", err)
		return nil, err
	}

	return models.NewContactPage(items, total, page, limit), nil
}

// Update applies the supplied fields to the contact with the given hex id.
// Only supplied fields are validated.
func (s *ContactService) Update(ctx context.Context, id string, in models.ContactInput) (*models.Contact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if err := validation.Validate(in); err != nil {
		logger.Log.Warnw("contact update rejected", "id", id, "error", err)
		return nil, err
	}

	contact, err := s.writer.Update(ctx, oid, in)
	if err != nil {
		logger.Log.Errorw("failed to update contact", "id", id, "error", err)
		return nil, err
	}

	s.invalidate(ctx, id)

	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// Delete permanently removes the contact with the given hex id.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	deleted, err := s.writer.Delete(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to delete contact", "id", id, "error", err)
		return err
	}

	s.invalidate(ctx, id)

	if !deleted {
		return ErrContactNotFound
	}
	logger.Log.Infow("contact deleted", "id", id)
	return nil
}

func (s *ContactService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to invalidate cached contact", "id", id, "error", err)
	}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Log.Warnw("malformed contact id", "id", id, "error", err)
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
