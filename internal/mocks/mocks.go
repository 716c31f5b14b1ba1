// Package mocks provides in-memory fakes of the repository and verifier
// interfaces for tests.
package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawmart-backend-go/internal/auth"
	"pawmart-backend-go/internal/db"
	"pawmart-backend-go/internal/models"
)

// FakeVerifier accepts a single known token and fails everything else.
type FakeVerifier struct {
	Token    string
	Identity auth.Identity
	Err      error
	Calls    int
}

func (f *FakeVerifier) Verify(_ context.Context, token string) (*auth.Identity, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	if token != f.Token {
		return nil, auth.ErrTokenInvalid
	}
	id := f.Identity
	return &id, nil
}

// MemoryUserRepo enforces email uniqueness the way the store's unique index
// does: at insert time, not via a prior existence check.
type MemoryUserRepo struct {
	ByEmail  map[string]models.User
	NotReady bool
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{ByEmail: make(map[string]models.User)}
}

func (m *MemoryUserRepo) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	if m.NotReady {
		return primitive.NilObjectID, db.ErrNotReady
	}
	if _, exists := m.ByEmail[user.Email]; exists {
		return primitive.NilObjectID, fmt.Errorf("user %q: %w", user.Email, db.ErrDuplicateKey)
	}
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	m.ByEmail[user.Email] = stored
	return id, nil
}

func (m *MemoryUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if m.NotReady {
		return nil, db.ErrNotReady
	}
	u, ok := m.ByEmail[email]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", email, db.ErrNoDocument)
	}
	return &u, nil
}

// MemoryListingRepo is an in-memory ListingRepository. Update only applies
// the fields the tests exercise.
type MemoryListingRepo struct {
	Listings map[primitive.ObjectID]models.Listing

	UpdateCalls  int
	DeleteCalls  int
	LastUpdate   bson.M
	ZeroModified bool
	NotReady     bool
}

func NewMemoryListingRepo() *MemoryListingRepo {
	return &MemoryListingRepo{Listings: make(map[primitive.ObjectID]models.Listing)}
}

// Add stores a listing under a fresh id and returns the id.
func (m *MemoryListingRepo) Add(listing models.Listing) primitive.ObjectID {
	id := primitive.NewObjectID()
	listing.ID = id
	m.Listings[id] = listing
	return id
}

func (m *MemoryListingRepo) List(_ context.Context, limit int64) ([]models.Listing, error) {
	if m.NotReady {
		return nil, db.ErrNotReady
	}
	out := []models.Listing{}
	for _, l := range m.Listings {
		out = append(out, l)
	}
	// Mirrors the store's sort: date descending.
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryListingRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Listing, error) {
	if m.NotReady {
		return nil, db.ErrNotReady
	}
	l, ok := m.Listings[id]
	if !ok {
		return nil, fmt.Errorf("listing %s: %w", id.Hex(), db.ErrNoDocument)
	}
	return &l, nil
}

func (m *MemoryListingRepo) FindByCategory(_ context.Context, category string) ([]models.Listing, error) {
	if m.NotReady {
		return nil, db.ErrNotReady
	}
	out := []models.Listing{}
	for _, l := range m.Listings {
		if strings.EqualFold(l.Category, category) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MemoryListingRepo) FindByEmail(_ context.Context, email string) ([]models.Listing, error) {
	if m.NotReady {
		return nil, db.ErrNotReady
	}
	out := []models.Listing{}
	for _, l := range m.Listings {
		if l.Email == email {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MemoryListingRepo) Insert(_ context.Context, listing *models.Listing) (primitive.ObjectID, error) {
	if m.NotReady {
		return primitive.NilObjectID, db.ErrNotReady
	}
	return m.Add(*listing), nil
}

func (m *MemoryListingRepo) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	if m.NotReady {
		return 0, db.ErrNotReady
	}
	m.UpdateCalls++
	m.LastUpdate = fields
	if m.ZeroModified {
		return 0, nil
	}
	l, ok := m.Listings[id]
	if !ok {
		return 0, nil
	}
	if name, ok := fields["name"].(string); ok {
		l.Name = name
	}
	if price, ok := fields["price"].(float64); ok {
		l.Price = price
	}
	if email, ok := fields["email"].(string); ok {
		l.Email = email
	}
	m.Listings[id] = l
	return 1, nil
}

func (m *MemoryListingRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if m.NotReady {
		return 0, db.ErrNotReady
	}
	m.DeleteCalls++
	if _, ok := m.Listings[id]; !ok {
		return 0, nil
	}
	delete(m.Listings, id)
	return 1, nil
}

// MemoryOrderRepo is an in-memory OrderRepository.
type MemoryOrderRepo struct {
	Orders   []models.Order
	NotReady bool
}

func (m *MemoryOrderRepo) Insert(_ context.Context, order *models.Order) (primitive.ObjectID, error) {
	if m.NotReady {
		return primitive.NilObjectID, db.ErrNotReady
	}
	id := primitive.NewObjectID()
	stored := *order
	stored.ID = id
	m.Orders = append(m.Orders, stored)
	return id, nil
}

func (m *MemoryOrderRepo) FindByEmail(_ context.Context, email string) ([]models.Order, error) {
	if m.NotReady {
		return nil, db.ErrNotReady
	}
	out := []models.Order{}
	for _, o := range m.Orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}
