package admin

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	userRepo "supermock/database/repository/user"
	"supermock/models"
)

// ErrUserNotFound is returned by directory lookups for unknown users.
var ErrUserNotFound = errors.New("user not found")

// UserDirectory is the admin-facing view over accounts. The production
// implementation reads from MongoDB; a seeded in-memory one backs demo
// environments and tests.
type UserDirectory interface {
	ListUsers(ctx context.Context, page, limit int, search string) ([]models.User, int64, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// mongoDirectory serves the directory from the user collection.
type mongoDirectory struct {
	repo userRepo.UserRepository
}

// NewMongoDirectory wraps the user repository as a UserDirectory.
func NewMongoDirectory(repo userRepo.UserRepository) UserDirectory {
	return &mongoDirectory{repo: repo}
}

func (d *mongoDirectory) ListUsers(ctx context.Context, page, limit int, search string) ([]models.User, int64, error) {
	return d.repo.List(ctx, page, limit, search)
}

func (d *mongoDirectory) GetUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := d.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// FakeDirectory is an in-memory UserDirectory seeded with fixed accounts.
type FakeDirectory struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewFakeDirectory builds a directory from the given seed users.
func NewFakeDirectory(seed []models.User) *FakeDirectory {
	d := &FakeDirectory{users: make(map[string]models.User, len(seed))}
	for _, u := range seed {
		d.users[u.ID] = u
	}
	return d
}

func (d *FakeDirectory) ListUsers(_ context.Context, page, limit int, search string) ([]models.User, int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	needle := strings.ToLower(search)
	matched := make([]models.User, 0, len(d.users))
	for _, u := range d.users {
		if needle == "" ||
			strings.Contains(strings.ToLower(u.Username), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			matched = append(matched, u)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Email < matched[j].Email })

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []models.User{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (d *FakeDirectory) GetUser(_ context.Context, userID string) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}
