package repositories

import (
	"sync"
	"time"

	"figure-store/models"
)

// UserRepository owns the account list. Accounts are never deleted; ids
// auto-increment from 1.
type UserRepository struct {
	mu     sync.Mutex
	users  []models.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: []models.User{}, nextID: 1}
}

// Create registers a new account. Email uniqueness is checked under the same
// lock that appends, so concurrent signups cannot race past it.
func (r *UserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}

	now := time.Now()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.nextID++

	r.users = append(r.users, *user)
	return nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *UserRepository) FindByID(id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// Update replaces the stored account matching user.ID and stamps UpdatedAt.
func (r *UserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			r.users[i] = *user
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *UserRepository) UpdatePassword(id int, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Password = hashedPassword
			r.users[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *UserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
