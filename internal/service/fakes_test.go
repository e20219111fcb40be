package service

import (
	"context"
	"sync"
	"time"

	"consulta-ai-be/internal/entity"
	"consulta-ai-be/internal/repository/contract"
	"consulta-ai-be/internal/repository/specification"
	"consulta-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory doubles for the repository contracts. Specifications are
// interpreted by type so service logic runs against the same query shapes
// it uses in production.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.Id] = &copied
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if matchesUser(u, specs) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateNombre(ctx context.Context, id uuid.UUID, nombre string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.Nombre = nombre
	}
	return nil
}

func (r *fakeUserRepo) UpdateProfileImageURL(ctx context.Context, id uuid.UUID, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.ProfileImageURL = url
	}
	return nil
}

func matchesUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
	nextId   int64
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Append(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextId++
	message.Id = r.nextId
	message.CreatedAt = time.Now()
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Message
	for _, m := range r.messages {
		if matchesMessage(m, specs) {
			copied := *m
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchesMessage(m *entity.Message, specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.OwnedBy); ok && m.UserId != s.UserID {
			return false
		}
	}
	return true
}

type fakeUnitOfWork struct {
	users    *fakeUserRepo
	messages *fakeMessageRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return u.users
}

func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository {
	return u.messages
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		uow: &fakeUnitOfWork{
			users:    newFakeUserRepo(),
			messages: newFakeMessageRepo(),
		},
	}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
