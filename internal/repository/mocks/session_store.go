package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"house-rental/internal/domain"
)

// SessionStore 是 repository.SessionStore 的 Mock
type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionStore) Find(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	var sess *domain.Session
	if args.Get(0) != nil {
		sess = args.Get(0).(*domain.Session)
	}
	return sess, args.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
