package mocks

import (
	"context"
	"io"

	"mikes-grill/grill-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type SessionStore struct {
	mock.Mock
}

func NewSessionStore(t testingT) *SessionStore {
	m := &SessionStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SessionStore) CreateSession(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionStore) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	ret := m.Called(ctx, token)
	var session *domain.Session
	if v := ret.Get(0); v != nil {
		session = v.(*domain.Session)
	}
	return session, ret.Error(1)
}

func (m *SessionStore) DeleteSession(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type LoginThrottle struct {
	mock.Mock
}

func NewLoginThrottle(t testingT) *LoginThrottle {
	m := &LoginThrottle{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *LoginThrottle) WaitSeconds(ctx context.Context, username string) (int, error) {
	ret := m.Called(ctx, username)
	return ret.Int(0), ret.Error(1)
}

func (m *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func (m *LoginThrottle) Reset(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

type ContactPublisher struct {
	mock.Mock
}

func NewContactPublisher(t testingT) *ContactPublisher {
	m := &ContactPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ContactPublisher) PublishContact(ctx context.Context, event domain.ContactEvent) error {
	return m.Called(ctx, event).Error(0)
}

type ContactCounter struct {
	mock.Mock
}

func NewContactCounter(t testingT) *ContactCounter {
	m := &ContactCounter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ContactCounter) Summary(ctx context.Context) (domain.ContactSummary, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(domain.ContactSummary), ret.Error(1)
}

func (m *ContactCounter) ResetUnread(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type ImageStore struct {
	mock.Mock
}

func NewImageStore(t testingT) *ImageStore {
	m := &ImageStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ImageStore) Save(filename string, content io.Reader) (string, error) {
	ret := m.Called(filename, content)
	return ret.String(0), ret.Error(1)
}
