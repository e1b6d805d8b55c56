// Package service provides hand-written test doubles for the domain
// service interfaces.
package service

import (
	"context"

	"bazaar/internal/domain/entity"
	domainservice "bazaar/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher mocks service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderEvent(ctx context.Context, event *domainservice.OrderEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// MockNotificationService mocks service.NotificationService.
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	args := m.Called(ctx, topic, title, body, data)

	return args.Error(0)
}

// MockTokenVerifier mocks service.TokenVerifier.
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Identity), args.Error(1)
}

// MockReceiptService mocks service.ReceiptService.
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) GenerateOrderReceipt(order *entity.Order) ([]byte, error) {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
