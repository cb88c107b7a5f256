package mocks

import (
	"context"

	"github.com/mahir-soa/FYP/domain"
)

// MockExpenseRepository implements domain.ExpenseRepository for testing
type MockExpenseRepository struct {
	FindAllFunc  func(ctx context.Context) ([]domain.Expense, error)
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Expense, error)
	CreateFunc   func(ctx context.Context, expense *domain.Expense) error
	UpdateFunc   func(ctx context.Context, expense *domain.Expense) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func NewMockExpenseRepository() *MockExpenseRepository { return &MockExpenseRepository{} }

func (m *MockExpenseRepository) FindAll(ctx context.Context) ([]domain.Expense, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Expense{}, nil
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uint) (*domain.Expense, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, expense)
	}
	return nil
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, expense)
	}
	return nil
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ domain.ExpenseRepository = (*MockExpenseRepository)(nil)

// MockSubscriptionRepository implements domain.SubscriptionRepository for testing
type MockSubscriptionRepository struct {
	FindAllFunc  func(ctx context.Context) ([]domain.Subscription, error)
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Subscription, error)
	CreateFunc   func(ctx context.Context, sub *domain.Subscription) error
	UpdateFunc   func(ctx context.Context, sub *domain.Subscription) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{}
}

func (m *MockSubscriptionRepository) FindAll(ctx context.Context) ([]domain.Subscription, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Subscription{}, nil
}

func (m *MockSubscriptionRepository) FindByID(ctx context.Context, id uint) (*domain.Subscription, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrSubscriptionNotFound
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	return nil
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ domain.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

// MockFareRepository implements domain.FareRepository for testing
type MockFareRepository struct {
	CountFunc               func(ctx context.Context) (int64, error)
	CreateFunc              func(ctx context.Context, fare *domain.Fare) error
	FindByTransportTypeFunc func(ctx context.Context, transportType string) (*domain.Fare, error)
	FindByZonesFunc         func(ctx context.Context, transportType string, fromZone, toZone int) (*domain.Fare, error)
}

func NewMockFareRepository() *MockFareRepository { return &MockFareRepository{} }

func (m *MockFareRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockFareRepository) Create(ctx context.Context, fare *domain.Fare) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fare)
	}
	return nil
}

func (m *MockFareRepository) FindByTransportType(ctx context.Context, transportType string) (*domain.Fare, error) {
	if m.FindByTransportTypeFunc != nil {
		return m.FindByTransportTypeFunc(ctx, transportType)
	}
	return nil, domain.ErrFareNotFound
}

func (m *MockFareRepository) FindByZones(ctx context.Context, transportType string, fromZone, toZone int) (*domain.Fare, error) {
	if m.FindByZonesFunc != nil {
		return m.FindByZonesFunc(ctx, transportType, fromZone, toZone)
	}
	return nil, domain.ErrFareNotFound
}

var _ domain.FareRepository = (*MockFareRepository)(nil)

// MockConversationRepository implements domain.ConversationRepository for testing
type MockConversationRepository struct {
	FindAllFunc      func(ctx context.Context) ([]domain.Conversation, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Conversation, error)
	CreateFunc       func(ctx context.Context, conv *domain.Conversation) error
	UpdateFunc       func(ctx context.Context, conv *domain.Conversation) error
	DeleteFunc       func(ctx context.Context, id uint) error
	FindMessagesFunc func(ctx context.Context, conversationID uint) ([]domain.Message, error)
	AddMessageFunc   func(ctx context.Context, msg *domain.Message) error
}

func NewMockConversationRepository() *MockConversationRepository {
	return &MockConversationRepository{}
}

func (m *MockConversationRepository) FindAll(ctx context.Context) ([]domain.Conversation, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Conversation{}, nil
}

func (m *MockConversationRepository) FindByID(ctx context.Context, id uint) (*domain.Conversation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrConversationNotFound
}

func (m *MockConversationRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, conv)
	}
	return nil
}

func (m *MockConversationRepository) Update(ctx context.Context, conv *domain.Conversation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, conv)
	}
	return nil
}

func (m *MockConversationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockConversationRepository) FindMessages(ctx context.Context, conversationID uint) ([]domain.Message, error) {
	if m.FindMessagesFunc != nil {
		return m.FindMessagesFunc(ctx, conversationID)
	}
	return []domain.Message{}, nil
}

func (m *MockConversationRepository) AddMessage(ctx context.Context, msg *domain.Message) error {
	if m.AddMessageFunc != nil {
		return m.AddMessageFunc(ctx, msg)
	}
	return nil
}

var _ domain.ConversationRepository = (*MockConversationRepository)(nil)

// MockChatService implements domain.ChatService for testing
type MockChatService struct {
	ChatFunc func(ctx context.Context, message string, includeExpenseContext bool) (string, error)
}

func NewMockChatService() *MockChatService { return &MockChatService{} }

func (m *MockChatService) Chat(ctx context.Context, message string, includeExpenseContext bool) (string, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, message, includeExpenseContext)
	}
	return "mock response", nil
}

var _ domain.ChatService = (*MockChatService)(nil)
