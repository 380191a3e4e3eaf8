package usecase_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadflow/internal/entity"
)

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendLandingNotification(to, companyName string, sub entity.LandingSubmission) error {
	args := m.Called(to, companyName, sub)
	return args.Error(0)
}

// MockClientStore
type MockClientStore struct {
	mock.Mock
}

func (m *MockClientStore) ConvertToClient(leadID string) (entity.Client, bool) {
	args := m.Called(leadID)
	return args.Get(0).(entity.Client), args.Bool(1)
}

func (m *MockClientStore) GetClient(id string) (entity.Client, bool) {
	args := m.Called(id)
	return args.Get(0).(entity.Client), args.Bool(1)
}

func (m *MockClientStore) AddClientService(id, service string) (entity.Client, bool) {
	args := m.Called(id, service)
	return args.Get(0).(entity.Client), args.Bool(1)
}

func (m *MockClientStore) AddQuote(in entity.NewQuote) entity.Quote {
	args := m.Called(in)
	return args.Get(0).(entity.Quote)
}

func (m *MockClientStore) AddTimelineEvent(in entity.NewTimelineEvent) entity.TimelineEvent {
	args := m.Called(in)
	return args.Get(0).(entity.TimelineEvent)
}
