package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LoadAll(ctx context.Context) ([]Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Account), args.Error(1)
}

func (m *MockRepository) SaveAll(ctx context.Context, accounts []Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func newService(repo Repository) *Service {
	return NewService(repo, NewRegisterValidator(), slog.Default())
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	mockRepo.On("LoadAll", mock.Anything).Return(nil, nil)
	mockRepo.On("SaveAll", mock.Anything, mock.MatchedBy(func(accounts []Account) bool {
		return len(accounts) == 1 &&
			accounts[0].Identifier == "a@x.com" &&
			accounts[0].Secret == "pw1" &&
			accounts[0].Fund == StartFund &&
			accounts[0].Profile == nil
	})).Return(nil)

	acc, err := service.Register(context.Background(), RegisterRequest{
		Identifier:    " A@X.com ",
		Secret:        "pw1",
		SecretConfirm: "pw1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", acc.Identifier)
	assert.Equal(t, StartFund, acc.Fund)
	assert.False(t, acc.HasProfile())

	mockRepo.AssertExpectations(t)
}

func TestService_Register_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{
			name:    "empty identifier",
			req:     RegisterRequest{Identifier: "", Secret: "pw1", SecretConfirm: "pw1"},
			wantErr: ErrFieldsRequired,
		},
		{
			name:    "empty secret",
			req:     RegisterRequest{Identifier: "a@x.com", Secret: "", SecretConfirm: ""},
			wantErr: ErrFieldsRequired,
		},
		{
			name:    "empty fields win over mismatch",
			req:     RegisterRequest{Identifier: "a@x.com", Secret: "", SecretConfirm: "pw1"},
			wantErr: ErrFieldsRequired,
		},
		{
			name:    "mismatch",
			req:     RegisterRequest{Identifier: "a@x.com", Secret: "pw1", SecretConfirm: "pw2"},
			wantErr: ErrSecretMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newService(mockRepo)

			_, err := service.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			// На ошибке валидации хранилище не трогаем
			mockRepo.AssertNotCalled(t, "LoadAll", mock.Anything)
			mockRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Register_DuplicateCaseInsensitive(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	existing := []Account{{Identifier: "a@x.com", Secret: "pw1", Fund: StartFund}}
	mockRepo.On("LoadAll", mock.Anything).Return(existing, nil)

	_, err := service.Register(context.Background(), RegisterRequest{
		Identifier:    "A@X.COM",
		Secret:        "other",
		SecretConfirm: "other",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	mockRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	mockRepo.On("LoadAll", mock.Anything).Return(nil, errors.New("database error"))

	_, err := service.Register(context.Background(), RegisterRequest{
		Identifier:    "a@x.com",
		Secret:        "pw1",
		SecretConfirm: "pw1",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}

func TestService_Authenticate(t *testing.T) {
	accounts := []Account{
		{Identifier: "a@x.com", Secret: "pw1", Fund: StartFund},
		{Identifier: "b@x.com", Secret: "pw2", Fund: StartFund},
	}

	tests := []struct {
		name       string
		identifier string
		secret     string
		wantErr    error
	}{
		{name: "success", identifier: "a@x.com", secret: "pw1"},
		{name: "identifier is normalized", identifier: " A@X.COM ", secret: "pw1"},
		{name: "wrong secret", identifier: "a@x.com", secret: "wrong", wantErr: ErrInvalidAuth},
		{name: "secret compared exactly", identifier: "a@x.com", secret: "PW1", wantErr: ErrInvalidAuth},
		{name: "unknown identifier", identifier: "nobody@x.com", secret: "pw1", wantErr: ErrInvalidAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newService(mockRepo)
			mockRepo.On("LoadAll", mock.Anything).Return(accounts, nil)

			acc, err := service.Authenticate(context.Background(), tt.identifier, tt.secret)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "a@x.com", acc.Identifier)
			}

			// Аутентификация никогда не пишет в хранилище
			mockRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
		})
	}
}
