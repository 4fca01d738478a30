package service

import (
	"testing"

	"go-traceability/internal/model"
	"go-traceability/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	user := &model.User{
		Email:     "ops@example.com",
		FirstName: "Ada",
		LastName:  "Ops",
		Role:      model.RoleAdmin,
		IsActive:  true,
	}
	require.NoError(t, user.SetPassword(password))
	return user
}

func TestLoginIssuesToken(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewAuthService(users)

	users.On("FindByEmail", "ops@example.com").Return(activeUser(t, "secret123"), nil)

	resp, err := svc.Login("ops@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "ops@example.com", claims.Email)
	require.Equal(t, model.RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewAuthService(users)

	users.On("FindByEmail", "ops@example.com").Return(activeUser(t, "secret123"), nil)

	_, err := svc.Login("ops@example.com", "wrong")
	require.EqualError(t, err, "invalid email or password")
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewAuthService(users)

	users.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login("ghost@example.com", "secret123")
	require.EqualError(t, err, "invalid email or password")
}

func TestLoginDisabledAccount(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewAuthService(users)

	user := activeUser(t, "secret123")
	user.IsActive = false
	users.On("FindByEmail", "ops@example.com").Return(user, nil)

	_, err := svc.Login("ops@example.com", "secret123")
	require.EqualError(t, err, "account is disabled")
}
