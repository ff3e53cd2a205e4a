package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/mock"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

func strPtr(s string) *string { return &s }

func newUserService(t *testing.T) (*User, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	return NewUserService(users, logger.Nop()), users
}

func TestUser_GetUserByID(t *testing.T) {
	svc, users := newUserService(t)

	want := models.User{ID: 7, Email: "ian@gmail.com", FirstName: "Ian"}
	users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(want, nil)

	got, err := svc.GetUserByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUser_GetUserByID_NotFound(t *testing.T) {
	svc, users := newUserService(t)

	users.EXPECT().FindUserByID(gomock.Any(), int64(99)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUserByID(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUser_EditUser(t *testing.T) {
	svc, users := newUserService(t)

	patch := models.EditUserRequest{FirstName: strPtr("Ian"), LastName: strPtr("Doe")}
	want := models.User{ID: 7, Email: "ian@gmail.com", FirstName: "Ian", LastName: "Doe"}

	users.EXPECT().UpdateUser(gomock.Any(), int64(7), patch).Return(want, nil)

	got, err := svc.EditUser(context.Background(), 7, patch)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUser_EditUser_EmptyPatchIsRead(t *testing.T) {
	svc, users := newUserService(t)

	want := models.User{ID: 7, Email: "ian@gmail.com"}
	users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(want, nil)

	got, err := svc.EditUser(context.Background(), 7, models.EditUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUser_EditUser_InvalidEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.EditUser(context.Background(), 7, models.EditUserRequest{Email: strPtr("not-an-email")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUser_EditUser_DuplicateEmail(t *testing.T) {
	svc, users := newUserService(t)

	patch := models.EditUserRequest{Email: strPtr("taken@example.com")}
	users.EXPECT().UpdateUser(gomock.Any(), int64(7), patch).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.EditUser(context.Background(), 7, patch)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}
