package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"house-rental/internal/domain"
	"house-rental/internal/repository"
	"house-rental/internal/repository/mocks"
	"house-rental/internal/service"
)

func newAuthService(t *testing.T) (*service.AuthService, *mocks.UserRepository, *mocks.SessionStore) {
	t.Helper()
	userRepo := new(mocks.UserRepository)
	sessions := new(mocks.SessionStore)
	return service.NewAuthService(userRepo, sessions), userRepo, sessions
}

func TestAuthService_Register_Success(t *testing.T) {
	// Arrange
	authService, userRepo, sessions := newAuthService(t)
	ctx := context.Background()
	username := "alice"
	password := "pw1"

	// 用户名未被占用
	userRepo.On("FindByName", ctx, username).Return(nil, repository.ErrUserNotFound).Once()
	userRepo.On("Save", ctx, mock.MatchedBy(func(user *domain.User) bool {
		assert.Equal(t, username, user.Name)
		// 密码必须已被哈希
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)))
		return true
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 5 // 模拟数据库分配 ID
	}).Return(nil).Once()
	sessions.On("Save", ctx, mock.MatchedBy(func(sess *domain.Session) bool {
		return sess.UserID == 5 && sess.UserName == username && sess.ID != ""
	})).Return(nil).Once()

	// Act
	sess, err := authService.Register(ctx, username, password, "alice@example.com")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, username, sess.UserName, "会话应持有注册用户的身份")
	userRepo.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	// Arrange
	authService, userRepo, _ := newAuthService(t)
	ctx := context.Background()
	username := "alice"

	// 用户名已存在
	userRepo.On("FindByName", ctx, username).
		Return(&domain.User{ID: 1, Name: username}, nil).Once()

	// Act
	_, err := authService.Register(ctx, username, "pw2", "")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrDuplicateUsername), "重名注册应返回冲突")
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Register_SaveRacesUniqueIndex(t *testing.T) {
	// 查重和插入之间的并发撞名由唯一索引兜底，同样映射为冲突
	authService, userRepo, _ := newAuthService(t)
	ctx := context.Background()

	userRepo.On("FindByName", ctx, "bob").Return(nil, repository.ErrUserNotFound).Once()
	userRepo.On("Save", ctx, mock.AnythingOfType("*domain.User")).
		Return(repository.ErrDuplicateEntry).Once()

	_, err := authService.Register(ctx, "bob", "pw", "")
	assert.True(t, errors.Is(err, service.ErrDuplicateUsername))
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	// Arrange: 注册 alice/pw1，然后用相同凭据登录
	authService, userRepo, sessions := newAuthService(t)
	ctx := context.Background()

	var saved *domain.User
	userRepo.On("FindByName", ctx, "alice").Return(nil, repository.ErrUserNotFound).Once()
	userRepo.On("Save", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.User)
			saved.ID = 1
		}).Return(nil).Once()
	sessions.On("Save", ctx, mock.AnythingOfType("*domain.Session")).Return(nil).Twice()

	_, err := authService.Register(ctx, "alice", "pw1", "")
	require.NoError(t, err)
	require.NotNil(t, saved)

	// Act: 登录时返回注册落库的用户
	userRepo.On("FindByName", ctx, "alice").Return(saved, nil).Once()
	sess, err := authService.Login(ctx, "alice", "pw1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.UserName)
	assert.Equal(t, uint(1), sess.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	// Arrange
	authService, userRepo, _ := newAuthService(t)
	ctx := context.Background()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	userRepo.On("FindByName", ctx, "alice").
		Return(&domain.User{ID: 1, Name: "alice", Password: string(hashed)}, nil).Once()

	// Act
	sess, err := authService.Login(ctx, "alice", "wrong")

	// Assert
	require.Error(t, err)
	assert.Nil(t, sess)
	assert.True(t, errors.Is(err, service.ErrAuthenticationFailed))
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	authService, userRepo, _ := newAuthService(t)
	ctx := context.Background()
	userRepo.On("FindByName", ctx, "ghost").Return(nil, repository.ErrUserNotFound).Once()

	_, err := authService.Login(ctx, "ghost", "pw")
	assert.True(t, errors.Is(err, service.ErrAuthenticationFailed), "对客户端统一返回认证失败")
}

func TestAuthService_Logout(t *testing.T) {
	authService, _, sessions := newAuthService(t)
	ctx := context.Background()
	sessions.On("Delete", ctx, "sid-1").Return(nil).Once()

	assert.NoError(t, authService.Logout(ctx, "sid-1"))
	assert.NoError(t, authService.Logout(ctx, ""), "空会话 ID 是 no-op")
	sessions.AssertExpectations(t)
}
