package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"house-rental/internal/domain"
	"house-rental/internal/repository"
)

// AuthService 负责注册/登录/登出和会话生命周期。
type AuthService struct {
	userRepo repository.UserRepository
	sessions repository.SessionStore
}

// NewAuthService 创建 AuthService 实例。
func NewAuthService(userRepo repository.UserRepository, sessions repository.SessionStore) *AuthService {
	if userRepo == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	if sessions == nil {
		panic("SessionStore cannot be nil for AuthService")
	}
	return &AuthService{userRepo: userRepo, sessions: sessions}
}

// Register 处理用户注册：用户名查重、密码哈希、落库并创建会话。
func (s *AuthService) Register(ctx context.Context, username, password, email string) (*domain.Session, error) {
	logCtx := logrus.WithFields(logrus.Fields{"username": username, "email": email})

	if username == "" || password == "" {
		return nil, ErrAuthenticationFailed
	}

	// 1. 用户名查重
	if _, err := s.userRepo.FindByName(ctx, username); err == nil {
		logCtx.Warn("Registration failed: username already exists")
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		logCtx.WithError(err).Error("Database error checking username")
		return nil, ErrInternalServer
	}

	// 2. 哈希密码
	hashed, err := hashPassword(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, ErrInternalServer
	}

	// 3. 落库；查重和插入之间仍可能并发撞名，由唯一索引兜底
	user := &domain.User{Name: username, Password: hashed, Email: email}
	if err := s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.WithError(err).Warn("Registration failed: duplicate username (unique index)")
			return nil, ErrDuplicateUsername
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, ErrInternalServer
	}

	// 4. 注册即登录：创建会话
	sess, err := s.createSession(ctx, user)
	if err != nil {
		logCtx.WithError(err).Error("Failed to create session after registration")
		return nil, ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User registered successfully")
	return sess, nil
}

// Login 处理用户登录，成功时创建会话。
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	logCtx := logrus.WithField("username", username)

	user, err := s.userRepo.FindByName(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Login attempt failed: user not found")
		} else {
			logCtx.WithError(err).Warn("Login attempt failed: error finding user")
		}
		return nil, ErrAuthenticationFailed // 对客户端统一返回认证失败
	}
	if user == nil {
		return nil, ErrAuthenticationFailed
	}

	if !checkPassword(password, user.Password) {
		logCtx.Warn("Login attempt failed: invalid password")
		return nil, ErrAuthenticationFailed
	}

	sess, err := s.createSession(ctx, user)
	if err != nil {
		logCtx.WithError(err).Error("Failed to create session during login")
		return nil, ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	return sess, nil
}

// Logout 删除会话。
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		logrus.WithError(err).Warn("Failed to delete session during logout")
		return ErrInternalServer
	}
	return nil
}

func (s *AuthService) createSession(ctx context.Context, user *domain.User) (*domain.Session, error) {
	sess := &domain.Session{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		UserName: user.Name,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// hashPassword 使用 bcrypt 对密码进行哈希处理
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// checkPassword 验证提供的密码是否与存储的哈希匹配
func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
