package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"house-rental/internal/domain"
	"house-rental/internal/repository"
)

// UserService 负责收藏、浏览历史和个人资料相关的业务逻辑。
// 所有修改操作都要求会话身份与目标记录的所有者一致，不符则拒绝且不落库。
type UserService struct {
	userRepo  repository.UserRepository
	houseRepo repository.HouseRepository
	sessions  repository.SessionStore
}

// NewUserService 创建 UserService 实例。
func NewUserService(userRepo repository.UserRepository, houseRepo repository.HouseRepository, sessions repository.SessionStore) *UserService {
	if userRepo == nil {
		panic("UserRepository cannot be nil for UserService")
	}
	if houseRepo == nil {
		panic("HouseRepository cannot be nil for UserService")
	}
	if sessions == nil {
		panic("SessionStore cannot be nil for UserService")
	}
	return &UserService{userRepo: userRepo, houseRepo: houseRepo, sessions: sessions}
}

// AddCollection 把房源加入会话用户的收藏；已收藏过时拒绝且不落库。
func (s *UserService) AddCollection(ctx context.Context, sess *domain.Session, houseID uint) error {
	if sess == nil {
		return ErrNotLoggedIn
	}
	logCtx := logrus.WithFields(logrus.Fields{"user_id": sess.UserID, "house_id": houseID})

	user, err := s.userRepo.FindByID(ctx, sess.UserID)
	if err != nil {
		logCtx.WithError(err).Warn("AddCollection: user lookup failed")
		return s.mapUserErr(err)
	}
	if !user.CollectID.Append(houseID) {
		return ErrAlreadyCollected
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		logCtx.WithError(err).Error("AddCollection: save failed")
		return ErrInternalServer
	}
	logCtx.Info("House collected")
	return nil
}

// RemoveCollection 把房源移出收藏。会话身份必须与 userName 一致；
// 未收藏过时拒绝且不落库。
func (s *UserService) RemoveCollection(ctx context.Context, sess *domain.Session, userName string, houseID uint) error {
	if sess == nil {
		return ErrNotLoggedIn
	}
	if sess.UserName != userName {
		return ErrIdentityMismatch
	}
	logCtx := logrus.WithFields(logrus.Fields{"username": userName, "house_id": houseID})

	user, err := s.userRepo.FindByName(ctx, userName)
	if err != nil {
		logCtx.WithError(err).Warn("RemoveCollection: user lookup failed")
		return s.mapUserErr(err)
	}
	if !user.CollectID.Remove(houseID) {
		return ErrNotCollected
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		logCtx.WithError(err).Error("RemoveCollection: save failed")
		return ErrInternalServer
	}
	logCtx.Info("House uncollected")
	return nil
}

// ClearHistory 清空浏览历史。会话身份必须与 userName 一致。
func (s *UserService) ClearHistory(ctx context.Context, sess *domain.Session, userName string) error {
	if sess == nil {
		return ErrNotLoggedIn
	}
	if sess.UserName != userName {
		return ErrIdentityMismatch
	}
	user, err := s.userRepo.FindByName(ctx, userName)
	if err != nil {
		logrus.WithError(err).WithField("username", userName).Warn("ClearHistory: user lookup failed")
		return s.mapUserErr(err)
	}
	user.SeenID = nil
	if err := s.userRepo.Save(ctx, user); err != nil {
		logrus.WithError(err).WithField("username", userName).Error("ClearHistory: save failed")
		return ErrInternalServer
	}
	return nil
}

// ModifyInfo 修改个人资料的单个字段，field ∈ {name, addr, pd, email}。
// 改名时重新查重并同步更新会话中的用户名；未识别的字段拒绝。
func (s *UserService) ModifyInfo(ctx context.Context, sess *domain.Session, field, value string) error {
	if sess == nil {
		return ErrNotLoggedIn
	}
	logCtx := logrus.WithFields(logrus.Fields{"username": sess.UserName, "field": field})

	user, err := s.userRepo.FindByName(ctx, sess.UserName)
	if err != nil {
		logCtx.WithError(err).Warn("ModifyInfo: user lookup failed")
		return s.mapUserErr(err)
	}

	switch field {
	case "name":
		if _, err := s.userRepo.FindByName(ctx, value); err == nil {
			return ErrDuplicateUsername
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			logCtx.WithError(err).Error("ModifyInfo: uniqueness check failed")
			return ErrInternalServer
		}
		user.Name = value
	case "addr":
		user.Addr = value
	case "pd":
		hashed, err := hashPassword(value)
		if err != nil {
			logCtx.WithError(err).Error("ModifyInfo: failed to hash new password")
			return ErrInternalServer
		}
		user.Password = hashed
	case "email":
		user.Email = value
	default:
		return ErrUnknownField
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return ErrDuplicateUsername
		}
		logCtx.WithError(err).Error("ModifyInfo: save failed")
		return ErrInternalServer
	}

	// 改名后同步会话，否则后续请求的身份校验会失败
	if field == "name" {
		sess.UserName = user.Name
		if err := s.sessions.Save(ctx, sess); err != nil {
			logCtx.WithError(err).Warn("ModifyInfo: failed to refresh session after rename")
		}
	}

	logCtx.Info("User info updated")
	return nil
}

// ProfileData 是个人主页数据：用户本身与解析出的收藏/历史房源。
type ProfileData struct {
	User      domain.User
	Collected []domain.House
	Seen      []domain.House
}

// Profile 返回个人主页数据。会话身份必须与 userName 一致。
func (s *UserService) Profile(ctx context.Context, sess *domain.Session, userName string) (*ProfileData, error) {
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	if sess.UserName != userName {
		return nil, ErrIdentityMismatch
	}
	user, err := s.userRepo.FindByName(ctx, userName)
	if err != nil {
		logrus.WithError(err).WithField("username", userName).Warn("Profile: user lookup failed")
		return nil, s.mapUserErr(err)
	}

	collected, err := s.houseRepo.FindByIDs(ctx, user.CollectID)
	if err != nil {
		logrus.WithError(err).Error("Profile: failed to resolve collected houses")
		return nil, ErrInternalServer
	}
	seen, err := s.houseRepo.FindByIDs(ctx, user.SeenID)
	if err != nil {
		logrus.WithError(err).Error("Profile: failed to resolve seen houses")
		return nil, ErrInternalServer
	}

	out := &ProfileData{User: *user, Collected: collected, Seen: seen}
	out.User.Password = "" // 不向外暴露密码哈希
	return out, nil
}

func (s *UserService) mapUserErr(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return ErrInternalServer
}
