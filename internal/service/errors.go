package service

import "errors"

// 业务层错误。错误分类是面向数据校验的：未登录/身份不符、
// 未找到、冲突 (重名/重复收藏)、空输入。Handler 层把它们映射为
// 带布尔标志的成功态 JSON 封包，而不是不同的 HTTP 状态码。
var (
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrIdentityMismatch     = errors.New("session identity does not match target user")
	ErrUserNotFound         = errors.New("user not found")
	ErrHouseNotFound        = errors.New("house not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrAlreadyCollected     = errors.New("house already collected")
	ErrNotCollected         = errors.New("house not in collection")
	ErrEmptyKeyword         = errors.New("search keyword is empty")
	ErrUnknownField         = errors.New("unknown user info field")
	ErrInvalidRange         = errors.New("invalid price/area range")
	ErrInternalServer       = errors.New("internal server error")
)
