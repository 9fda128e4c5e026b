package calsync

import "errors"

var (
	ErrConnectionNotFound  = errors.New("calendar sync connection not found")
	ErrUnsupportedProvider = errors.New("calendar provider not supported")
	ErrInvalidPayload      = errors.New("invalid calendar sync payload")
	ErrTokenRefresh        = errors.New("failed to refresh provider token")
	ErrProviderUnavailable = errors.New("calendar provider unavailable")
)
