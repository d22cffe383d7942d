package model

import "errors"

var (
	ErrPartnerNotFound      = errors.New("partner not found")
	ErrPartnerInactive      = errors.New("partner inactive")
	ErrNoCapableProcessor   = errors.New("no capable processor for partner")
	ErrNoFeePolicy          = errors.New("no fee policy effective for partner")
	ErrAuthorizationFailed  = errors.New("authorization failed")
	ErrProcessorUnavailable = errors.New("processor unavailable")
	ErrIntegrity            = errors.New("payload integrity check failed")
	ErrInvalidStatus        = errors.New("invalid payment status")
)
