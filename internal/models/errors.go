package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicatePhone     = errors.New("models: duplicate phone number")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrInvalidPassword    = errors.New("models: invalid password")
	ErrForbidden          = errors.New("models: forbidden")
)

var (
	ErrRequestNotFound      = errors.New("request not found")
	ErrOfferNotFound        = errors.New("offer not found")
	ErrAlreadyOffered       = errors.New("company already has an offer for this request")
	ErrOfferNotPending      = errors.New("offer is not pending")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrChatNotFound         = errors.New("chat not found")
	ErrFlagNotFound         = errors.New("fraud flag not found")
	ErrVerificationNotFound = errors.New("verification not found")
	ErrReviewClosed         = errors.New("review entry is no longer pending")
	ErrUnlockConfirmation   = errors.New("unlock requires explicit confirmation")
	ErrWithdrawConfirmation = errors.New("withdrawal requires explicit confirmation")
)
