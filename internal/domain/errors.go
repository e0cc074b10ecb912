package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrLocationNotFound    = errors.New("location not found")
	ErrPartnershipNotFound = errors.New("partnership not found")

	// ErrPendingPartnershipExists is returned by the repository when a
	// concurrent writer already created a pending partnership claiming one of
	// the participants. It is resolved internally by re-reading the winning
	// row and never reaches the HTTP layer.
	ErrPendingPartnershipExists = errors.New("pending partnership already exists")

	// ErrDependencyNotReady signals that a required dependent row (a profile
	// for one of the participants) could not be materialized before the
	// partnership write.
	ErrDependencyNotReady = errors.New("dependent profile row not ready")

	ErrSamePartnership       = errors.New("participants must differ")
	ErrInvalidStatusChange   = errors.New("invalid partnership status change")
	ErrPartnershipNotPending = errors.New("partnership is not pending")
)
