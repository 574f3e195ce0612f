package service

import "github.com/avkarpov/itemvault/models"

// requireSuperuser returns [ErrForbidden] unless the caller has the
// superuser flag set.
func requireSuperuser(caller models.User) error {
	if !caller.IsSuperuser {
		return ErrForbidden
	}
	return nil
}

// requireOwnerOrSuperuser returns [ErrForbidden] unless the caller owns the
// resource (caller ID equals ownerID) or is a superuser. This is the single
// access policy shared by user and item operations.
func requireOwnerOrSuperuser(caller models.User, ownerID int64) error {
	if caller.ID == ownerID || caller.IsSuperuser {
		return nil
	}
	return ErrForbidden
}
