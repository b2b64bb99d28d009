package repository

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrConditionFailed = errors.New("record is not in the expected state")
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToUpdate  = errors.New("failed to update record")
)
