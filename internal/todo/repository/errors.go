package repository

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrFailedToList    = errors.New("failed to list records")
	ErrFailedToUpdate  = errors.New("failed to update record")
	ErrFailedToDelete  = errors.New("failed to delete records")
	ErrFailedToMigrate = errors.New("failed to migrate schema")
)
