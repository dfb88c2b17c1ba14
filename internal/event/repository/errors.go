package repository

import "errors"

// Backend failures. Not-found is never an error in this domain; these cover
// genuine storage faults (sqlite I/O, scan failures).
var (
	ErrFailedToInsert = errors.New("failed to insert events")
	ErrFailedToUpdate = errors.New("failed to update event")
	ErrFailedToDelete = errors.New("failed to delete event")
	ErrFailedToGet    = errors.New("failed to get event")
	ErrFailedToList   = errors.New("failed to list events")
)
