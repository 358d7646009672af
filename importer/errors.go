package importer

import (
	"errors"
	"fmt"
)

// ErrConfigSanity - the dataset list cannot be imported as configured
var ErrConfigSanity = errors.New("config is insane")

// StorageWriteError - an area could not be persisted. The import of every
// dataset is stopped when this happens.
type StorageWriteError struct {
	DatasetID string
	Area      string
	Err       error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("%s: error saving area %s: %s", e.DatasetID, e.Area, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}

// IsFatal - whether err must end the whole run
func IsFatal(err error) bool {
	var writeErr *StorageWriteError
	return errors.As(err, &writeErr)
}
