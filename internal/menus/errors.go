package menus

import (
	"errors"
	"fmt"
)

var ErrRepository = errors.New("menus: repository failure")

// RepositoryError reports a storage or transport failure during menu lookups.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	if e == nil {
		return ErrRepository.Error()
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %v", ErrRepository.Error(), e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrRepository.Error(), e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func (e *RepositoryError) Is(target error) bool {
	return target == ErrRepository
}
