package pages

import (
	"errors"
	"fmt"
)

var (
	ErrPageNotFound = errors.New("pages: page not found")
	ErrRepository   = errors.New("pages: repository failure")
)

// PageNotFoundError reports a lookup that matched no published page.
type PageNotFoundError struct {
	Key string
}

func (e *PageNotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return ErrPageNotFound.Error()
	}
	return fmt.Sprintf("%s: slug=%s", ErrPageNotFound.Error(), e.Key)
}

func (e *PageNotFoundError) Unwrap() error {
	return ErrPageNotFound
}

// RepositoryError reports a storage or transport failure. It is surfaced
// distinctly from not-found so callers can decide the user-visible fallback.
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
