// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reconcile

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrCatalogRead   = errors.New("catalog read failed")
	ErrDirectoryRead = errors.New("directory read failed")
)

// CatalogReadError reports that the catalog could not be opened, parsed, or
// did not contain the identifier column.
type CatalogReadError struct {
	Source string
	Err    error
}

func (e *CatalogReadError) Error() string {
	return fmt.Sprintf("%v: %v", ErrCatalogRead, e.Err)
}

func (e *CatalogReadError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *CatalogReadError) Is(target error) bool {
	return target == ErrCatalogRead
}

// DirectoryReadError reports that the PDF directory is missing or unreadable.
type DirectoryReadError struct {
	Path string
	Err  error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDirectoryRead, e.Err)
}

func (e *DirectoryReadError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *DirectoryReadError) Is(target error) bool {
	return target == ErrDirectoryRead
}
