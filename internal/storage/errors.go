package storage

import (
	"errors"
	"fmt"
)

var (
	// pager
	ErrPageOutOfBounds = errors.New("page number out of bounds")
	ErrPageNotLoaded   = errors.New("tried to flush a page that was never loaded")
	ErrPagerClosed     = errors.New("pager is closed")
	ErrCorruptFile     = errors.New("file is corrupt")
	// leaf
	ErrTableFull = errors.New("table full")
	// rows
	ErrFieldTooLong = errors.New("field exceeds fixed width")
)

// IOError reports a failed seek, read, write or close on the database file.
type IOError struct {
	Op   string
	Page uint32
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s page %d: %v", e.Op, e.Page, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err leaves the table in a state the caller should
// not keep using. A full table or an oversized field is an ordinary result.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrTableFull) && !errors.Is(err, ErrFieldTooLong)
}
