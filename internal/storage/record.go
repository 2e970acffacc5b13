package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	ColumnUsernameSize = 32
	ColumnEmailSize    = 255
)

// Row layout, text fields carry room for a trailing NUL
const (
	IDSize       = 4
	UsernameSize = ColumnUsernameSize + 1
	EmailSize    = ColumnEmailSize + 1

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	RowSize = IDSize + UsernameSize + EmailSize
)

type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Validate must pass before a row is handed to SerializeRow.
func (r Row) Validate() error {
	if len(r.Username) > ColumnUsernameSize {
		return fmt.Errorf("username is %d bytes, max %d: %w", len(r.Username), ColumnUsernameSize, ErrFieldTooLong)
	}
	if len(r.Email) > ColumnEmailSize {
		return fmt.Errorf("email is %d bytes, max %d: %w", len(r.Email), ColumnEmailSize, ErrFieldTooLong)
	}
	return nil
}

func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}

// SerializeRow writes r into dst[:RowSize]. Text fields are NUL padded.
func SerializeRow(r Row, dst []byte) {
	binary.LittleEndian.PutUint32(dst[IDOffset:IDOffset+IDSize], r.ID)
	putText(dst[UsernameOffset:UsernameOffset+UsernameSize], r.Username)
	putText(dst[EmailOffset:EmailOffset+EmailSize], r.Email)
}

func DeserializeRow(src []byte) Row {
	return Row{
		ID:       binary.LittleEndian.Uint32(src[IDOffset : IDOffset+IDSize]),
		Username: getText(src[UsernameOffset : UsernameOffset+UsernameSize]),
		Email:    getText(src[EmailOffset : EmailOffset+EmailSize]),
	}
}

func putText(field []byte, s string) {
	n := copy(field, s)
	clear(field[n:])
}

func getText(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}
