package engine

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"go.mydb/internal/storage"
)

var (
	ErrSyntax                = errors.New("syntax error")
	ErrNegativeID            = errors.New("id must be positive")
	ErrStringTooLong         = errors.New("string is too long")
	ErrUnrecognizedStatement = errors.New("unrecognized statement")
)

type StatementType int

const (
	StatementInsert StatementType = iota
	StatementSelect
)

type Statement struct {
	Type StatementType
	Row  storage.Row
}

// Prepare parses one input line:
//
//	insert <id> <username> <email>
//	select
func Prepare(line string) (Statement, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Statement{}, ErrUnrecognizedStatement
	}

	switch fields[0] {
	case "insert":
		return prepareInsert(fields[1:])
	case "select":
		return Statement{Type: StatementSelect}, nil
	default:
		return Statement{}, ErrUnrecognizedStatement
	}
}

func prepareInsert(args []string) (Statement, error) {
	if len(args) != 3 {
		return Statement{}, ErrSyntax
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange) || id > math.MaxUint32:
		return Statement{}, ErrSyntax
	case err != nil || id < 1:
		// a non-numeric id reads as 0
		return Statement{}, ErrNegativeID
	}

	username, email := args[1], args[2]
	if len(username) > storage.ColumnUsernameSize || len(email) > storage.ColumnEmailSize {
		return Statement{}, ErrStringTooLong
	}

	return Statement{
		Type: StatementInsert,
		Row: storage.Row{
			ID:       uint32(id),
			Username: username,
			Email:    email,
		},
	}, nil
}
