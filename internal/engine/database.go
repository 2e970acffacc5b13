package engine

import (
	"io"

	"go.mydb/internal/logger"
	"go.mydb/internal/storage"
)

type Database struct {
	table   *storage.Table
	log     *logger.Logger
	logFile io.Closer
}

func OpenWithLogger(path string, maxPages uint32, log *logger.Logger) (*Database, error) {
	if log == nil {
		log = logger.Nop()
	}

	table, err := storage.OpenTableWithLimit(path, maxPages, log)
	if err != nil {
		return nil, err
	}

	return &Database{
		table: table,
		log:   log,
	}, nil
}

func (db *Database) Table() *storage.Table {
	return db.table
}

// Execute runs a prepared statement. Select returns the rows it read,
// insert returns none.
func (db *Database) Execute(stmt Statement) ([]storage.Row, error) {
	switch stmt.Type {
	case StatementInsert:
		return nil, db.Insert(stmt.Row)
	case StatementSelect:
		return db.Select()
	default:
		return nil, ErrUnrecognizedStatement
	}
}

// Insert appends row. Field widths are checked by the table before the
// row is encoded.
func (db *Database) Insert(row storage.Row) error {
	db.log.Debugf("insert %d %q %q", row.ID, row.Username, row.Email)
	return db.table.Insert(row)
}

func (db *Database) Select() ([]storage.Row, error) {
	db.log.Debugf("select")
	return db.table.Scan()
}

func (db *Database) Close() error {
	err := db.table.Close()
	if err != nil {
		db.log.Errorf("Close: %v", err)
	}
	_ = db.log.Sync()
	if db.logFile != nil {
		db.logFile.Close()
	}
	return err
}
