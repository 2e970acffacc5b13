package storage

import (
	"fmt"

	"go.mydb/internal/logger"
)

// Table is a single leaf page of rows rooted at page 0.
type Table struct {
	pager    *Pager
	rootPage uint32
	log      *logger.Logger
}

func OpenTable(path string, log *logger.Logger) (*Table, error) {
	return OpenTableWithLimit(path, TableMaxPages, log)
}

func OpenTableWithLimit(path string, maxPages uint32, log *logger.Logger) (*Table, error) {
	if log == nil {
		log = logger.Nop()
	}

	pager, err := OpenPagerWithLimit(path, maxPages, log)
	if err != nil {
		return nil, err
	}

	t := &Table{
		pager:    pager,
		rootPage: 0,
		log:      log,
	}

	// New database file, page 0 becomes an empty root leaf
	if pager.NumPages() == 0 {
		root, err := pager.GetPage(0)
		if err != nil {
			pager.Close()
			return nil, err
		}
		leaf := NewLeafNode(root)
		leaf.SetRoot(true)
		log.Infof("Initialized root leaf in %s", path)
		return t, nil
	}

	if err := t.checkRoot(); err != nil {
		log.Errorf("OpenTable: %s: %v", path, err)
		pager.discard()
		return nil, err
	}

	return t, nil
}

func (t *Table) Pager() *Pager {
	return t.pager
}

func (t *Table) RootPage() uint32 {
	return t.rootPage
}

func (t *Table) root() (*LeafNode, error) {
	page, err := t.pager.GetPage(t.rootPage)
	if err != nil {
		return nil, err
	}
	return WrapLeafNode(page), nil
}

// checkRoot rejects a root page whose header cannot be a leaf of this
// layout, before any cursor indexes cells with it.
func (t *Table) checkRoot() error {
	leaf, err := t.root()
	if err != nil {
		return err
	}
	if leaf.Type() != NodeTypeLeaf {
		return fmt.Errorf("root page %d has node type %d: %w", t.rootPage, leaf.Type(), ErrCorruptFile)
	}
	if n := leaf.NumCells(); n > LeafMaxCells {
		return fmt.Errorf("root page %d holds %d cells, max %d: %w", t.rootPage, n, LeafMaxCells, ErrCorruptFile)
	}
	return nil
}

func (t *Table) NumRows() (uint32, error) {
	leaf, err := t.root()
	if err != nil {
		return 0, err
	}
	return leaf.NumCells(), nil
}

// Insert appends row after the last cell of the root leaf. Rows are kept in
// insertion order, not key order. ErrTableFull is returned once the leaf
// holds LeafMaxCells rows.
func (t *Table) Insert(row Row) error {
	if err := row.Validate(); err != nil {
		return err
	}

	leaf, err := t.root()
	if err != nil {
		return err
	}
	if leaf.NumCells() >= LeafMaxCells {
		t.log.Warnf("Insert: id %d rejected, root leaf holds %d cells", row.ID, leaf.NumCells())
		return ErrTableFull
	}

	cursor, err := t.End()
	if err != nil {
		return err
	}
	return cursor.Insert(row.ID, row)
}

// Scan returns every row in on-page order.
func (t *Table) Scan() ([]Row, error) {
	cursor, err := t.Start()
	if err != nil {
		return nil, err
	}

	var rows []Row
	for !cursor.EndOfTable {
		val, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		rows = append(rows, DeserializeRow(val))

		if err := cursor.Advance(); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// Close flushes all resident pages and closes the database file.
func (t *Table) Close() error {
	return t.pager.Close()
}
