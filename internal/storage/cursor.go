package storage

// Cursor is a position in the table. It borrows page buffers from the Pager
// for the duration of each call and holds no reference between calls.
type Cursor struct {
	table      *Table
	PageNum    uint32
	CellNum    uint32
	EndOfTable bool
}

// Start positions a cursor at the first cell of the root leaf.
func (t *Table) Start() (*Cursor, error) {
	leaf, err := t.root()
	if err != nil {
		return nil, err
	}

	return &Cursor{
		table:      t,
		PageNum:    t.rootPage,
		CellNum:    0,
		EndOfTable: leaf.NumCells() == 0,
	}, nil
}

// End positions a cursor one past the last cell, the append point.
func (t *Table) End() (*Cursor, error) {
	leaf, err := t.root()
	if err != nil {
		return nil, err
	}

	return &Cursor{
		table:      t,
		PageNum:    t.rootPage,
		CellNum:    leaf.NumCells(),
		EndOfTable: true,
	}, nil
}

func (c *Cursor) leaf() (*LeafNode, error) {
	page, err := c.table.pager.GetPage(c.PageNum)
	if err != nil {
		return nil, err
	}
	return WrapLeafNode(page), nil
}

// Value returns the encoded row under the cursor.
func (c *Cursor) Value() ([]byte, error) {
	leaf, err := c.leaf()
	if err != nil {
		return nil, err
	}
	return leaf.Value(c.CellNum), nil
}

func (c *Cursor) Advance() error {
	leaf, err := c.leaf()
	if err != nil {
		return err
	}

	c.CellNum++
	if c.CellNum >= leaf.NumCells() {
		c.EndOfTable = true
	}
	return nil
}

// Insert writes (key, row) at the cursor position.
func (c *Cursor) Insert(key uint32, row Row) error {
	leaf, err := c.leaf()
	if err != nil {
		return err
	}
	return leaf.InsertCell(c.CellNum, key, row)
}
