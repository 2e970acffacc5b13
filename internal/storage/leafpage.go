package storage

import "encoding/binary"

// Common node header
const (
	nodeTypeSize         = 1
	nodeTypeOffset       = 0
	isRootSize           = 1
	isRootOffset         = nodeTypeOffset + nodeTypeSize
	parentPointerSize    = 4
	parentPointerOffset  = isRootOffset + isRootSize
	CommonNodeHeaderSize = nodeTypeSize + isRootSize + parentPointerSize
)

// Leaf node header and body
const (
	leafNumCellsSize   = 4
	leafNumCellsOffset = CommonNodeHeaderSize
	LeafHeaderSize     = CommonNodeHeaderSize + leafNumCellsSize

	leafKeySize       = 4
	leafKeyOffset     = 0
	leafValueSize     = RowSize
	leafValueOffset   = leafKeyOffset + leafKeySize
	LeafCellSize      = leafKeySize + leafValueSize
	LeafSpaceForCells = PageSize - LeafHeaderSize
	LeafMaxCells      = LeafSpaceForCells / LeafCellSize
)

// LeafNode interprets a page buffer as a header followed by an array of
// (key, row) cells. It never does I/O and never owns the buffer.
type LeafNode struct {
	Page *Page
}

func WrapLeafNode(page *Page) *LeafNode {
	return &LeafNode{Page: page}
}

// NewLeafNode initializes page as an empty, non-root leaf.
func NewLeafNode(page *Page) *LeafNode {
	leaf := WrapLeafNode(page)
	leaf.Page.Data[nodeTypeOffset] = byte(NodeTypeLeaf)
	leaf.SetRoot(false)
	leaf.SetParent(0)
	leaf.SetNumCells(0)
	return leaf
}

func (leaf *LeafNode) Type() NodeType {
	return NodeType(leaf.Page.Data[nodeTypeOffset])
}

func (leaf *LeafNode) IsRoot() bool {
	return leaf.Page.Data[isRootOffset] == 1
}

func (leaf *LeafNode) SetRoot(root bool) {
	var b byte
	if root {
		b = 1
	}
	leaf.Page.Data[isRootOffset] = b
}

func (leaf *LeafNode) Parent() uint32 {
	return binary.LittleEndian.Uint32(leaf.Page.Data[parentPointerOffset : parentPointerOffset+parentPointerSize])
}

func (leaf *LeafNode) SetParent(id uint32) {
	binary.LittleEndian.PutUint32(leaf.Page.Data[parentPointerOffset:parentPointerOffset+parentPointerSize], id)
}

func (leaf *LeafNode) NumCells() uint32 {
	return binary.LittleEndian.Uint32(leaf.Page.Data[leafNumCellsOffset : leafNumCellsOffset+leafNumCellsSize])
}

func (leaf *LeafNode) SetNumCells(n uint32) {
	binary.LittleEndian.PutUint32(leaf.Page.Data[leafNumCellsOffset:leafNumCellsOffset+leafNumCellsSize], n)
}

func cellOffset(i uint32) int {
	return LeafHeaderSize + int(i)*LeafCellSize
}

// Cell returns the whole byte range of cell i.
func (leaf *LeafNode) Cell(i uint32) []byte {
	off := cellOffset(i)
	return leaf.Page.Data[off : off+LeafCellSize]
}

func (leaf *LeafNode) Key(i uint32) uint32 {
	off := cellOffset(i) + leafKeyOffset
	return binary.LittleEndian.Uint32(leaf.Page.Data[off : off+leafKeySize])
}

func (leaf *LeafNode) SetKey(i uint32, key uint32) {
	off := cellOffset(i) + leafKeyOffset
	binary.LittleEndian.PutUint32(leaf.Page.Data[off:off+leafKeySize], key)
}

// Value returns the encoded row of cell i.
func (leaf *LeafNode) Value(i uint32) []byte {
	off := cellOffset(i) + leafValueOffset
	return leaf.Page.Data[off : off+leafValueSize]
}

// InsertCell places (key, row) at position pos, shifting later cells one slot
// right. Keys are not checked for order.
func (leaf *LeafNode) InsertCell(pos uint32, key uint32, row Row) error {
	numCells := leaf.NumCells()
	if numCells >= LeafMaxCells {
		// splitting is not implemented
		return ErrTableFull
	}

	if pos < numCells {
		for i := numCells; i > pos; i-- {
			copy(leaf.Cell(i), leaf.Cell(i-1))
		}
	}

	leaf.SetNumCells(numCells + 1)
	leaf.SetKey(pos, key)
	SerializeRow(row, leaf.Value(pos))
	return nil
}
