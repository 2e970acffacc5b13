package storage

import (
	"fmt"
	"io"
)

func PrintConstants(w io.Writer) {
	fmt.Fprintf(w, "ROW_SIZE: %d\n", RowSize)
	fmt.Fprintf(w, "COMMON_NODE_HEADER_SIZE: %d\n", CommonNodeHeaderSize)
	fmt.Fprintf(w, "LEAF_NODE_HEADER_SIZE: %d\n", LeafHeaderSize)
	fmt.Fprintf(w, "LEAF_NODE_CELL_SIZE: %d\n", LeafCellSize)
	fmt.Fprintf(w, "LEAF_NODE_SPACE_FOR_CELLS: %d\n", LeafSpaceForCells)
	fmt.Fprintf(w, "LEAF_NODE_MAX_CELLS: %d\n", LeafMaxCells)
}

// PrintTree writes the root leaf's cell keys in on-page order.
func (t *Table) PrintTree(w io.Writer) error {
	leaf, err := t.root()
	if err != nil {
		return err
	}

	numCells := leaf.NumCells()
	fmt.Fprintf(w, "leaf (size %d)\n", numCells)
	for i := uint32(0); i < numCells; i++ {
		fmt.Fprintf(w, "  - %d : %d\n", i, leaf.Key(i))
	}
	return nil
}
