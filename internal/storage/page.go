package storage

const PageSize = 4096

// TableMaxPages is the capacity of the page cache and the highest page
// number (exclusive) a Pager will hand out.
const TableMaxPages = 100

type NodeType uint8

const (
	NodeTypeInternal NodeType = iota
	NodeTypeLeaf
)

type Page struct {
	ID   uint32
	Data []byte
}

func NewPage(id uint32) *Page {
	return &Page{
		ID:   id,
		Data: make([]byte, PageSize),
	}
}
