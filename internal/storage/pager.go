package storage

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.mydb/internal/logger"
)

// Pager caches pages of a single database file. Pages are loaded on first
// use and only written back by Flush or Close; nothing is ever evicted.
type Pager struct {
	file       *os.File
	log        *logger.Logger
	metrics    *Metrics
	fileLength int64
	numPages   uint32
	maxPages   uint32
	pages      []*Page
}

func OpenPager(path string, log *logger.Logger) (*Pager, error) {
	return OpenPagerWithLimit(path, TableMaxPages, log)
}

// OpenPagerWithLimit caps the cache at maxPages, which may not exceed
// TableMaxPages.
func OpenPagerWithLimit(path string, maxPages uint32, log *logger.Logger) (*Pager, error) {
	if log == nil {
		log = logger.Nop()
	}
	if maxPages == 0 || maxPages > TableMaxPages {
		maxPages = TableMaxPages
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		log.Errorf("OpenPager: %v", err)
		return nil, &IOError{Op: "open", Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		log.Errorf("OpenPager: stat %s: %v", path, err)
		return nil, &IOError{Op: "stat", Err: err}
	}

	size := info.Size()
	numPages := uint32((size + PageSize - 1) / PageSize)
	if numPages > maxPages {
		f.Close()
		return nil, fmt.Errorf("file spans %d pages, limit is %d: %w", numPages, maxPages, ErrPageOutOfBounds)
	}

	log.Infof("Opened %s: %d bytes, %d pages", path, size, numPages)

	return &Pager{
		file:       f,
		log:        log,
		metrics:    NewMetrics(),
		fileLength: size,
		numPages:   numPages,
		maxPages:   maxPages,
		pages:      make([]*Page, maxPages),
	}, nil
}

func (pager *Pager) NumPages() uint32 {
	return pager.numPages
}

func (pager *Pager) FileLength() int64 {
	return pager.fileLength
}

func (pager *Pager) Metrics() *Metrics {
	return pager.metrics
}

// GetPage returns the cached buffer for id, faulting it in from the file on
// a miss. Pages past the end of the file come back zero filled.
func (pager *Pager) GetPage(id uint32) (*Page, error) {
	if pager.file == nil {
		return nil, ErrPagerClosed
	}
	if id >= pager.maxPages {
		return nil, fmt.Errorf("page %d, max %d: %w", id, pager.maxPages, ErrPageOutOfBounds)
	}

	if page := pager.pages[id]; page != nil {
		pager.metrics.CacheHits.Inc()
		return page, nil
	}

	pager.metrics.CacheMisses.Inc()
	page := NewPage(id)

	pagesOnDisk := uint32((pager.fileLength + PageSize - 1) / PageSize)
	if id < pagesOnDisk {
		// the last page of the file may be partial
		n, err := pager.file.ReadAt(page.Data, int64(id)*PageSize)
		if err != nil && !errors.Is(err, io.EOF) {
			pager.log.Errorf("GetPage: reading page %d: %v", id, err)
			return nil, &IOError{Op: "read", Page: id, Err: err}
		}
		pager.metrics.DiskReads.Inc()
		pager.log.Debugf("Loaded page %d (%d bytes)", id, n)
	}

	pager.pages[id] = page
	pager.metrics.ResidentPages.Inc()

	if id >= pager.numPages {
		pager.numPages = id + 1
	}
	return page, nil
}

// Flush writes the full page id back to the file.
func (pager *Pager) Flush(id uint32) error {
	if pager.file == nil {
		return ErrPagerClosed
	}
	if id >= pager.maxPages {
		return fmt.Errorf("page %d, max %d: %w", id, pager.maxPages, ErrPageOutOfBounds)
	}

	page := pager.pages[id]
	if page == nil {
		return fmt.Errorf("page %d: %w", id, ErrPageNotLoaded)
	}

	n, err := pager.file.WriteAt(page.Data, int64(id)*PageSize)
	if err != nil {
		pager.log.Errorf("Flush: writing page %d: %v", id, err)
		return &IOError{Op: "write", Page: id, Err: err}
	}
	if n != PageSize {
		return &IOError{Op: "write", Page: id, Err: io.ErrShortWrite}
	}

	if end := int64(id+1) * PageSize; end > pager.fileLength {
		pager.fileLength = end
	}

	pager.metrics.PageFlushes.Inc()
	pager.log.Debugf("Flushed page %d", id)
	return nil
}

// Close flushes every resident page, drops the cache and closes the file.
// The pager cannot be used afterwards.
func (pager *Pager) Close() error {
	if pager.file == nil {
		return ErrPagerClosed
	}

	for i, page := range pager.pages {
		if page == nil {
			continue
		}
		if err := pager.Flush(uint32(i)); err != nil {
			return err
		}
		pager.pages[i] = nil
		pager.metrics.ResidentPages.Dec()
	}

	err := pager.file.Close()
	pager.file = nil
	if err != nil {
		pager.log.Errorf("Close: %v", err)
		return &IOError{Op: "close", Err: err}
	}

	pager.log.Infof("Closed database file, %d pages", pager.numPages)
	return nil
}

// discard closes the file without writing anything back.
func (pager *Pager) discard() {
	if pager.file == nil {
		return
	}
	for i, page := range pager.pages {
		if page != nil {
			pager.pages[i] = nil
			pager.metrics.ResidentPages.Dec()
		}
	}
	pager.file.Close()
	pager.file = nil
}
