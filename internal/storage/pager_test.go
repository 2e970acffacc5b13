package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"go.mydb/internal/storage"
)

func openTestPager(t *testing.T) (*storage.Pager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pager.db")

	pager, err := storage.OpenPager(path, nil)
	require.NoError(t, err)
	return pager, path
}

func TestPagerOpenCreatesFile(t *testing.T) {
	pager, path := openTestPager(t)
	defer pager.Close()

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(0), info.Size())
	require.Equal(t, uint32(0), pager.NumPages())
}

func TestPagerOpenCountsPartialPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.db")
	require.NoError(t, os.WriteFile(path, make([]byte, storage.PageSize+100), 0600))

	pager, err := storage.OpenPager(path, nil)
	require.NoError(t, err)
	defer pager.Close()

	require.Equal(t, uint32(2), pager.NumPages())
	require.Equal(t, int64(storage.PageSize+100), pager.FileLength())
}

func TestPagerGetPageOutOfBounds(t *testing.T) {
	pager, _ := openTestPager(t)
	defer pager.Close()

	for _, id := range []uint32{storage.TableMaxPages, storage.TableMaxPages + 50} {
		page, err := pager.GetPage(id)
		require.Nil(t, page)
		require.ErrorIs(t, err, storage.ErrPageOutOfBounds)
		require.True(t, storage.IsFatal(err))
	}

	require.Equal(t, uint32(0), pager.NumPages())
	require.Equal(t, float64(0), testutil.ToFloat64(pager.Metrics().ResidentPages))
	require.Equal(t, float64(0), testutil.ToFloat64(pager.Metrics().CacheMisses))
}

func TestPagerGetPageCachesBuffer(t *testing.T) {
	pager, _ := openTestPager(t)
	defer pager.Close()

	first, err := pager.GetPage(3)
	require.NoError(t, err)
	require.Equal(t, uint32(4), pager.NumPages())
	require.Equal(t, make([]byte, storage.PageSize), first.Data)

	first.Data[0] = 42
	second, err := pager.GetPage(3)
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, byte(42), second.Data[0])

	m := pager.Metrics()
	require.Equal(t, float64(1), testutil.ToFloat64(m.CacheMisses))
	require.Equal(t, float64(1), testutil.ToFloat64(m.CacheHits))
	require.Equal(t, float64(0), testutil.ToFloat64(m.DiskReads))
	require.Equal(t, float64(1), testutil.ToFloat64(m.ResidentPages))
}

func TestPagerFlushUnloadedPage(t *testing.T) {
	pager, _ := openTestPager(t)
	defer pager.Close()

	err := pager.Flush(2)
	require.ErrorIs(t, err, storage.ErrPageNotLoaded)
	require.True(t, storage.IsFatal(err))
}

func TestPagerFlushWritesWholePage(t *testing.T) {
	pager, path := openTestPager(t)

	page, err := pager.GetPage(1)
	require.NoError(t, err)
	page.Data[storage.PageSize-1] = 7

	require.NoError(t, pager.Flush(1))
	require.Equal(t, int64(2*storage.PageSize), pager.FileLength())
	require.Equal(t, float64(1), testutil.ToFloat64(pager.Metrics().PageFlushes))
	require.NoError(t, pager.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 2*storage.PageSize)
	require.Equal(t, byte(7), data[2*storage.PageSize-1])
}

func TestPagerCloseReleasesPages(t *testing.T) {
	pager, path := openTestPager(t)

	page, err := pager.GetPage(0)
	require.NoError(t, err)
	copy(page.Data, "hello")

	require.NoError(t, pager.Close())
	require.Equal(t, float64(0), testutil.ToFloat64(pager.Metrics().ResidentPages))

	_, err = pager.GetPage(0)
	require.ErrorIs(t, err, storage.ErrPagerClosed)
	require.ErrorIs(t, pager.Close(), storage.ErrPagerClosed)

	reopened, err := storage.OpenPager(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	page, err = reopened.GetPage(0)
	require.NoError(t, err)
	require.Equal(t, "hello", string(page.Data[:5]))
	require.Equal(t, float64(1), testutil.ToFloat64(reopened.Metrics().DiskReads))
}

func TestPagerLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limit.db")

	pager, err := storage.OpenPagerWithLimit(path, 2, nil)
	require.NoError(t, err)
	defer pager.Close()

	_, err = pager.GetPage(1)
	require.NoError(t, err)
	_, err = pager.GetPage(2)
	require.ErrorIs(t, err, storage.ErrPageOutOfBounds)
}

func TestPagerDigests(t *testing.T) {
	pager, _ := openTestPager(t)
	defer pager.Close()

	_, err := pager.GetPage(1)
	require.NoError(t, err)

	digests, err := pager.Digests()
	require.NoError(t, err)
	require.Len(t, digests, 2)
	require.Equal(t, digests[0].Sum, digests[1].Sum)
	require.Len(t, digests[0].Hex(), 64)
}
