package storage

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

type PageDigest struct {
	Page uint32
	Sum  [blake2b.Size256]byte
}

func (d PageDigest) Hex() string {
	return hex.EncodeToString(d.Sum[:])
}

// Digests hashes every page the pager knows about, in page order. Pages not
// yet resident are faulted in.
func (pager *Pager) Digests() ([]PageDigest, error) {
	digests := make([]PageDigest, 0, pager.numPages)
	for id := uint32(0); id < pager.numPages; id++ {
		page, err := pager.GetPage(id)
		if err != nil {
			return nil, err
		}
		digests = append(digests, PageDigest{
			Page: id,
			Sum:  blake2b.Sum256(page.Data),
		})
	}
	return digests, nil
}
