package search

import (
	"github.com/rs/zerolog/log"
)

// Indexer là phần của Index mà domain service dùng khi admin ghi dữ liệu
type Indexer interface {
	Upsert(doc Document) error
	Remove(kind, id string) error
}

// NopIndexer dùng khi SEARCH_ENABLED=false
type NopIndexer struct{}

func (NopIndexer) Upsert(Document) error       { return nil }
func (NopIndexer) Remove(kind, id string) error { return nil }

// Sync đưa doc vào index nếu public, ngược lại gỡ ra.
// Lỗi index chỉ log, không làm fail request ghi.
func Sync(ix Indexer, doc Document, public bool) {
	if ix == nil {
		return
	}

	var err error
	if public {
		err = ix.Upsert(doc)
	} else {
		err = ix.Remove(doc.Kind, doc.ID)
	}
	if err != nil {
		log.Warn().Err(err).Str("doc", doc.DocID()).Msg("[SEARCH] Failed to sync document")
	}
}

// Forget gỡ doc khỏi index sau khi record bị xoá
func Forget(ix Indexer, kind, id string) {
	if ix == nil {
		return
	}
	if err := ix.Remove(kind, id); err != nil {
		log.Warn().Err(err).Str("doc", DocID(kind, id)).Msg("[SEARCH] Failed to remove document")
	}
}
