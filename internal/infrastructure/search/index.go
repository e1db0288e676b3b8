package search

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Document kinds
const (
	KindNews         = "news"
	KindEvent        = "event"
	KindProject      = "project"
	KindIndabaxEvent = "indabax_event"
)

// Document là một bản ghi public được index
type Document struct {
	Kind    string `json:"kind"`
	ID      string `json:"entity_id"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
	Date    string `json:"date"` // YYYY-MM-DD, rỗng nếu không có
}

// DocID là id trong index: "<kind>:<entity id>"
func (d Document) DocID() string {
	return DocID(d.Kind, d.ID)
}

func DocID(kind, id string) string {
	return kind + ":" + id
}

// Hit là một kết quả search
type Hit struct {
	Kind    string  `json:"kind"`
	ID      string  `json:"id"`
	Slug    string  `json:"slug"`
	Title   string  `json:"title"`
	Summary string  `json:"summary"`
	Date    string  `json:"date,omitempty"`
	Score   float64 `json:"score"`
}

// Index bọc một bleve index in-memory.
// Rebuild dựng index mới rồi swap để query đang chạy không thấy trạng thái nửa vời.
type Index struct {
	mu    sync.RWMutex
	index bleve.Index
}

// NewIndex tạo index rỗng
func NewIndex() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &Index{index: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = "en"

	keywordField := bleve.NewTextFieldMapping()
	keywordField.Analyzer = keyword.Name

	storedOnly := bleve.NewTextFieldMapping()
	storedOnly.Index = false

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("kind", keywordField)
	doc.AddFieldMappingsAt("entity_id", storedOnly)
	doc.AddFieldMappingsAt("slug", keywordField)
	doc.AddFieldMappingsAt("title", textField)
	doc.AddFieldMappingsAt("summary", textField)
	doc.AddFieldMappingsAt("body", textField)
	doc.AddFieldMappingsAt("date", storedOnly)

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	return im
}

// Upsert thêm hoặc cập nhật một document
func (i *Index) Upsert(doc Document) error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.index.Index(doc.DocID(), doc)
}

// Remove xóa document khỏi index, không có thì bỏ qua
func (i *Index) Remove(kind, id string) error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.index.Delete(DocID(kind, id))
}

// Rebuild thay toàn bộ index bằng docs
func (i *Index) Rebuild(docs []Document) error {
	fresh, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	batch := fresh.NewBatch()
	for _, d := range docs {
		if err := batch.Index(d.DocID(), d); err != nil {
			fresh.Close()
			return fmt.Errorf("batch index %s: %w", d.DocID(), err)
		}
	}
	if err := fresh.Batch(batch); err != nil {
		fresh.Close()
		return fmt.Errorf("commit batch: %w", err)
	}

	i.mu.Lock()
	old := i.index
	i.index = fresh
	i.mu.Unlock()

	return old.Close()
}

// Search match q trên title (boost 3), summary, body; kinds rỗng = mọi loại
func (i *Index) Search(q string, kinds []string, limit int) ([]Hit, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []Hit{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	title := bleve.NewMatchQuery(q)
	title.SetField("title")
	title.SetBoost(3)
	title.SetFuzziness(1)

	summary := bleve.NewMatchQuery(q)
	summary.SetField("summary")

	body := bleve.NewMatchQuery(q)
	body.SetField("body")

	var root query.Query = bleve.NewDisjunctionQuery(title, summary, body)

	if len(kinds) > 0 {
		kindQueries := make([]query.Query, 0, len(kinds))
		for _, k := range kinds {
			tq := bleve.NewTermQuery(k)
			tq.SetField("kind")
			kindQueries = append(kindQueries, tq)
		}
		root = bleve.NewConjunctionQuery(root, bleve.NewDisjunctionQuery(kindQueries...))
	}

	req := bleve.NewSearchRequestOptions(root, limit, 0, false)
	req.Fields = []string{"kind", "entity_id", "slug", "title", "summary", "date"}

	i.mu.RLock()
	res, err := i.index.Search(req)
	i.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, Hit{
			Kind:    fieldString(h.Fields, "kind"),
			ID:      fieldString(h.Fields, "entity_id"),
			Slug:    fieldString(h.Fields, "slug"),
			Title:   fieldString(h.Fields, "title"),
			Summary: fieldString(h.Fields, "summary"),
			Date:    fieldString(h.Fields, "date"),
			Score:   h.Score,
		})
	}
	return hits, nil
}

// Count trả về số document đang có
func (i *Index) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.index.DocCount()
}

func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.index.Close()
}

func fieldString(fields map[string]interface{}, name string) string {
	if v, ok := fields[name].(string); ok {
		return v
	}
	return ""
}
