package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListParams(t *testing.T) {
	p := ParseListParams(url.Values{})
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	p = ParseListParams(url.Values{
		"page":      {"3"},
		"page_size": {"500"},
		"search":    {"  robotics "},
		"ordering":  {"-date"},
	})
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxPageSize, p.PageSize)
	assert.Equal(t, 200, p.Offset())
	assert.Equal(t, "robotics", p.Search)
	assert.Equal(t, "-date", p.Ordering)

	p = ParseListParams(url.Values{"page": {"-1"}, "page_size": {"abc"}})
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)

	p = ParseListParams(url.Values{"page": {"9223372036854775807"}, "page_size": {"100"}})
	assert.Equal(t, MaxPage, p.Page)
	assert.Positive(t, p.Offset())

	assert.Equal(t, 0, ListParams{PageSize: 10}.Offset())
}

func TestBuilder_SQL(t *testing.T) {
	featured := true
	var category *string

	b := NewBuilder().Where("n.is_published = ?", true)
	Eq(b, "n.is_featured", &featured)
	Eq(b, "c.slug", category)
	b.Search("50%_off", "n.title", "n.excerpt")

	sql, args := b.SQL(1)
	assert.Equal(t, " WHERE n.is_published = $1 AND n.is_featured = $2 AND (n.title ILIKE $3 OR n.excerpt ILIKE $4)", sql)
	assert.Equal(t, []any{true, true, `%50\%\_off%`, `%50\%\_off%`}, args)
}

func TestBuilder_Empty(t *testing.T) {
	sql, args := NewBuilder().Search("   ", "title").SQL(1)
	assert.Empty(t, sql)
	assert.Nil(t, args)
}

func TestRebind(t *testing.T) {
	assert.Equal(t, "a = $3 AND b < $4", Rebind("a = ? AND b < ?", 3))
}

func TestOrdering_Clause(t *testing.T) {
	o := Ordering{
		Allowed: map[string]string{"date": "e.date", "title": "title", "created_at": "e.created_at"},
		Default: []string{"-date", "-created_at"},
	}

	assert.Equal(t, ` ORDER BY "e"."date" DESC, "e"."created_at" DESC`, o.Clause(""))
	assert.Equal(t, ` ORDER BY "title" ASC`, o.Clause("title"))
	assert.Equal(t, ` ORDER BY "title" DESC`, o.Clause("password; DROP TABLE x,-title"))
	assert.Equal(t, ` ORDER BY "e"."date" DESC, "e"."created_at" DESC`, o.Clause("unknown"))
}

func TestParams(t *testing.T) {
	v := url.Values{"is_featured": {"true"}, "start_year": {"2023"}, "bad": {"maybe"}, "category": {"  ml "}}

	assert.Equal(t, true, *BoolParam(v, "is_featured"))
	assert.Nil(t, BoolParam(v, "bad"))
	assert.Nil(t, BoolParam(v, "missing"))
	assert.Equal(t, 2023, *IntParam(v, "start_year"))
	assert.Nil(t, IntParam(v, "bad"))
	assert.Equal(t, "ml", *StringParam(v, "category"))
	assert.Nil(t, StringParam(v, "missing"))
}

func TestNewPage_NeverNilItems(t *testing.T) {
	page := NewPage[int](nil, 0, ListParams{Page: 1, PageSize: 10})
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
