package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage giữ OFFSET trong khoảng int an toàn, page lớn hơn chỉ trả trang rỗng
	MaxPage = 100000
)

// ListParams là các tham số chung của mọi list endpoint
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Ordering string
}

// ParseListParams đọc page, page_size, search, ordering từ query string
func ParseListParams(values url.Values) ListParams {
	p := ListParams{
		Page:     1,
		PageSize: DefaultPageSize,
		Search:   strings.TrimSpace(values.Get("search")),
		Ordering: strings.TrimSpace(values.Get("ordering")),
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		p.Page = page
	}
	if size, err := strconv.Atoi(values.Get("page_size")); err == nil && size > 0 {
		p.PageSize = size
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p ListParams) Limit() int { return p.PageSize }

func (p ListParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Page là một trang kết quả
type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	PageSize int
}

func NewPage[T any](items []T, total int, p ListParams) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: p.Page, PageSize: p.PageSize}
}

// =====================================================
// WHERE BUILDER
// =====================================================

// Builder gom điều kiện WHERE viết bằng placeholder "?" rồi đánh số lại thành $n
type Builder struct {
	clauses []string
	args    []any
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Where thêm một clause, số "?" phải khớp số args
func (b *Builder) Where(clause string, args ...any) *Builder {
	b.clauses = append(b.clauses, clause)
	b.args = append(b.args, args...)
	return b
}

// Eq thêm "col = ?" khi filter được set
func Eq[T any](b *Builder, col string, value *T) *Builder {
	if value == nil {
		return b
	}
	return b.Where(col+" = ?", *value)
}

// Search thêm (col1 ILIKE ? OR col2 ILIKE ? ...) cho term không rỗng
func (b *Builder) Search(term string, cols ...string) *Builder {
	term = strings.TrimSpace(term)
	if term == "" || len(cols) == 0 {
		return b
	}

	pattern := "%" + escapeLike(term) + "%"
	parts := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		parts[i] = col + " ILIKE ?"
		args[i] = pattern
	}
	return b.Where("("+strings.Join(parts, " OR ")+")", args...)
}

// SQL trả về " WHERE ..." (đã đánh số $n từ startAt) và args
func (b *Builder) SQL(startAt int) (string, []any) {
	if len(b.clauses) == 0 {
		return "", nil
	}
	where := " WHERE " + strings.Join(b.clauses, " AND ")
	return Rebind(where, startAt), b.args
}

// Args trả về args đã gom
func (b *Builder) Args() []any {
	return b.args
}

// Rebind đổi lần lượt từng "?" thành $startAt, $startAt+1, ...
func Rebind(sql string, startAt int) string {
	var sb strings.Builder
	n := startAt
	for _, ch := range sql {
		if ch == '?' {
			sb.WriteString("$" + strconv.Itoa(n))
			n++
			continue
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// =====================================================
// ORDERING
// =====================================================

// Ordering whitelist field API → cột SQL, kèm ordering mặc định
type Ordering struct {
	Allowed map[string]string
	Default []string
}

// Clause dựng " ORDER BY ..." từ chuỗi kiểu "-date,title".
// Field không nằm trong whitelist bị bỏ qua; không còn field nào → dùng Default.
func (o Ordering) Clause(ordering string) string {
	fields := splitOrdering(ordering)
	parts := o.build(fields)
	if len(parts) == 0 {
		parts = o.build(o.Default)
	}
	if len(parts) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func (o Ordering) build(fields []string) []string {
	var parts []string
	for _, f := range fields {
		dir := "ASC"
		if strings.HasPrefix(f, "-") {
			dir = "DESC"
			f = f[1:]
		}
		col, ok := o.Allowed[f]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", quoteColumn(col), dir))
	}
	return parts
}

func splitOrdering(ordering string) []string {
	var fields []string
	for _, f := range strings.Split(ordering, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// quoteColumn quote từng phần của "alias.column"
func quoteColumn(col string) string {
	parts := strings.Split(col, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

// =====================================================
// FILTER PARSING
// =====================================================

// BoolParam parse "true/false/1/0", không có hoặc sai → nil
func BoolParam(values url.Values, key string) *bool {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// IntParam parse số nguyên, không có hoặc sai → nil
func IntParam(values url.Values, key string) *int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// StringParam trả về nil khi rỗng
func StringParam(values url.Values, key string) *string {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}
