package media

import (
	"net/http"
	"net/url"
	"strings"
)

// Variants map tên rendition → storage key, lưu dạng jsonb
type Variants map[string]string

// Resolver biến storage key thành URL public.
// Không bao giờ trả error: thiếu file hay lỗi đều ra nil (JSON null).
type Resolver struct {
	prefix string
}

// NewResolver nhận MEDIA_URL, ví dụ "/media/"
func NewResolver(mediaURL string) *Resolver {
	prefix := "/" + strings.Trim(mediaURL, "/")
	if prefix == "/" {
		prefix = ""
	}
	return &Resolver{prefix: prefix}
}

// Path trả về đường dẫn root-relative của key, "" nếu key rỗng
func (r *Resolver) Path(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	return r.prefix + "/" + strings.TrimLeft(key, "/")
}

// Resolve: key rỗng → nil; base rỗng → path root-relative; có base → URL tuyệt đối.
// Key đã là URL tuyệt đối thì trả nguyên.
func (r *Resolver) Resolve(key, base string) *string {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}

	if isAbsoluteURL(key) {
		return &key
	}

	path := r.Path(key)
	if base == "" {
		return &path
	}

	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil
	}
	ref, err := url.Parse(path)
	if err != nil {
		return nil
	}
	abs := baseURL.ResolveReference(ref).String()
	return &abs
}

// ResolveVariant resolve một variant độc lập với ảnh gốc.
// Variant chưa sinh → nil kể cả khi ảnh gốc có.
func (r *Resolver) ResolveVariant(variants Variants, name, base string) *string {
	if variants == nil {
		return nil
	}
	return r.Resolve(variants[name], base)
}

// ResolveVariantOr fallback sang ảnh gốc khi variant chưa có.
// Chỉ dùng ở chỗ cần chắc chắn có ảnh để hiển thị.
func (r *Resolver) ResolveVariantOr(variants Variants, name, source, base string) *string {
	if u := r.ResolveVariant(variants, name, base); u != nil {
		return u
	}
	return r.Resolve(source, base)
}

// BaseFromRequest dựng scheme://host từ request, có xét X-Forwarded-* của reverse proxy
func BaseFromRequest(req *http.Request) string {
	if req == nil || req.Host == "" {
		return ""
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if proto := req.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	host := req.Host
	if fwdHost := req.Header.Get("X-Forwarded-Host"); fwdHost != "" {
		host = strings.TrimSpace(strings.Split(fwdHost, ",")[0])
	}

	return scheme + "://" + host
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
