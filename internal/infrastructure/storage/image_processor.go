package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"sort"

	_ "image/gif"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ResizeMode: Fill crop đúng kích thước, Fit giữ tỉ lệ trong khung
type ResizeMode string

const (
	ResizeFill ResizeMode = "fill"
	ResizeFit  ResizeMode = "fit"
)

// Rendition là một kích thước sinh ra từ ảnh gốc
type Rendition struct {
	Name   string
	Width  int
	Height int
	Mode   ResizeMode
}

// Profile là tập rendition áp cho một loại field ảnh.
// Process != nil thì chính ảnh gốc cũng được resize trước khi lưu.
type Profile struct {
	Name       string
	Process    *Rendition
	Renditions []Rendition
}

// ===== PROFILES =====
var profiles = map[string]Profile{
	"hero": {Name: "hero", Renditions: []Rendition{
		{Name: "desktop", Width: 1920, Height: 1080, Mode: ResizeFill},
		{Name: "tablet", Width: 1024, Height: 768, Mode: ResizeFill},
		{Name: "mobile", Width: 768, Height: 576, Mode: ResizeFill},
	}},
	"card": {Name: "card", Renditions: []Rendition{
		{Name: "thumbnail", Width: 400, Height: 300, Mode: ResizeFill},
	}},
	"square": {Name: "square", Renditions: []Rendition{
		{Name: "thumbnail", Width: 150, Height: 150, Mode: ResizeFill},
	}},
	"logo": {Name: "logo", Renditions: []Rendition{
		{Name: "thumbnail", Width: 200, Height: 100, Mode: ResizeFit},
	}},
	"site_logo": {Name: "site_logo", Process: &Rendition{Name: "original", Width: 300, Height: 100, Mode: ResizeFit}},
	"favicon":   {Name: "favicon", Process: &Rendition{Name: "original", Width: 32, Height: 32, Mode: ResizeFill}},
	"gallery": {Name: "gallery", Renditions: []Rendition{
		{Name: "thumbnail", Width: 400, Height: 300, Mode: ResizeFill},
	}},
	"plain": {Name: "plain"},
}

// LookupProfile trả về profile theo tên
func LookupProfile(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// ProfileNames sorted, dùng cho message validate
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type ImageProcessor struct {
	MaxSize int64 // bytes (default: 5MB)
}

func NewImageProcessor(maxMB int) *ImageProcessor {
	if maxMB <= 0 {
		maxMB = 5
	}
	return &ImageProcessor{MaxSize: int64(maxMB) * 1024 * 1024}
}

// ValidateImage check size và format (jpeg/png/webp), trả về format
func (p *ImageProcessor) ValidateImage(data []byte) (string, error) {
	if int64(len(data)) > p.MaxSize {
		return "", fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png", "webp":
		return format, nil
	default:
		return "", fmt.Errorf("image format %s not allowed (only jpeg/png/webp)", format)
	}
}

// EncodedImage là một rendition đã encode
type EncodedImage struct {
	Data        []byte
	ContentType string
	Ext         string
}

// Render sinh mọi rendition của profile.
// PNG giữ PNG (logo/favicon cần alpha), còn lại encode JPEG chất lượng 85.
func (p *ImageProcessor) Render(data []byte, profile Profile) (map[string]EncodedImage, error) {
	if len(profile.Renditions) == 0 {
		return map[string]EncodedImage{}, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	out := make(map[string]EncodedImage, len(profile.Renditions))
	for _, r := range profile.Renditions {
		enc, err := encode(resize(img, r), format == "png")
		if err != nil {
			return nil, fmt.Errorf("cannot encode %s: %w", r.Name, err)
		}
		out[r.Name] = enc
	}
	return out, nil
}

// ProcessOriginal resize ảnh gốc theo profile.Process.
// Profile không có Process → ok=false, caller lưu nguyên bytes upload.
func (p *ImageProcessor) ProcessOriginal(data []byte, profile Profile) (EncodedImage, bool, error) {
	if profile.Process == nil {
		return EncodedImage{}, false, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return EncodedImage{}, false, fmt.Errorf("cannot decode image: %w", err)
	}
	enc, err := encode(resize(img, *profile.Process), format == "png")
	if err != nil {
		return EncodedImage{}, false, fmt.Errorf("cannot encode original: %w", err)
	}
	return enc, true, nil
}

func resize(img image.Image, r Rendition) image.Image {
	if r.Mode == ResizeFit {
		return imaging.Fit(img, r.Width, r.Height, imaging.Lanczos)
	}
	return imaging.Fill(img, r.Width, r.Height, imaging.Center, imaging.Lanczos)
}

func encode(img image.Image, keepPNG bool) (EncodedImage, error) {
	b := new(bytes.Buffer)
	if keepPNG {
		if err := png.Encode(b, img); err != nil {
			return EncodedImage{}, err
		}
		return EncodedImage{Data: b.Bytes(), ContentType: "image/png", Ext: "png"}, nil
	}
	if err := jpeg.Encode(b, img, &jpeg.Options{Quality: 85}); err != nil {
		return EncodedImage{}, err
	}
	return EncodedImage{Data: b.Bytes(), ContentType: "image/jpeg", Ext: "jpg"}, nil
}
