package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleImage(t *testing.T, w, h int, asPNG bool) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if asPNG {
		require.NoError(t, png.Encode(buf, img))
	} else {
		require.NoError(t, jpeg.Encode(buf, img, nil))
	}
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	p := NewImageProcessor(1)

	format, err := p.ValidateImage(sampleImage(t, 20, 10, true))
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	_, err = p.ValidateImage([]byte("definitely not an image"))
	assert.Error(t, err)

	p.MaxSize = 10
	_, err = p.ValidateImage(sampleImage(t, 20, 10, false))
	assert.ErrorContains(t, err, "exceeds")
}

func TestRender_HeroProfile(t *testing.T) {
	p := NewImageProcessor(5)
	profile, ok := LookupProfile("hero")
	require.True(t, ok)

	out, err := p.Render(sampleImage(t, 200, 120, false), profile)
	require.NoError(t, err)
	require.Len(t, out, 3)

	desktop, _, err := image.DecodeConfig(bytes.NewReader(out["desktop"].Data))
	require.NoError(t, err)
	assert.Equal(t, 1920, desktop.Width)
	assert.Equal(t, 1080, desktop.Height)
	assert.Equal(t, "image/jpeg", out["mobile"].ContentType)
}

func TestRender_FitKeepsAspectAndPNG(t *testing.T) {
	p := NewImageProcessor(5)
	profile, _ := LookupProfile("logo")

	out, err := p.Render(sampleImage(t, 400, 100, true), profile)
	require.NoError(t, err)

	thumb := out["thumbnail"]
	assert.Equal(t, "png", thumb.Ext)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(thumb.Data))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestRender_PlainHasNoRenditions(t *testing.T) {
	p := NewImageProcessor(5)
	profile, ok := LookupProfile("plain")
	require.True(t, ok)

	out, err := p.Render([]byte("not decoded"), profile)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestProcessOriginal(t *testing.T) {
	p := NewImageProcessor(5)

	favicon, _ := LookupProfile("favicon")
	enc, ok, err := p.ProcessOriginal(sampleImage(t, 64, 64, true), favicon)
	require.NoError(t, err)
	require.True(t, ok)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(enc.Data))
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)

	card, _ := LookupProfile("card")
	_, ok, err = p.ProcessOriginal(sampleImage(t, 64, 64, false), card)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProfileNames(t *testing.T) {
	names := ProfileNames()
	assert.Contains(t, names, "hero")
	assert.Contains(t, names, "plain")
	assert.IsIncreasing(t, names)
}
