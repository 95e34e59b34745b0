package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// DefaultMaxDimension максимальная длина большей стороны после ресайза
	DefaultMaxDimension = 1920
	// DefaultQuality качество WebP (0-100)
	DefaultQuality = 80
	// DefaultMaxPixels предел площади исходного изображения (50 Мп)
	DefaultMaxPixels = 50_000_000

	// ContentTypeWebP тип содержимого результата
	ContentTypeWebP = "image/webp"
)

// ErrUnsupportedImage возвращается, когда содержимое не удалось декодировать как изображение
var ErrUnsupportedImage = errors.New("imageproc: unsupported image")

// ErrImageTooLarge возвращается, если заголовок объявляет слишком большой холст
var ErrImageTooLarge = errors.New("imageproc: image too large")

// Options параметры ресайза
type Options struct {
	MaxDimension int
	Quality      float32
	MaxPixels    int // 0 - DefaultMaxPixels
}

// Result результат обработки
type Result struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// Resize уменьшает изображение так, чтобы большая сторона не превышала MaxDimension,
// и перекодирует его в WebP. Изображения меньше лимита не увеличиваются.
func Resize(data []byte, opts Options) (*Result, error) {
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = DefaultMaxDimension
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = DefaultQuality
	}

	if opts.MaxPixels <= 0 {
		opts.MaxPixels = DefaultMaxPixels
	}

	// Размеры из заголовка проверяются до выделения памяти под пиксели
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(opts.MaxPixels) {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	width, height := fitWithin(src.Bounds().Dx(), src.Bounds().Dy(), opts.MaxDimension)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("imageproc: encode webp: %w", err)
	}

	return &Result{
		Data:        buf.Bytes(),
		ContentType: ContentTypeWebP,
		Width:       width,
		Height:      height,
	}, nil
}

// fitWithin вычисляет размеры с сохранением пропорций
func fitWithin(width, height, maxDimension int) (int, int) {
	longest := width
	if height > longest {
		longest = height
	}
	if longest <= maxDimension {
		return width, height
	}

	ratio := float64(maxDimension) / float64(longest)
	w := int(float64(width) * ratio)
	h := int(float64(height) * ratio)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
