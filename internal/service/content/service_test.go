package content

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	contentRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/content"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/imageproc"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
)

type fakeRepo struct {
	items     map[uuid.UUID]*domain.ContentItem
	err       error
	created   int
	lastLimit uint64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[uuid.UUID]*domain.ContentItem)}
}

func (f *fakeRepo) Create(_ context.Context, item *domain.ContentItem) (*domain.ContentItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created++
	item.ID = uuid.New()
	item.CreatedAt = time.Date(2025, 5, 1, 10, f.created, 0, 0, time.UTC)
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, contentRepo.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeRepo) ListByCollection(_ context.Context, collection domain.Collection, category string, limit uint64) ([]*domain.ContentItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.ContentItem
	for _, item := range f.items {
		if item.Collection == collection && (category == "" || item.Category == category) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && uint64(len(out)) > limit {
		out = out[:limit]
	}
	f.lastLimit = limit
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, collection domain.Collection, id uuid.UUID) error {
	item, ok := f.items[id]
	if !ok || item.Collection != collection {
		return contentRepo.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeMedia struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (f *fakeMedia) Put(_ context.Context, key, contentType string, body []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.key, f.contentType, f.body = key, contentType, body
	return "https://cdn.example.com/" + key, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestParseCollection(t *testing.T) {
	c, err := ParseCollection(" Gallery ")
	require.NoError(t, err)
	assert.Equal(t, domain.CollectionGallery, c)

	_, err = ParseCollection("bookings")
	assert.ErrorIs(t, err, ErrInvalidCollection)
}

func TestCreate_PriceRules(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, imageproc.Options{}, logger.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CollectionMerchandise, &models.CreateItemRequest{Title: "Poster"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, domain.CollectionGallery, &models.CreateItemRequest{Title: "Dunes", PriceCents: ptr.Ptr(int64(100))})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, domain.CollectionPresets, &models.CreateItemRequest{Title: "Warm", PriceCents: ptr.Ptr(int64(-1))})
	assert.ErrorIs(t, err, ErrInvalidInput)

	item, err := svc.Create(ctx, domain.CollectionMerchandise, &models.CreateItemRequest{Title: " Poster ", PriceCents: ptr.Ptr(int64(1500))})
	require.NoError(t, err)
	assert.Equal(t, "Poster", item.Title)
	assert.Equal(t, "merchandise", item.Collection)
}

func TestCreate_RequiresTitle(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, imageproc.Options{}, logger.Nop())

	_, err := svc.Create(context.Background(), domain.CollectionGallery, &models.CreateItemRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAndDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, imageproc.Options{}, logger.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CollectionGallery, &models.CreateItemRequest{Title: "Dunes", Category: "landscape"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CollectionGallery, &models.CreateItemRequest{Title: "Bride", Category: "wedding"})
	require.NoError(t, err)

	list, err := svc.List(ctx, domain.CollectionGallery, "landscape", 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Dunes", list.Items[0].Title)

	id := uuid.MustParse(created.ID)
	assert.ErrorIs(t, svc.Delete(ctx, domain.CollectionVideos, id), ErrItemNotFound)
	require.NoError(t, svc.Delete(ctx, domain.CollectionGallery, id))
	assert.ErrorIs(t, svc.Delete(ctx, domain.CollectionGallery, id), ErrItemNotFound)

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrItemNotFound)

	repo.err = errors.New("down")
	_, err = svc.List(ctx, domain.CollectionGallery, "", 0)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestList_BlogNewestFirstWithLimit(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, imageproc.Options{}, logger.Nop())
	ctx := context.Background()

	for _, title := range []string{"Wedding tips", "Portrait lighting", "Corporate video", "Studio tour"} {
		_, err := svc.Create(ctx, domain.CollectionBlog, &models.CreateItemRequest{Title: title})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, domain.CollectionTestimonials, &models.CreateItemRequest{Title: "Sarah", Description: "Perfect day"})
	require.NoError(t, err)

	list, err := svc.List(ctx, domain.CollectionBlog, "", 3)
	require.NoError(t, err)
	assert.Equal(t, "blog", list.Collection)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Studio tour", list.Items[0].Title)
	assert.Equal(t, "Portrait lighting", list.Items[2].Title)

	all, err := svc.List(ctx, domain.CollectionTestimonials, "", 0)
	require.NoError(t, err)
	require.Len(t, all.Items, 1)
	assert.Equal(t, "Sarah", all.Items[0].Title)

	_, err = svc.List(ctx, domain.CollectionBlog, "", 10_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(MaxListLimit), repo.lastLimit)
}

func TestCreate_TestimonialsAndBlogAreNotSellable(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, imageproc.Options{}, logger.Nop())

	for _, c := range []domain.Collection{domain.CollectionTestimonials, domain.CollectionBlog} {
		_, err := svc.Create(context.Background(), c, &models.CreateItemRequest{Title: "Priced", PriceCents: ptr.Ptr(int64(100))})
		assert.ErrorIs(t, err, ErrInvalidInput, string(c))
	}
}

func TestUploadMedia_ResizesImages(t *testing.T) {
	media := &fakeMedia{}
	svc := NewService(newFakeRepo(), media, imageproc.Options{MaxDimension: 200, Quality: 70}, logger.Nop())

	resp, err := svc.UploadMedia(context.Background(), domain.CollectionGallery, "DSC_0001.PNG", pngBytes(t, 400, 100))
	require.NoError(t, err)

	assert.True(t, resp.Resized)
	assert.Equal(t, 200, resp.Width)
	assert.Equal(t, 50, resp.Height)
	assert.Equal(t, imageproc.ContentTypeWebP, media.contentType)
	assert.True(t, strings.HasPrefix(media.key, "gallery/"))
	assert.True(t, strings.HasSuffix(media.key, ".webp"))
	assert.Equal(t, "https://cdn.example.com/"+media.key, resp.URL)
}

func TestUploadMedia_FallsBackToOriginalBytes(t *testing.T) {
	media := &fakeMedia{}
	svc := NewService(newFakeRepo(), media, imageproc.Options{}, logger.Nop())

	data := []byte("not really an mp4 but close enough")
	resp, err := svc.UploadMedia(context.Background(), domain.CollectionVideos, "reel.MP4", data)
	require.NoError(t, err)

	assert.False(t, resp.Resized)
	assert.Equal(t, data, media.body)
	assert.True(t, strings.HasPrefix(media.key, "videos/"))
	assert.True(t, strings.HasSuffix(media.key, ".mp4"))
}

func TestUploadMedia_Errors(t *testing.T) {
	ctx := context.Background()

	disabled := NewService(newFakeRepo(), nil, imageproc.Options{}, logger.Nop())
	_, err := disabled.UploadMedia(ctx, domain.CollectionGallery, "a.png", []byte{1})
	assert.ErrorIs(t, err, ErrMediaDisabled)

	svc := NewService(newFakeRepo(), &fakeMedia{err: errors.New("denied")}, imageproc.Options{}, logger.Nop())
	_, err = svc.UploadMedia(ctx, domain.CollectionGallery, "a.png", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UploadMedia(ctx, domain.CollectionGallery, "a.bin", []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrUpload)
}
