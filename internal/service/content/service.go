package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	contentRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/content"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/imageproc"
)

// MaxListLimit максимальный размер выборки по limit
const MaxListLimit = 100

var validate = validator.New()

// Service сервис контента сайта (галерея, видео, пресеты, мерч)
type Service struct {
	repo   ContentRepository
	media  MediaStore // nil, если загрузка отключена
	resize imageproc.Options
	logger Logger
}

// NewService создает новый экземпляр сервиса контента
func NewService(repo ContentRepository, media MediaStore, resize imageproc.Options, logger Logger) *Service {
	return &Service{
		repo:   repo,
		media:  media,
		resize: resize,
		logger: logger,
	}
}

// ParseCollection проверяет имя коллекции на границе API
func ParseCollection(raw string) (domain.Collection, error) {
	c := domain.Collection(strings.ToLower(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCollection, raw)
	}
	return c, nil
}

// List возвращает элементы коллекции, новые первыми. limit 0 - все элементы,
// значения больше MaxListLimit урезаются
func (s *Service) List(ctx context.Context, collection domain.Collection, category string, limit uint64) (*models.ItemListResponse, error) {
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	items, err := s.repo.ListByCollection(ctx, collection, strings.TrimSpace(category), limit)
	if err != nil {
		s.logger.Error("ListContent: repository error for collection=%s: %v", collection, err)
		return nil, fmt.Errorf("%w: ListContent - repository error: %v", ErrInternal, err)
	}

	out := &models.ItemListResponse{
		Collection: string(collection),
		Items:      make([]models.ItemResponse, 0, len(items)),
	}
	for _, item := range items {
		out.Items = append(out.Items, *models.FromDomainItem(item))
	}

	return out, nil
}

// Get возвращает элемент по ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, contentRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("GetContent: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetContent - repository error: %v", ErrInternal, err)
	}
	return item, nil
}

// Create добавляет элемент в коллекцию
// Цена обязательна для presets и merchandise и запрещена для остальных коллекций
func (s *Service) Create(ctx context.Context, collection domain.Collection, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(req.Category)
	req.MediaURL = strings.TrimSpace(req.MediaURL)

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("CreateContent: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if collection.IsSellable() && req.PriceCents == nil {
		return nil, fmt.Errorf("%w: priceCents is required for %s", ErrInvalidInput, collection)
	}
	if !collection.IsSellable() && req.PriceCents != nil {
		return nil, fmt.Errorf("%w: %s items have no price", ErrInvalidInput, collection)
	}

	item, err := s.repo.Create(ctx, &domain.ContentItem{
		Collection:  collection,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		MediaURL:    req.MediaURL,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		s.logger.Error("CreateContent: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateContent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateContent: created %s item id=%s", collection, item.ID)
	return models.FromDomainItem(item), nil
}

// Delete удаляет элемент коллекции
func (s *Service) Delete(ctx context.Context, collection domain.Collection, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, collection, id); err != nil {
		if errors.Is(err, contentRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("DeleteContent: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteContent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteContent: deleted %s item id=%s", collection, id)
	return nil
}

// UploadMedia загружает файл в объектное хранилище
//
// Изображения уменьшаются и перекодируются в WebP. Если файл не декодируется
// (видео, RAW, повреждённое изображение), загружаются исходные байты.
func (s *Service) UploadMedia(ctx context.Context, collection domain.Collection, filename string, data []byte) (*models.UploadResponse, error) {
	if s.media == nil {
		return nil, ErrMediaDisabled
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	resp := &models.UploadResponse{}
	body := data
	contentType := http.DetectContentType(data)
	ext := strings.ToLower(filepath.Ext(filename))

	result, err := imageproc.Resize(data, s.resize)
	if err != nil {
		s.logger.Warn("UploadMedia: resize skipped for %q, uploading original: %v", filename, err)
	} else {
		body = result.Data
		contentType = result.ContentType
		ext = ".webp"
		resp.Resized = true
		resp.Width = result.Width
		resp.Height = result.Height
	}

	key := fmt.Sprintf("%s/%s%s", collection, uuid.New(), ext)

	url, err := s.media.Put(ctx, key, contentType, body)
	if err != nil {
		s.logger.Error("UploadMedia: failed to upload key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	resp.URL = url
	resp.Key = key
	resp.ContentType = contentType
	resp.Size = len(body)

	s.logger.Info("UploadMedia: uploaded %s (%d bytes, resized=%t)", key, len(body), resp.Resized)
	return resp, nil
}
