package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UploadProductImage struct {
	repo    domain.Repository
	storage media.Storage
}

func NewUploadProductImage(
	repo domain.Repository,
	storage media.Storage,
) *UploadProductImage {
	return &UploadProductImage{
		repo:    repo,
		storage: storage,
	}
}

func (uc *UploadProductImage) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	productID uuid.UUID,
	body io.Reader,
) (*models.Product, error) {

	if uc.storage == nil {
		return nil, httperr.ErrBusiness("image_storage_disabled")
	}

	p, err := uc.repo.GetProduct(ctx, salonID, productID)
	if err != nil {
		return nil, err
	}

	data, err := media.ToWebP(body)
	switch {
	case errors.Is(err, media.ErrTooLarge):
		return nil, httperr.ErrBusiness("image_too_large")
	case errors.Is(err, media.ErrUnsupported):
		return nil, httperr.ErrBusiness("unsupported_image")
	case err != nil:
		return nil, err
	}

	key := fmt.Sprintf("products/%s/%s/%s.webp", salonID, productID, uuid.NewString())
	url, err := uc.storage.Put(ctx, key, data, media.ContentTypeWebP)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SetImageURL(ctx, salonID, productID, url); err != nil {
		return nil, err
	}
	p.ImageURL = url
	return p, nil
}
