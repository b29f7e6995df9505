package service

import (
	"context"
	"mime/multipart"
	"path"

	"github.com/Hamdhan7/design-fabric-backend/config"
	"github.com/Hamdhan7/design-fabric-backend/internal/domain"
	"github.com/Hamdhan7/design-fabric-backend/internal/dto"
	"github.com/Hamdhan7/design-fabric-backend/internal/infrastructure/imagestore"
	"github.com/Hamdhan7/design-fabric-backend/internal/repository"
	"github.com/Hamdhan7/design-fabric-backend/pkg/errs"
	"github.com/rs/zerolog/log"
)

type ProductServiceImpl struct {
	repo       repository.CatalogRepository
	imageStore imagestore.ImageStore
	config     *config.Config
}

func CreateProductService(repo repository.CatalogRepository, imageStore imagestore.ImageStore, config *config.Config) ProductService {
	return &ProductServiceImpl{repo: repo, imageStore: imageStore, config: config}
}

// storeImage persists the upload and returns the root-relative URL that gets
// written to the product row. Absolute URLs are composed by the serving
// layer, never stored.
func (s *ProductServiceImpl) storeImage(image *multipart.FileHeader) (*string, error) {
	filename, err := s.imageStore.Save(image)
	if err != nil {
		return nil, err
	}

	url := "/images/" + filename

	return &url, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, payload dto.ProductRequest, image *multipart.FileHeader) (id int64, err error) {
	var imageURL *string
	if image != nil {
		imageURL, err = s.storeImage(image)
		if err != nil {
			return 0, err
		}
	}

	id, err = s.repo.AddProduct(ctx, domain.Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		ImageURL:    imageURL,
	})
	if err != nil {
		return 0, errs.ErrInternalServer
	}

	return id, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, payload dto.ProductRequest, image *multipart.FileHeader) (err error) {
	var imageURL *string
	switch {
	case image != nil:
		imageURL, err = s.storeImage(image)
		if err != nil {
			return err
		}
	case s.config.RetainImageOnUpdate:
		existing, err := s.repo.GetProductByID(ctx, payload.ID)
		if err != nil {
			return errs.ErrInternalServer
		}
		if existing.ID == 0 {
			return errs.ErrProductNotFound
		}
		imageURL = existing.ImageURL
	}

	rowsAffected, err := s.repo.UpdateProduct(ctx, domain.Product{
		ID:          payload.ID,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		ImageURL:    imageURL,
	})
	if err != nil {
		return errs.ErrInternalServer
	}

	if rowsAffected == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return errs.ErrInternalServer
	}

	var rowsAffected int64
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, txRepo repository.CatalogRepository) error {
		if err := txRepo.DeleteOrdersByProductID(ctx, id); err != nil {
			return err
		}

		var err error
		rowsAffected, err = txRepo.DeleteProduct(ctx, id)
		return err
	})
	if err != nil {
		return errs.ErrInternalServer
	}

	// The order-row cleanup stays committed even when the product row was
	// already gone, matching the delete route's observable behavior.
	if rowsAffected == 0 {
		return errs.ErrProductNotFound
	}

	// best effort, the sweep job catches anything missed here
	if product.ImageURL != nil {
		if err := s.imageStore.Remove(*product.ImageURL); err != nil {
			log.Warn().Err(err).Str("component", "DeleteProduct").Msg("failed to remove product image")
		}
	}

	return nil
}

func (s *ProductServiceImpl) SweepOrphanedImages(ctx context.Context) (err error) {
	urls, err := s.repo.GetProductImageURLs(ctx)
	if err != nil {
		return err
	}

	referenced := make(map[string]bool, len(urls))
	for _, url := range urls {
		referenced[path.Base(url)] = true
	}

	filenames, err := s.imageStore.List()
	if err != nil {
		return err
	}

	for _, filename := range filenames {
		if referenced[filename] {
			continue
		}

		if err := s.imageStore.Remove(filename); err != nil {
			log.Warn().Err(err).Str("component", "SweepOrphanedImages").Msg("failed to remove orphaned image")
			continue
		}

		log.Info().Str("component", "SweepOrphanedImages").Str("filename", filename).Msg("removed orphaned image")
	}

	return nil
}
