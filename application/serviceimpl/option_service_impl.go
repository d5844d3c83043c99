package serviceimpl

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/domain/ports"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/pkg/apperr"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type OptionServiceImpl struct {
	optionRepo repositories.OptionRepository
	guard      services.AccessGuard
	storage    ports.MediaStoragePort
}

func NewOptionService(
	optionRepo repositories.OptionRepository,
	guard services.AccessGuard,
	storage ports.MediaStoragePort,
) services.OptionService {
	return &OptionServiceImpl{
		optionRepo: optionRepo,
		guard:      guard,
		storage:    storage,
	}
}

func (s *OptionServiceImpl) Create(ctx context.Context, actor *utils.UserContext, productID uint, req *dto.CreateOptionRequest) (*models.ProductOption, error) {
	commerceID, err := s.guard.CommerceOfProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeCommerce(ctx, actor, commerceID); err != nil {
		return nil, apperr.NotFound("Product not found")
	}

	option := &models.ProductOption{
		ProductID:     productID,
		Name:          req.Name,
		Required:      req.Required,
		Multiple:      req.Multiple,
		MaxSelections: req.MaxSelections,
	}
	// max_selections มีความหมายเฉพาะตอนเลือกได้หลายตัว
	if !option.Multiple {
		option.MaxSelections = nil
	}

	option.Items = make([]models.OptionItem, len(req.Items))
	for i, payload := range req.Items {
		option.Items[i] = models.OptionItem{
			Name:          payload.Name,
			PriceAddition: payload.PriceAddition,
			Available:     payload.Available == nil || *payload.Available,
		}
	}

	if err := s.optionRepo.Create(ctx, option); err != nil {
		logger.ErrorContext(ctx, "Failed to create option", "product_id", productID, "error", err)
		return nil, apperr.Internal(err)
	}

	logger.InfoContext(ctx, "Option created", "option_id", option.ID, "product_id", productID, "items", len(option.Items))
	return option, nil
}

func (s *OptionServiceImpl) Get(ctx context.Context, actor *utils.UserContext, id uint) (*models.ProductOption, error) {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return nil, err
	}
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Option not found")
	}
	return option, nil
}

func (s *OptionServiceImpl) authorize(ctx context.Context, actor *utils.UserContext, id uint) (uint, error) {
	commerceID, err := s.guard.CommerceOfOption(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.guard.AuthorizeCommerce(ctx, actor, commerceID); err != nil {
		return 0, apperr.NotFound("Option not found")
	}
	return commerceID, nil
}

// Update ทำ diff-by-id reconciliation:
// payload มี id -> update item เดิม, ไม่มี id -> insert,
// item ใน storage ที่หายจาก payload -> delete — ทั้งหมด atomic
// req.Items == nil (field ไม่ส่งมา) = ไม่แตะ items เลย
func (s *OptionServiceImpl) Update(ctx context.Context, actor *utils.UserContext, id uint, req *dto.UpdateOptionRequest) (*models.ProductOption, error) {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return nil, err
	}
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Option not found")
	}

	if req.Name != nil {
		option.Name = *req.Name
	}
	if req.Required != nil {
		option.Required = *req.Required
	}
	if req.Multiple != nil {
		option.Multiple = *req.Multiple
	}
	if req.MaxSelections != nil {
		option.MaxSelections = req.MaxSelections
	}
	if !option.Multiple {
		option.MaxSelections = nil
	}

	var updates, inserts []*models.OptionItem
	var deleteIDs []uint

	if req.Items != nil {
		existing := make(map[uint]*models.OptionItem, len(option.Items))
		for i := range option.Items {
			existing[option.Items[i].ID] = &option.Items[i]
		}

		requested := make(map[uint]bool, len(req.Items))
		for _, payload := range req.Items {
			if payload.ID == nil {
				item := &models.OptionItem{
					Name:          payload.Name,
					PriceAddition: payload.PriceAddition,
					Available:     payload.Available == nil || *payload.Available,
				}
				inserts = append(inserts, item)
				continue
			}

			current, ok := existing[*payload.ID]
			if !ok {
				return nil, apperr.NotFound("Option item not found")
			}
			requested[*payload.ID] = true

			available := current.Available
			if payload.Available != nil {
				available = *payload.Available
			}
			updates = append(updates, &models.OptionItem{
				ID:            *payload.ID,
				Name:          payload.Name,
				PriceAddition: payload.PriceAddition,
				Available:     available,
			})
		}

		for itemID := range existing {
			if !requested[itemID] {
				deleteIDs = append(deleteIDs, itemID)
			}
		}
	}

	if err := s.optionRepo.SyncItems(ctx, option, updates, deleteIDs, inserts); err != nil {
		logger.ErrorContext(ctx, "Failed to update option", "option_id", id, "error", err)
		return nil, apperr.Internal(err)
	}

	fresh, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	logger.InfoContext(ctx, "Option updated", "option_id", id,
		"updated", len(updates), "inserted", len(inserts), "deleted", len(deleteIDs))
	return fresh, nil
}

func (s *OptionServiceImpl) Delete(ctx context.Context, actor *utils.UserContext, id uint) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return apperr.NotFound("Option not found")
	}

	if err := s.optionRepo.DeleteCascade(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete option", "option_id", id, "error", err)
		return apperr.Internal(err)
	}

	for i := range option.Items {
		url := option.Items[i].ImageURL
		if url == "" {
			continue
		}
		if path := s.storage.PathFromURL(url); path != "" {
			if err := s.storage.DeleteFile(path); err != nil {
				logger.WarnContext(ctx, "Failed to delete item image", "path", path, "error", err)
			}
		}
	}

	logger.InfoContext(ctx, "Option deleted", "option_id", id)
	return nil
}

func (s *OptionServiceImpl) UploadItemImage(ctx context.Context, actor *utils.UserContext, itemID uint, file io.Reader, filename, contentType string) (*models.OptionItem, error) {
	commerceID, err := s.guard.CommerceOfItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeCommerce(ctx, actor, commerceID); err != nil {
		return nil, apperr.NotFound("Option item not found")
	}

	item, err := s.optionRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, apperr.NotFound("Option item not found")
	}

	path := fmt.Sprintf("commerces/%d/items/%d-%s%s", commerceID, item.ID, utils.GenerateMediaName(), filepath.Ext(filename))
	url, err := s.storage.UploadFile(file, path, contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload item image", "item_id", itemID, "error", err)
		return nil, apperr.Internal(err)
	}

	oldURL := item.ImageURL
	item.ImageURL = url
	if err := s.optionRepo.UpdateItem(ctx, item); err != nil {
		logger.ErrorContext(ctx, "Failed to save item image URL", "item_id", itemID, "error", err)
		return nil, apperr.Internal(err)
	}

	if oldURL != "" {
		if oldPath := s.storage.PathFromURL(oldURL); oldPath != "" {
			if err := s.storage.DeleteFile(oldPath); err != nil {
				logger.WarnContext(ctx, "Failed to delete old item image", "path", oldPath, "error", err)
			}
		}
	}
	return item, nil
}
