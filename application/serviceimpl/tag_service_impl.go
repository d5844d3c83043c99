package serviceimpl

import (
	"context"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/pkg/apperr"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type TagServiceImpl struct {
	tagRepo repositories.TagRepository
	guard   services.AccessGuard
}

func NewTagService(tagRepo repositories.TagRepository, guard services.AccessGuard) services.TagService {
	return &TagServiceImpl{
		tagRepo: tagRepo,
		guard:   guard,
	}
}

func (s *TagServiceImpl) List(ctx context.Context, actor *utils.UserContext, commerceID *uint) ([]*models.Tag, error) {
	cid, err := resolveCommerceID(actor, commerceID)
	if err != nil {
		return nil, err
	}
	tags, err := s.tagRepo.ListByCommerce(ctx, cid)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return tags, nil
}

func (s *TagServiceImpl) Create(ctx context.Context, actor *utils.UserContext, req *dto.CreateTagRequest) (*models.Tag, error) {
	cid, err := resolveCommerceID(actor, req.CommerceID)
	if err != nil {
		return nil, err
	}
	if !models.ValidTagType(req.Type) {
		return nil, apperr.Validation("Invalid tag type")
	}

	tag := &models.Tag{
		CommerceID:       cid,
		Name:             req.Name,
		Color:            req.Color,
		TextColor:        req.TextColor,
		Type:             req.Type,
		Visible:          req.Visible == nil || *req.Visible,
		Priority:         req.Priority,
		Discount:         req.Discount,
		DisableSelection: req.DisableSelection,
		IsRecommended:    req.IsRecommended,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		logger.ErrorContext(ctx, "Failed to create tag", "commerce_id", cid, "error", err)
		return nil, apperr.Internal(err)
	}

	logger.InfoContext(ctx, "Tag created", "tag_id", tag.ID, "type", tag.Type, "commerce_id", cid)
	return tag, nil
}

func (s *TagServiceImpl) authorize(ctx context.Context, actor *utils.UserContext, id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Tag not found")
	}
	if err := s.guard.AuthorizeCommerce(ctx, actor, tag.CommerceID); err != nil {
		return nil, apperr.NotFound("Tag not found")
	}
	return tag, nil
}

func (s *TagServiceImpl) Update(ctx context.Context, actor *utils.UserContext, id uint, req *dto.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}
	if req.TextColor != nil {
		tag.TextColor = *req.TextColor
	}
	if req.Visible != nil {
		tag.Visible = *req.Visible
	}
	if req.Priority != nil {
		tag.Priority = *req.Priority
	}
	if req.Discount != nil {
		tag.Discount = req.Discount
	}
	if req.DisableSelection != nil {
		tag.DisableSelection = *req.DisableSelection
	}
	if req.IsRecommended != nil {
		tag.IsRecommended = *req.IsRecommended
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		logger.ErrorContext(ctx, "Failed to update tag", "tag_id", id, "error", err)
		return nil, apperr.Internal(err)
	}
	return tag, nil
}

func (s *TagServiceImpl) Delete(ctx context.Context, actor *utils.UserContext, id uint) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete tag", "tag_id", id, "error", err)
		return apperr.Internal(err)
	}
	logger.InfoContext(ctx, "Tag deleted", "tag_id", id)
	return nil
}

// Assign แปะ tag กับ target — ชนิดของ tag กำหนดว่า target คืออะไร
// (product/option/item) ทั้ง tag และ target ต้องอยู่ commerce เดียวกัน
// แปะซ้ำเป็น no-op
func (s *TagServiceImpl) Assign(ctx context.Context, actor *utils.UserContext, tagID, targetID uint) error {
	tag, targetCommerce, err := s.resolvePair(ctx, actor, tagID, targetID)
	if err != nil {
		return err
	}

	switch tag.Type {
	case models.TagTypeProduct:
		err = s.tagRepo.AssignToProduct(ctx, tagID, targetID)
	case models.TagTypeOption:
		err = s.tagRepo.AssignToOption(ctx, tagID, targetID)
	case models.TagTypeItem:
		err = s.tagRepo.AssignToItem(ctx, tagID, targetID)
	default:
		return apperr.Validation("Invalid tag type")
	}
	if err != nil {
		logger.ErrorContext(ctx, "Failed to assign tag", "tag_id", tagID, "target_id", targetID, "error", err)
		return apperr.Internal(err)
	}

	logger.InfoContext(ctx, "Tag assigned", "tag_id", tagID, "target_id", targetID, "type", tag.Type, "commerce_id", targetCommerce)
	return nil
}

func (s *TagServiceImpl) Unassign(ctx context.Context, actor *utils.UserContext, tagID, targetID uint) error {
	tag, _, err := s.resolvePair(ctx, actor, tagID, targetID)
	if err != nil {
		return err
	}

	switch tag.Type {
	case models.TagTypeProduct:
		err = s.tagRepo.UnassignFromProduct(ctx, tagID, targetID)
	case models.TagTypeOption:
		err = s.tagRepo.UnassignFromOption(ctx, tagID, targetID)
	case models.TagTypeItem:
		err = s.tagRepo.UnassignFromItem(ctx, tagID, targetID)
	default:
		return apperr.Validation("Invalid tag type")
	}
	if err != nil {
		logger.ErrorContext(ctx, "Failed to unassign tag", "tag_id", tagID, "target_id", targetID, "error", err)
		return apperr.Internal(err)
	}
	return nil
}

// resolvePair ตรวจสามเงื่อนไขก่อนแตะ join table:
// tag อยู่ใน scope ของ caller, target (resolve ตามชนิด tag) อยู่ใน scope,
// และทั้งคู่อยู่ commerce เดียวกัน (กัน superuser แปะข้าม commerce)
func (s *TagServiceImpl) resolvePair(ctx context.Context, actor *utils.UserContext, tagID, targetID uint) (*models.Tag, uint, error) {
	tag, err := s.authorize(ctx, actor, tagID)
	if err != nil {
		return nil, 0, err
	}

	var targetCommerce uint
	switch tag.Type {
	case models.TagTypeProduct:
		targetCommerce, err = s.guard.CommerceOfProduct(ctx, targetID)
	case models.TagTypeOption:
		targetCommerce, err = s.guard.CommerceOfOption(ctx, targetID)
	case models.TagTypeItem:
		targetCommerce, err = s.guard.CommerceOfItem(ctx, targetID)
	default:
		return nil, 0, apperr.Validation("Invalid tag type")
	}
	if err != nil {
		return nil, 0, err
	}

	if err := s.guard.AuthorizeCommerce(ctx, actor, targetCommerce); err != nil {
		return nil, 0, apperr.NotFound("Target not found")
	}
	if tag.CommerceID != targetCommerce {
		return nil, 0, apperr.NotFound("Target not found")
	}
	return tag, targetCommerce, nil
}
