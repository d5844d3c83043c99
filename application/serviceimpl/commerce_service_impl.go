package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/domain/ports"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/pkg/apperr"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type CommerceServiceImpl struct {
	commerceRepo repositories.CommerceRepository
	userRepo     repositories.UserRepository
	guard        services.AccessGuard
	storage      ports.MediaStoragePort
}

func NewCommerceService(
	commerceRepo repositories.CommerceRepository,
	userRepo repositories.UserRepository,
	guard services.AccessGuard,
	storage ports.MediaStoragePort,
) services.CommerceService {
	return &CommerceServiceImpl{
		commerceRepo: commerceRepo,
		userRepo:     userRepo,
		guard:        guard,
		storage:      storage,
	}
}

// Create สร้าง commerce + owner ใน transaction เดียว
// subdomain ถูก normalize เป็น slug ก่อนเช็คซ้ำ
func (s *CommerceServiceImpl) Create(ctx context.Context, req *dto.CreateCommerceRequest) (*models.Commerce, *models.User, error) {
	subdomain := slug.Make(req.Subdomain)
	if subdomain == "" {
		return nil, nil, apperr.Validation("Invalid subdomain")
	}

	if _, err := s.commerceRepo.GetBySubdomain(ctx, subdomain); err == nil {
		return nil, nil, apperr.AlreadyExists("subdomain")
	}
	email := strings.ToLower(strings.TrimSpace(req.Owner.Email))
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, nil, apperr.AlreadyExists("email")
	}

	hashed, err := HashPassword(req.Owner.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, nil, apperr.Internal(err)
	}

	commerce := &models.Commerce{
		Name:             req.Name,
		Subdomain:        subdomain,
		BusinessCategory: req.BusinessCategory,
		IsOpen:           true,
		AcceptsPickup:    true,
	}
	owner := &models.User{
		Email:     email,
		Password:  hashed,
		Role:      models.RoleOwner,
		FirstName: req.Owner.FirstName,
		LastName:  req.Owner.LastName,
	}

	if err := s.commerceRepo.CreateWithOwner(ctx, commerce, owner); err != nil {
		// race กับ pre-check ชน unique constraint ได้ — commerce insert มาก่อน user
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperr.AlreadyExists("subdomain")
		}
		logger.ErrorContext(ctx, "Failed to create commerce", "subdomain", subdomain, "error", err)
		return nil, nil, apperr.Internal(err)
	}

	logger.InfoContext(ctx, "Commerce created", "commerce_id", commerce.ID, "subdomain", subdomain, "owner_id", owner.ID)
	return commerce, owner, nil
}

func (s *CommerceServiceImpl) Get(ctx context.Context, actor *utils.UserContext, id uint) (*models.Commerce, error) {
	commerce, err := s.commerceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Commerce not found")
	}
	if err := s.guard.AuthorizeCommerce(ctx, actor, commerce.ID); err != nil {
		return nil, apperr.NotFound("Commerce not found")
	}
	return commerce, nil
}

func (s *CommerceServiceImpl) List(ctx context.Context) ([]*models.Commerce, error) {
	commerces, err := s.commerceRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return commerces, nil
}

func (s *CommerceServiceImpl) Update(ctx context.Context, actor *utils.UserContext, id uint, req *dto.UpdateCommerceRequest) (*models.Commerce, error) {
	commerce, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		commerce.Name = *req.Name
	}
	if req.BusinessCategory != nil {
		commerce.BusinessCategory = *req.BusinessCategory
	}
	if req.IsOpen != nil {
		commerce.IsOpen = *req.IsOpen
	}
	if req.AcceptsDelivery != nil {
		commerce.AcceptsDelivery = *req.AcceptsDelivery
	}
	if req.AcceptsPickup != nil {
		commerce.AcceptsPickup = *req.AcceptsPickup
	}
	if req.DeliveryFee != nil {
		commerce.DeliveryFee = *req.DeliveryFee
	}
	if req.DeliveryTime != nil {
		commerce.DeliveryTime = *req.DeliveryTime
	}
	if req.MinimumOrder != nil {
		commerce.MinimumOrder = *req.MinimumOrder
	}
	if req.Phone != nil {
		commerce.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		commerce.Whatsapp = *req.Whatsapp
	}
	if req.Instagram != nil {
		commerce.Instagram = *req.Instagram
	}
	if req.Facebook != nil {
		commerce.Facebook = *req.Facebook
	}
	if req.Address != nil {
		commerce.Address = *req.Address
	}

	if err := s.commerceRepo.Update(ctx, commerce); err != nil {
		logger.ErrorContext(ctx, "Failed to update commerce", "commerce_id", id, "error", err)
		return nil, apperr.Internal(err)
	}
	return commerce, nil
}

func (s *CommerceServiceImpl) Delete(ctx context.Context, actor *utils.UserContext, id uint) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}

	if err := s.commerceRepo.DeleteCascade(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete commerce", "commerce_id", id, "error", err)
		return apperr.Internal(err)
	}

	// media cleanup หลัง commit — fail แค่ log ไม่ roll back
	prefix := fmt.Sprintf("commerces/%d", id)
	if err := s.storage.DeleteFolder(prefix); err != nil {
		logger.WarnContext(ctx, "Failed to clean up commerce media", "commerce_id", id, "prefix", prefix, "error", err)
	}

	logger.InfoContext(ctx, "Commerce deleted", "commerce_id", id)
	return nil
}

func (s *CommerceServiceImpl) UploadLogo(ctx context.Context, actor *utils.UserContext, id uint, file io.Reader, filename, contentType string) (*models.Commerce, error) {
	return s.uploadImage(ctx, actor, id, file, filename, contentType, "logo")
}

func (s *CommerceServiceImpl) UploadBanner(ctx context.Context, actor *utils.UserContext, id uint, file io.Reader, filename, contentType string) (*models.Commerce, error) {
	return s.uploadImage(ctx, actor, id, file, filename, contentType, "banner")
}

func (s *CommerceServiceImpl) uploadImage(ctx context.Context, actor *utils.UserContext, id uint, file io.Reader, filename, contentType, kind string) (*models.Commerce, error) {
	commerce, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("commerces/%d/%s-%s%s", id, kind, utils.GenerateMediaName(), filepath.Ext(filename))
	url, err := s.storage.UploadFile(file, path, contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload image", "commerce_id", id, "kind", kind, "error", err)
		return nil, apperr.Internal(err)
	}

	oldURL := commerce.LogoURL
	if kind == "banner" {
		oldURL = commerce.BannerURL
	}

	if kind == "banner" {
		commerce.BannerURL = url
	} else {
		commerce.LogoURL = url
	}
	if err := s.commerceRepo.Update(ctx, commerce); err != nil {
		logger.ErrorContext(ctx, "Failed to save image URL", "commerce_id", id, "error", err)
		return nil, apperr.Internal(err)
	}

	s.deleteOldMedia(ctx, oldURL)
	return commerce, nil
}

// deleteOldMedia ลบรูปเก่าแบบ best-effort (URL นอก host ของเราจะ resolve ไม่ได้ ก็ข้าม)
func (s *CommerceServiceImpl) deleteOldMedia(ctx context.Context, url string) {
	if url == "" {
		return
	}
	path := s.storage.PathFromURL(url)
	if path == "" {
		return
	}
	if err := s.storage.DeleteFile(path); err != nil {
		logger.WarnContext(ctx, "Failed to delete old media", "path", path, "error", err)
	}
}
