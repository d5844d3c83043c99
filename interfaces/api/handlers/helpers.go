package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam อ่าน path param เป็น uint (id ต้องเป็นจำนวนเต็มบวก)
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// queryUint อ่าน query param เป็น *uint (ไม่ส่งมา = nil)
func queryUint(c *fiber.Ctx, name string) *uint {
	v := c.QueryInt(name, 0)
	if v <= 0 {
		return nil
	}
	u := uint(v)
	return &u
}

// openUpload เปิดไฟล์จาก multipart form พร้อมเช็ค size limit
func openUpload(c *fiber.Ctx, field string, maxSize int64) (multipart.File, *multipart.FileHeader, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Missing file field: "+field)
	}
	if maxSize > 0 && header.Size > maxSize {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "File too large")
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Cannot read uploaded file")
	}
	return file, header, nil
}
