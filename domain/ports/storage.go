package ports

import (
	"io"
)

// MediaStoragePort คือ interface สำหรับ media host (รูป logo/banner/product/item)
// ทำให้เปลี่ยน provider ได้ง่าย (Local, MinIO, R2)
type MediaStoragePort interface {
	// UploadFile อัปโหลดไฟล์ไปยัง storage
	// path: เส้นทางที่จะเก็บไฟล์ (เช่น "commerces/12/logo-abcd1234.png")
	// return: URL ที่เข้าถึงไฟล์ได้
	UploadFile(file io.Reader, path string, contentType string) (string, error)

	// DeleteFile ลบไฟล์จาก storage (best-effort — caller log error เอง ไม่ fail request)
	DeleteFile(path string) error

	// DeleteFolder ลบไฟล์ทั้งหมดใต้ prefix (ใช้ตอนลบ commerce ทิ้ง)
	DeleteFolder(prefix string) error

	// GetFileURL รับ URL สำหรับเข้าถึงไฟล์
	GetFileURL(path string) string

	// PathFromURL แปลง URL ที่เก็บใน DB กลับเป็น object path สำหรับลบ
	// คืน empty string ถ้า URL ไม่ได้อยู่ใน storage นี้
	PathFromURL(url string) string

	// GetProviderName ชื่อ provider (local, s3)
	GetProviderName() string
}
