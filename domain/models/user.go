package models

import (
	"time"
)

// Role ของ user ในระบบ
type Role string

const (
	RoleSuperuser Role = "SUPERUSER" // global admin, ไม่ผูกกับ commerce
	RoleOwner     Role = "OWNER"     // เจ้าของ commerce เดียว
)

type User struct {
	ID         uint   `gorm:"primaryKey"`
	Email      string `gorm:"size:255;uniqueIndex;not null"`
	Password   string `gorm:"not null"` // bcrypt hash
	Role       Role   `gorm:"size:20;not null;default:'OWNER'"`
	CommerceID *uint  `gorm:"index"` // null เฉพาะ SUPERUSER
	FirstName  string `gorm:"size:50"`
	LastName   string `gorm:"size:50"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Commerce *Commerce `gorm:"foreignKey:CommerceID"`
}

func (User) TableName() string {
	return "users"
}

// IsSuperuser ตรวจสอบว่าเป็น superuser (ข้าม tenant scoping ได้)
func (u *User) IsSuperuser() bool {
	return u.Role == RoleSuperuser
}
