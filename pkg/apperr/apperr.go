package apperr

import (
	"errors"
	"fmt"
)

// Kind ของ error ที่ layer บนใช้ map เป็น HTTP status
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindAlreadyExists
	KindUnauthenticated
)

// Error คือ domain error กลางของระบบ
// raw storage error ห้ามหลุดไปถึง response — ต้องถูกแปลงเป็น Error ก่อนเสมอ
type Error struct {
	Kind    Kind
	Message string
	Field   string // ใช้กับ AlreadyExists เพื่อบอก field ที่ซ้ำ
	Err     error  // underlying error (log เท่านั้น ไม่ส่งให้ client)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// AlreadyExists ใช้ตอน unique constraint ซ้ำ (subdomain, email)
func AlreadyExists(field string) *Error {
	return &Error{
		Kind:    KindAlreadyExists,
		Message: fmt.Sprintf("%s already exists", field),
		Field:   field,
	}
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf คืน Kind ของ error; error ที่ไม่รู้จักถือเป็น Internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsForbidden(err error) bool {
	return KindOf(err) == KindForbidden
}
