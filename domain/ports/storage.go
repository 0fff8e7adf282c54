package ports

import "io"

// StoragePort คือ interface หลักสำหรับ storage
// ทำให้เปลี่ยน storage provider ได้ง่าย (Local, S3, etc.)
type StoragePort interface {
	// UploadFile อัปโหลดไฟล์ไปยัง storage
	// path: เส้นทางที่จะเก็บไฟล์ (เช่น "avatars/uuid.png")
	// return: URL ที่เข้าถึงไฟล์ได้
	UploadFile(file io.Reader, path string, contentType string) (string, error)

	// DeleteFile ลบไฟล์จาก storage (ไฟล์ไม่มีอยู่ = สำเร็จ)
	DeleteFile(path string) error

	// GetFileURL รับ URL สำหรับเข้าถึงไฟล์
	GetFileURL(path string) string

	// GetProviderName ชื่อ provider (local, s3)
	GetProviderName() string
}
