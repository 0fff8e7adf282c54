package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dev utility: ล้างข้อมูลทั้งหมดใน database
// ใช้: go run scripts/clear_all_data.go
func main() {
	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	dbname := envOr("DB_NAME", "taskboard")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("⚠️  Clearing ALL data from", dbname)

	// todos ก่อน users (FK โดยพฤตินัยผ่าน user_id)
	if err := db.Exec("DELETE FROM todos").Error; err != nil {
		log.Fatal("Failed to clear todos:", err)
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		log.Fatal("Failed to clear users:", err)
	}

	fmt.Println("✅ Done")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
