// Package db はGORMによるデータベース接続のブートストラップを提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stocks_backend/internal/feature/stocks/domain/entity"
)

// OpenDB は環境変数の接続情報でPostgreSQLに接続し、スキーマをマイグレーションします。
// TranslateErrorを有効にすることで、symbolのユニーク制約違反を
// gorm.ErrDuplicatedKeyとして検出できるようにします。
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	// コンテナ起動直後はDBが未準備の場合があるため、一定時間リトライする
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if err := db.AutoMigrate(&entity.Stock{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
