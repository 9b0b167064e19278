package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"house-rental/internal/domain"
)

// MigrateDB 执行数据库迁移。
// houses/users 表首次创建时用原生 SQL (显式 utf8mb4，避免中文乱码，
// 并控制 TEXT 列不进唯一索引)；表已存在时交给 AutoMigrate 补列/补索引。
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	if err := migrateTable(db, "houses", createHousesTable, &domain.House{}); err != nil {
		return fmt.Errorf("failed to migrate houses table: %w", err)
	}
	if err := migrateTable(db, "users", createUsersTable, &domain.User{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}

	logrus.Info("Database migration completed successfully")
	return nil
}

// migrateTable 按表是否存在分派到创建 SQL 或 AutoMigrate。
func migrateTable(db *gorm.DB, name string, create func(*gorm.DB) error, model interface{}) error {
	var count int64
	db.Raw("SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?", name).Count(&count)

	if count == 0 {
		return create(db)
	}
	if err := db.AutoMigrate(model); err != nil {
		return fmt.Errorf("failed to auto-migrate %s: %w", name, err)
	}
	logrus.Infof("%s table schema checked/updated successfully", name)
	return nil
}

func createHousesTable(db *gorm.DB) error {
	sql := `
	CREATE TABLE houses (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(191),
		region VARCHAR(64),
		block VARCHAR(64),
		address VARCHAR(191),
		rooms VARCHAR(32),
		rent_type VARCHAR(32),
		price VARCHAR(64),
		area VARCHAR(64),
		publish_time BIGINT,
		page_views BIGINT UNSIGNED DEFAULT 0,
		INDEX idx_houses_region (region),
		INDEX idx_houses_block (block),
		INDEX idx_houses_address (address),
		INDEX idx_houses_rooms (rooms),
		INDEX idx_houses_publish_time (publish_time)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;
	`
	if err := db.Exec(sql).Error; err != nil {
		return fmt.Errorf("failed to create houses table: %w", err)
	}
	logrus.Info("Houses table created successfully")
	return nil
}

func createUsersTable(db *gorm.DB) error {
	sql := `
	CREATE TABLE users (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(191) NOT NULL,
		password TEXT NOT NULL,
		email VARCHAR(191),
		addr VARCHAR(191),
		collect_id TEXT,
		seen_id TEXT,
		created_at DATETIME(3),
		updated_at DATETIME(3),
		UNIQUE INDEX idx_user_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;
	`
	if err := db.Exec(sql).Error; err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	logrus.Info("Users table created successfully")
	return nil
}
