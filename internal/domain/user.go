package domain

import "time"

// User 表示应用程序中的注册用户。
type User struct {
	ID        uint      `gorm:"primaryKey"`                                           // 用户唯一标识符 (主键)
	Name      string    `gorm:"type:varchar(191);uniqueIndex:idx_user_name;not null"` // 用户名，全局唯一
	Password  string    `gorm:"type:text;not null"`                                   // 存储的是 bcrypt 哈希，不能为空
	Email     string    `gorm:"type:varchar(191)"`
	Addr      string    `gorm:"type:varchar(191)"`           // 用户填写的常用地址
	CollectID IDList    `gorm:"column:collect_id;type:text"` // 收藏的房源 ID 列表 (插入有序、无重复)
	SeenID    IDList    `gorm:"column:seen_id;type:text"`    // 浏览过的房源 ID 列表 (插入有序、无重复)
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
