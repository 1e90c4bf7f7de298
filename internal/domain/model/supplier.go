package model

import "time"

// 仕入先。このコアからは読み取り専用（管理は別系統）。

type Supplier struct {
	ID          int64     `gorm:"column:supplier_id;primaryKey;autoIncrement" json:"supplier_id"`
	Name        string    `gorm:"column:supplier_name;type:varchar(255);not null" json:"supplier_name"`
	ContactName string    `gorm:"column:contact_name;type:varchar(255)" json:"contact_name"`
	Email       string    `gorm:"column:email;type:varchar(255)" json:"email"`
	Phone       string    `gorm:"column:phone;type:varchar(50)" json:"phone"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
