package models

import "github.com/google/uuid"

type Category struct {
	Base
	UserID      uuid.UUID    `gorm:"type:uuid;not null;index"`
	Name        string       `gorm:"size:100;not null"`
	Description string       `gorm:"type:text"`
	Color       string       `gorm:"size:7"` // hex, e.g. #FF6B6B
	Icon        string       `gorm:"size:50"`
	Type        CategoryType `gorm:"size:20;not null;check:type IN ('receita','despesa')"`
	Active      bool         `gorm:"default:true"`
}
