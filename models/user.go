package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string            `json:"name"`
	Slug        string            `gorm:"uniqueIndex" json:"slug"`
	Email       string            `gorm:"uniqueIndex" json:"email"`
	Password    string            `json:"-"`
	Preferences datatypes.JSONMap `json:"preferences"`

	Emissions []Emission `json:"-"`
}
