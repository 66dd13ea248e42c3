package models

import (
	"time"

	"gorm.io/gorm"
)

// Emission est un enregistrement d'activité carbone. Créé une fois, jamais
// modifié : le co2e est figé au moment du calcul même si les facteurs
// changent plus tard.
type Emission struct {
	gorm.Model
	UserID      uint      `gorm:"index" json:"userId"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Value       float64   `json:"value"`
	Unit        string    `json:"unit"`
	CO2e        float64   `json:"co2e"`
	Date        time.Time `json:"date"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
