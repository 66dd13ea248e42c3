package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"greenloop/carbon"
	"greenloop/models"
)

// EmissionStore persiste les enregistrements d'émission. Insertion simple et
// lectures par utilisateur, pas de mise à jour ni de suppression : les
// enregistrements sont des instantanés immuables.
type EmissionStore struct {
	db *gorm.DB
}

func NewEmissionStore(db *gorm.DB) *EmissionStore {
	return &EmissionStore{db: db}
}

// Append insère un enregistrement et lui assigne son id. La date par défaut
// est la date de création.
func (s *EmissionStore) Append(ctx context.Context, e *models.Emission) error {
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(e).Error
}

// ListByUser retourne les émissions d'un utilisateur, les plus récentes d'abord.
func (s *EmissionStore) ListByUser(ctx context.Context, userID uint) ([]models.Emission, error) {
	var emissions []models.Emission
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&emissions).Error
	if err != nil {
		return nil, err
	}
	return emissions, nil
}

// RecordsByUser est la projection consommée par le moteur d'agrégation.
// Implémente carbon.RecordSource.
func (s *EmissionStore) RecordsByUser(ctx context.Context, userID uint) ([]carbon.Record, error) {
	emissions, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	records := make([]carbon.Record, 0, len(emissions))
	for _, e := range emissions {
		records = append(records, carbon.Record{
			Category:    carbon.Category(e.Category),
			Subcategory: e.Subcategory,
			CO2e:        e.CO2e,
		})
	}
	return records, nil
}
