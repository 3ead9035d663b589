package cartControllers

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raushkum4590/foodify/models"
)

// GormPersistence keeps cart snapshots in the cart_snapshots table, one row
// per subject, blob overwritten on every save.
type GormPersistence struct {
	DB *gorm.DB
}

func (g *GormPersistence) Load(key string) ([]byte, error) {
	var snap models.CartSnapshot
	err := g.DB.First(&snap, "user_id = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snap.Blob, nil
}

func (g *GormPersistence) Save(key string, blob []byte) error {
	snap := models.CartSnapshot{UserID: key, Blob: blob}
	return g.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"blob", "updated_at"}),
	}).Create(&snap).Error
}
