package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/smartserve-app/smartserve-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	actorID *uint,
	actorRole string,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	// A logger without a database is a no-op sink.
	if l.db == nil {
		return nil
	}

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ActorID:   actorID,
		ActorRole: actorRole,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
	}

	return l.db.Create(&entry).Error
}
