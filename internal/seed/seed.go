// Package seed loads the fixed curriculum into the database: six days,
// forty-eight steps and the tool one-pagers. Seeding is idempotent and runs
// on every boot; existing rows are updated in place so content fixes ship
// without migrations.
package seed

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/catalystlab/catalyst-backend/internal/catalog"
	"github.com/catalystlab/catalyst-backend/internal/models"
)

func Run(db *gorm.DB) error {
	if err := seedCurriculum(db); err != nil {
		return err
	}
	if err := seedTools(db); err != nil {
		return err
	}
	slog.Info("seed complete", "days", len(days), "tools", len(tools))
	return nil
}

func seedCurriculum(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, d := range days {
			day := models.TrainingDay{
				ID:          uint(d.number),
				OrderNum:    d.number,
				Title:       d.title,
				Subtitle:    d.subtitle,
				Description: d.description,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&day).Error
			if err != nil {
				return fmt.Errorf("failed to seed day %d: %w", d.number, err)
			}

			if len(d.steps) != catalog.StepsPerDay {
				return fmt.Errorf("day %d declares %d steps, want %d", d.number, len(d.steps), catalog.StepsPerDay)
			}
			for i, s := range d.steps {
				stepNumber := i + 1
				step := models.TrainingStep{
					ID:           stepRowID(d.number, stepNumber),
					DayID:        day.ID,
					StepNumber:   stepNumber,
					Title:        s.title,
					Description:  s.description,
					Importance:   s.importance,
					Limitations:  s.limitations,
					Instructions: s.instructions,
				}
				if len(s.tools) > 0 {
					raw, err := json.Marshal(s.tools)
					if err != nil {
						return fmt.Errorf("failed to encode tools for day %d step %d: %w", d.number, stepNumber, err)
					}
					step.Tools = datatypes.JSON(raw)
				}
				err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "id"}},
					UpdateAll: true,
				}).Create(&step).Error
				if err != nil {
					return fmt.Errorf("failed to seed day %d step %d: %w", d.number, stepNumber, err)
				}
			}
		}
		return nil
	})
}

func seedTools(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i, t := range tools {
			raw, err := json.Marshal(t.howTo)
			if err != nil {
				return fmt.Errorf("failed to encode how-to for tool %q: %w", t.name, err)
			}
			tool := models.Tool{
				ID:          uint(i + 1),
				Name:        t.name,
				Icon:        t.icon,
				Description: t.description,
				WhenToUse:   t.whenToUse,
				HowTo:       datatypes.JSON(raw),
				Tips:        t.tips,
			}
			err = tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&tool).Error
			if err != nil {
				return fmt.Errorf("failed to seed tool %q: %w", t.name, err)
			}
		}
		return nil
	})
}

// stepRowID gives steps stable primary keys across reseeds.
func stepRowID(dayNumber, stepNumber int) uint {
	return uint((dayNumber-1)*catalog.StepsPerDay + stepNumber)
}
