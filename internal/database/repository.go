package database

import (
	"time"

	"gorm.io/gorm"
)

type RunRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) CreateRun(run *Run) error {
	return r.db.Create(run).Error
}

func (r *RunRepository) FinishRun(id uint, status string, exitCode int, finishedAt time.Time) error {
	return r.db.Model(&Run{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      status,
			"exit_code":   exitCode,
			"finished_at": finishedAt,
		}).Error
}

func (r *RunRepository) GetRunByID(id uint) (*Run, error) {
	var run Run
	if err := r.db.First(&run, id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *RunRepository) AddScenarioResult(result *ScenarioResult) error {
	return r.db.Create(result).Error
}

func (r *RunRepository) ListScenarioResults(runID uint) ([]ScenarioResult, error) {
	var results []ScenarioResult
	if err := r.db.Where("run_id = ?", runID).Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
