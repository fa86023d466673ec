// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bvsbharat/ai-agent-platform/models"
)

// Agent metric column constants accepted by IncrementMetric
const (
	MetricViews = "views"
	MetricRuns  = "runs"
	MetricLikes = "likes"
)

// AgentSearchFilter holds the options of the cross-field search endpoint,
// which exposes a free sort column and direction unlike the fixed listing
// sort keys.
type AgentSearchFilter struct {
	Query     string
	Category  string
	SortBy    string // "created_at", "views", "popularity"
	Ascending bool
	Limit     int
	Offset    int
}

// AgentRepository defines the interface for agent data access
type AgentRepository interface {
	// List lists published agents matching the filter with pagination
	List(ctx context.Context, filter models.ListingFilter) ([]models.Agent, int64, error)
	// Search lists published agents matching the search filter
	Search(ctx context.Context, filter AgentSearchFilter) ([]models.Agent, int64, error)
	// Create persists a new agent
	Create(ctx context.Context, agent *models.Agent) error
	// GetByID returns the agent or nil when no such record exists
	GetByID(ctx context.Context, id uuid.UUID) (*models.Agent, error)
	// Update persists all fields of an existing agent
	Update(ctx context.Context, agent *models.Agent) error
	// Delete removes the agent, reporting whether a record was deleted
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// IncrementMetric atomically adds delta to a metric column, floored at
	// zero, and returns the new value
	IncrementMetric(ctx context.Context, id uuid.UUID, metric string, delta int64) (int64, error)
	// CountByCategory returns published agent counts grouped by category
	CountByCategory(ctx context.Context) (map[string]int64, error)
}

// AgentRepo implements AgentRepository using GORM
type AgentRepo struct {
	db *gorm.DB
}

// NewAgentRepo creates a new agent repository
func NewAgentRepo(db *gorm.DB) AgentRepository {
	return &AgentRepo{db: db}
}

// List lists published agents matching the filter with pagination
func (r *AgentRepo) List(ctx context.Context, filter models.ListingFilter) ([]models.Agent, int64, error) {
	var agents []models.Agent
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := func() *gorm.DB {
			q := tx.Model(&models.Agent{}).
				Where("deployment_status = ?", models.DeploymentStatusPublished)
			if filter.HasCategoryFilter() {
				q = q.Where("category = ?", filter.Category)
			}
			if filter.HasSearchFilter() {
				pattern := "%" + filter.Search + "%"
				q = q.Where("name ILIKE ? OR description ILIKE ? OR tags::text ILIKE ?",
					pattern, pattern, pattern)
			}
			return q
		}

		if err := base().Count(&total).Error; err != nil {
			return err
		}

		return base().
			Order(agentOrderClause(filter.NormalizedSort())).
			Limit(filter.Limit).
			Offset(filter.Offset).
			Find(&agents).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return agents, total, nil
}

// Search lists published agents matching the search filter
func (r *AgentRepo) Search(ctx context.Context, filter AgentSearchFilter) ([]models.Agent, int64, error) {
	var agents []models.Agent
	var total int64

	direction := "DESC"
	if filter.Ascending {
		direction = "ASC"
	}
	var column string
	switch filter.SortBy {
	case "popularity":
		column = "likes"
	case MetricViews:
		column = "views"
	default:
		column = "created_at"
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := func() *gorm.DB {
			pattern := "%" + filter.Query + "%"
			q := tx.Model(&models.Agent{}).
				Where("deployment_status = ?", models.DeploymentStatusPublished).
				Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
			if filter.Category != "" && filter.Category != models.CategoryAll {
				q = q.Where("category = ?", filter.Category)
			}
			return q
		}

		if err := base().Count(&total).Error; err != nil {
			return err
		}

		return base().
			Order(fmt.Sprintf("%s %s", column, direction)).
			Limit(filter.Limit).
			Offset(filter.Offset).
			Find(&agents).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return agents, total, nil
}

// Create persists a new agent
func (r *AgentRepo) Create(ctx context.Context, agent *models.Agent) error {
	return r.db.WithContext(ctx).Create(agent).Error
}

// GetByID returns the agent or nil when no such record exists
func (r *AgentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&agent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// Update persists all fields of an existing agent
func (r *AgentRepo) Update(ctx context.Context, agent *models.Agent) error {
	return r.db.WithContext(ctx).Save(agent).Error
}

// Delete removes the agent, reporting whether a record was deleted
func (r *AgentRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&models.Agent{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IncrementMetric atomically adds delta to a metric column and returns the
// new value. The update and read-back run in one transaction so concurrent
// increments never lose updates.
func (r *AgentRepo) IncrementMetric(ctx context.Context, id uuid.UUID, metric string, delta int64) (int64, error) {
	if metric != MetricViews && metric != MetricRuns && metric != MetricLikes {
		return 0, fmt.Errorf("unknown agent metric %q", metric)
	}

	var value int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Agent{}).
			Where("uuid = ?", id).
			UpdateColumn(metric, gorm.Expr("GREATEST("+metric+" + ?, 0)", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.Agent{}).
			Where("uuid = ?", id).
			Select(metric).
			Scan(&value).Error
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// CountByCategory returns published agent counts grouped by category
func (r *AgentRepo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	type categoryCount struct {
		Category string
		Count    int64
	}

	var rows []categoryCount
	err := r.db.WithContext(ctx).Model(&models.Agent{}).
		Select("category, COUNT(*) AS count").
		Where("deployment_status = ?", models.DeploymentStatusPublished).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

func agentOrderClause(sort string) string {
	switch sort {
	case models.SortTrending:
		return "views DESC, runs DESC"
	case models.SortPopular:
		return "likes DESC"
	default:
		return "created_at DESC"
	}
}
