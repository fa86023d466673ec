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

// Rule metric column constants accepted by IncrementMetric
const (
	RuleMetricVotes = "votes"
	RuleMetricViews = "views"
)

// RuleRepository defines the interface for rule data access
type RuleRepository interface {
	// List lists rules matching the filter with pagination
	List(ctx context.Context, filter models.ListingFilter) ([]models.Rule, int64, error)
	// Create persists a new rule
	Create(ctx context.Context, rule *models.Rule) error
	// GetByID returns the rule or nil when no such record exists
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rule, error)
	// Delete removes the rule, reporting whether a record was deleted
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// IncrementMetric atomically adds delta to a metric column, floored at
	// zero, and returns the new value
	IncrementMetric(ctx context.Context, id uuid.UUID, metric string, delta int64) (int64, error)
}

// RuleRepo implements RuleRepository using GORM
type RuleRepo struct {
	db *gorm.DB
}

// NewRuleRepo creates a new rule repository
func NewRuleRepo(db *gorm.DB) RuleRepository {
	return &RuleRepo{db: db}
}

// List lists rules matching the filter with pagination
func (r *RuleRepo) List(ctx context.Context, filter models.ListingFilter) ([]models.Rule, int64, error) {
	var rules []models.Rule
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := func() *gorm.DB {
			q := tx.Model(&models.Rule{})
			if filter.HasCategoryFilter() {
				q = q.Where("category = ?", filter.Category)
			}
			if filter.HasSearchFilter() {
				pattern := "%" + filter.Search + "%"
				q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
			}
			return q
		}

		if err := base().Count(&total).Error; err != nil {
			return err
		}

		return base().
			Order(ruleOrderClause(filter.NormalizedSort())).
			Limit(filter.Limit).
			Offset(filter.Offset).
			Find(&rules).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return rules, total, nil
}

// Create persists a new rule
func (r *RuleRepo) Create(ctx context.Context, rule *models.Rule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

// GetByID returns the rule or nil when no such record exists
func (r *RuleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Rule, error) {
	var rule models.Rule
	err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// Delete removes the rule, reporting whether a record was deleted
func (r *RuleRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&models.Rule{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IncrementMetric atomically adds delta to a metric column and returns the
// new value
func (r *RuleRepo) IncrementMetric(ctx context.Context, id uuid.UUID, metric string, delta int64) (int64, error) {
	if metric != RuleMetricVotes && metric != RuleMetricViews {
		return 0, fmt.Errorf("unknown rule metric %q", metric)
	}

	var value int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Rule{}).
			Where("uuid = ?", id).
			UpdateColumn(metric, gorm.Expr("GREATEST("+metric+" + ?, 0)", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.Rule{}).
			Where("uuid = ?", id).
			Select(metric).
			Scan(&value).Error
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

func ruleOrderClause(sort string) string {
	switch sort {
	case models.SortTrending:
		return "views DESC"
	case models.SortPopular:
		return "votes DESC"
	default:
		return "created_at DESC"
	}
}
