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

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bvsbharat/ai-agent-platform/models"
)

// MCPRepository defines the interface for MCP listing data access
type MCPRepository interface {
	// List lists active MCPs matching the filter with pagination
	List(ctx context.Context, filter models.ListingFilter) ([]models.MCP, int64, error)
	// GetByRemoteID returns the MCP or nil when no such record exists
	GetByRemoteID(ctx context.Context, remoteID string) (*models.MCP, error)
	// Upsert inserts or updates an MCP keyed by its remote id
	Upsert(ctx context.Context, mcp *models.MCP) error
}

// MCPRepo implements MCPRepository using GORM
type MCPRepo struct {
	db *gorm.DB
}

// NewMCPRepo creates a new MCP repository
func NewMCPRepo(db *gorm.DB) MCPRepository {
	return &MCPRepo{db: db}
}

// List lists active MCPs matching the filter with pagination
func (r *MCPRepo) List(ctx context.Context, filter models.ListingFilter) ([]models.MCP, int64, error) {
	var mcps []models.MCP
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := func() *gorm.DB {
			q := tx.Model(&models.MCP{}).Where("active = ?", true)
			if filter.HasCategoryFilter() {
				q = q.Where("category = ?", filter.Category)
			}
			if filter.HasSearchFilter() {
				pattern := "%" + filter.Search + "%"
				q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
			}
			return q
		}

		if err := base().Count(&total).Error; err != nil {
			return err
		}

		return base().
			Order(mcpOrderClause(filter.NormalizedSort())).
			Limit(filter.Limit).
			Offset(filter.Offset).
			Find(&mcps).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return mcps, total, nil
}

// GetByRemoteID returns the MCP or nil when no such record exists
func (r *MCPRepo) GetByRemoteID(ctx context.Context, remoteID string) (*models.MCP, error) {
	var mcp models.MCP
	err := r.db.WithContext(ctx).Where("remote_id = ?", remoteID).First(&mcp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mcp, nil
}

// Upsert inserts or updates an MCP keyed by its remote id
func (r *MCPRepo) Upsert(ctx context.Context, mcp *models.MCP) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "remote_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "link", "logo", "company_id", "slug",
			"active", "plan", "config", "category", "tags", "installs",
			"updated_at", "synced_at",
		}),
	}).Create(mcp).Error
}

func mcpOrderClause(sort string) string {
	switch sort {
	case models.SortTrending, models.SortPopular:
		return "installs DESC"
	default:
		return "created_at DESC"
	}
}
