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

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bvsbharat/ai-agent-platform/models"
)

// HackathonFilter holds the filter options of the hackathon listing
type HackathonFilter struct {
	// Location filters by substring match; the sentinel "Online" matches
	// the online flag instead
	Location string
	Limit    int
	Offset   int
}

// LocationOnline is the sentinel location value matching online events
const LocationOnline = "Online"

// HackathonRepository defines the interface for hackathon data access
type HackathonRepository interface {
	// List lists hackathons matching the filter with pagination
	List(ctx context.Context, filter HackathonFilter) ([]models.Hackathon, int64, error)
	// Upsert inserts or updates a hackathon keyed by its event URL
	Upsert(ctx context.Context, hackathon *models.Hackathon) error
}

// HackathonRepo implements HackathonRepository using GORM
type HackathonRepo struct {
	db *gorm.DB
}

// NewHackathonRepo creates a new hackathon repository
func NewHackathonRepo(db *gorm.DB) HackathonRepository {
	return &HackathonRepo{db: db}
}

// List lists hackathons matching the filter with pagination
func (r *HackathonRepo) List(ctx context.Context, filter HackathonFilter) ([]models.Hackathon, int64, error) {
	var hackathons []models.Hackathon
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := func() *gorm.DB {
			q := tx.Model(&models.Hackathon{})
			switch {
			case filter.Location == "" || filter.Location == models.CategoryAll:
				// no restriction
			case filter.Location == LocationOnline:
				q = q.Where("is_online = ?", true)
			default:
				q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
			}
			return q
		}

		if err := base().Count(&total).Error; err != nil {
			return err
		}

		return base().
			Order("date ASC, created_at DESC").
			Limit(filter.Limit).
			Offset(filter.Offset).
			Find(&hackathons).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return hackathons, total, nil
}

// Upsert inserts or updates a hackathon keyed by its event URL
func (r *HackathonRepo) Upsert(ctx context.Context, hackathon *models.Hackathon) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "event_url"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "location", "date", "time",
			"organizer", "attendees", "image_url", "is_online", "updated_at",
		}),
	}).Create(hackathon).Error
}
