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

package models

import (
	"time"

	"github.com/google/uuid"
)

// Hackathon is an event listing refreshed by the scrape job.
// EventURL is the natural upsert key.
type Hackathon struct {
	UUID        uuid.UUID `gorm:"column:uuid;primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description"`
	Location    string    `gorm:"column:location"`
	Date        string    `gorm:"column:date"`
	Time        string    `gorm:"column:time"`
	Organizer   string    `gorm:"column:organizer"`
	Attendees   int       `gorm:"column:attendees;not null;default:0"`
	ImageURL    string    `gorm:"column:image_url"`
	EventURL    string    `gorm:"column:event_url;not null;uniqueIndex"`
	IsOnline    bool      `gorm:"column:is_online;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for hackathons
func (Hackathon) TableName() string {
	return "hackathons"
}
