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

	"gorm.io/datatypes"
)

// MCP is a Model Context Protocol server listing synced from a remote
// directory. RemoteID is the upsert key; the record is never created
// directly by end users.
type MCP struct {
	RemoteID    string `gorm:"column:remote_id;primaryKey"`
	Name        string `gorm:"column:name;not null"`
	Description string `gorm:"column:description"`
	Link        string `gorm:"column:link"`
	Logo        string `gorm:"column:logo"`
	CompanyID   string `gorm:"column:company_id"`
	Slug        string `gorm:"column:slug"`
	Active      bool   `gorm:"column:active;not null;default:true"`
	Plan        string `gorm:"column:plan;not null;default:free"`

	Config datatypes.JSONType[map[string]any] `gorm:"column:config;type:jsonb"`

	// Category is keyword-matched from the description at sync time;
	// Tags are split out of the remote full-text-search token field.
	Category string                      `gorm:"column:category;not null;default:General"`
	Tags     datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb"`

	Installs int64 `gorm:"column:installs;not null;default:0"`

	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
	SyncedAt  *time.Time `gorm:"column:synced_at"`
}

// TableName returns the table name for MCP listings
func (MCP) TableName() string {
	return "mcps"
}
