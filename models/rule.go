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
	"gorm.io/datatypes"
)

// Rule is a reusable snippet of coding guidance
type Rule struct {
	UUID        uuid.UUID `gorm:"column:uuid;primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description;not null"`
	Category    string    `gorm:"column:category;not null"`

	AuthorID   uuid.UUID `gorm:"column:author_id;not null"`
	AuthorName string    `gorm:"column:author_name;not null"`

	Tags    datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb"`
	Content string                      `gorm:"column:content;not null"`

	Votes int64 `gorm:"column:votes;not null;default:0"`
	Views int64 `gorm:"column:views;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for rules
func (Rule) TableName() string {
	return "rules"
}
