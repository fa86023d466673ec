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

package dbmigrations

import (
	"gorm.io/gorm"
)

// create table hackathons
var migration005 = migration{
	ID: 5,
	Migrate: func(db *gorm.DB) error {
		createTable := `CREATE TABLE hackathons
(
   uuid        UUID PRIMARY KEY,
   title       VARCHAR(255) NOT NULL,
   description TEXT,
   location    VARCHAR(255),
   date        VARCHAR(20),
   time        VARCHAR(20),
   organizer   VARCHAR(255),
   attendees   INT NOT NULL DEFAULT 0,
   image_url   VARCHAR(500),
   event_url   VARCHAR(500) NOT NULL,
   is_online   BOOLEAN NOT NULL DEFAULT FALSE,
   created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

		createEventURLIndex := `CREATE UNIQUE INDEX uk_hackathons_event_url ON hackathons(event_url)`

		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createTable, createEventURLIndex)
		})
	},
}
