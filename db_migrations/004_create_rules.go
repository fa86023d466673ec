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

// create table rules
var migration004 = migration{
	ID: 4,
	Migrate: func(db *gorm.DB) error {
		createTable := `CREATE TABLE rules
(
   uuid        UUID PRIMARY KEY,
   title       VARCHAR(200) NOT NULL,
   description VARCHAR(500) NOT NULL,
   category    VARCHAR(50) NOT NULL,
   author_id   UUID NOT NULL REFERENCES users(uuid),
   author_name VARCHAR(100) NOT NULL,
   tags        JSONB NOT NULL DEFAULT '[]',
   content     TEXT NOT NULL,
   votes       BIGINT NOT NULL DEFAULT 0,
   views       BIGINT NOT NULL DEFAULT 0,
   created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   CONSTRAINT votes_non_negative CHECK (votes >= 0),
   CONSTRAINT views_non_negative CHECK (views >= 0)
)`

		createCategoryIndex := `CREATE INDEX idx_rules_category ON rules(category)`
		createCreatedAtIndex := `CREATE INDEX idx_rules_created_at ON rules(created_at DESC)`
		createVotesIndex := `CREATE INDEX idx_rules_votes ON rules(votes DESC)`

		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createTable, createCategoryIndex, createCreatedAtIndex, createVotesIndex)
		})
	},
}
