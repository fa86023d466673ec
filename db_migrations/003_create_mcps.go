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

// create table mcps
var migration003 = migration{
	ID: 3,
	Migrate: func(db *gorm.DB) error {
		createTable := `CREATE TABLE mcps
(
   remote_id   VARCHAR(255) PRIMARY KEY,
   name        VARCHAR(255) NOT NULL,
   description TEXT,
   link        VARCHAR(500),
   logo        VARCHAR(500),
   company_id  VARCHAR(255),
   slug        VARCHAR(255),
   active      BOOLEAN NOT NULL DEFAULT TRUE,
   plan        VARCHAR(50) NOT NULL DEFAULT 'free',
   config      JSONB,
   category    VARCHAR(50) NOT NULL DEFAULT 'General',
   tags        JSONB NOT NULL DEFAULT '[]',
   installs    BIGINT NOT NULL DEFAULT 0,
   created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   synced_at   TIMESTAMPTZ
)`

		createCategoryIndex := `CREATE INDEX idx_mcps_category ON mcps(category)`
		createInstallsIndex := `CREATE INDEX idx_mcps_installs ON mcps(installs DESC)`
		createCreatedAtIndex := `CREATE INDEX idx_mcps_created_at ON mcps(created_at DESC)`

		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createTable, createCategoryIndex, createInstallsIndex, createCreatedAtIndex)
		})
	},
}
