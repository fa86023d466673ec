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

// create table agents
var migration002 = migration{
	ID: 2,
	Migrate: func(db *gorm.DB) error {
		createTable := `CREATE TABLE agents
(
   uuid              UUID PRIMARY KEY,
   name              VARCHAR(100) NOT NULL,
   description       VARCHAR(500) NOT NULL,
   category          VARCHAR(50) NOT NULL,
   creation_method   VARCHAR(20) NOT NULL,
   creator_id        UUID NOT NULL REFERENCES users(uuid),
   creator_name      VARCHAR(100) NOT NULL,
   creator_email     VARCHAR(255) NOT NULL,
   prompt            TEXT,
   llm_model         VARCHAR(100),
   llm_temperature   DOUBLE PRECISION,
   llm_max_tokens    INT,
   llm_system_prompt TEXT,
   llm_api_endpoint  VARCHAR(500),
   tags              JSONB NOT NULL DEFAULT '[]',
   views             BIGINT NOT NULL DEFAULT 0,
   runs              BIGINT NOT NULL DEFAULT 0,
   likes             BIGINT NOT NULL DEFAULT 0,
   deployment_status VARCHAR(20) NOT NULL DEFAULT 'draft',
   published_at      TIMESTAMPTZ,
   created_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   CONSTRAINT creation_method_enum CHECK (creation_method IN ('prompt', 'custom-llm')),
   CONSTRAINT deployment_status_enum CHECK (deployment_status IN ('draft', 'published', 'archived')),
   CONSTRAINT views_non_negative CHECK (views >= 0),
   CONSTRAINT runs_non_negative CHECK (runs >= 0),
   CONSTRAINT likes_non_negative CHECK (likes >= 0)
)`

		createCategoryIndex := `CREATE INDEX idx_agents_category_status ON agents(category, deployment_status)`
		createCreatorIndex := `CREATE INDEX idx_agents_creator ON agents(creator_id)`
		createCreatedAtIndex := `CREATE INDEX idx_agents_created_at ON agents(created_at DESC)`
		createViewsIndex := `CREATE INDEX idx_agents_views ON agents(views DESC)`
		createLikesIndex := `CREATE INDEX idx_agents_likes ON agents(likes DESC)`

		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createTable, createCategoryIndex, createCreatorIndex,
				createCreatedAtIndex, createViewsIndex, createLikesIndex)
		})
	},
}
