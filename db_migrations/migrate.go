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
	"fmt"
	"log/slog"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/bvsbharat/ai-agent-platform/db"
)

// migration is a single schema change applied exactly once, ordered by ID
type migration struct {
	ID      int
	Migrate func(db *gorm.DB) error
}

var migrations = []migration{
	migration001,
	migration002,
	migration003,
	migration004,
	migration005,
}

// Migrate applies all pending migrations in ID order
func Migrate() error {
	handle := db.GetDB()

	if err := handle.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations
(
   id          INT PRIMARY KEY,
   applied_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`).Error; err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].ID < migrations[j].ID })

	for _, m := range migrations {
		var count int64
		if err := handle.Table("schema_migrations").Where("id = ?", m.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.ID, err)
		}
		if count > 0 {
			continue
		}

		start := time.Now()
		if err := m.Migrate(handle); err != nil {
			return fmt.Errorf("migration %d failed: %w", m.ID, err)
		}
		if err := handle.Exec(`INSERT INTO schema_migrations (id) VALUES (?)`, m.ID).Error; err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.ID, err)
		}
		slog.Info("Applied migration", "id", m.ID, "duration", time.Since(start))
	}

	return nil
}

// runSQL executes each statement in order, stopping at the first error
func runSQL(tx *gorm.DB, statements ...string) error {
	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
