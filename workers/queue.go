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

// Package workers hosts the background jobs of the directory sync module,
// run on a Postgres-backed river queue.
package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"

	"github.com/bvsbharat/ai-agent-platform/services"
)

const syncQueueMaxWorkers = 2

// NewWorkers registers every background worker on a fresh registry
func NewWorkers(
	mcpService *services.MCPService,
	hackathonService *services.HackathonService,
	jobTimeout time.Duration,
) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewMCPSyncWorker(mcpService, jobTimeout))
	river.AddWorker(workers, NewHackathonScrapeWorker(hackathonService, jobTimeout))
	return workers
}

// NewClient migrates the river schema and builds a queue client over the
// given connection pool. The caller owns Start and Stop.
func NewClient(ctx context.Context, pool *pgxpool.Pool, workers *river.Workers) (*river.Client[pgx.Tx], error) {
	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create river migrator: %w", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		return nil, fmt.Errorf("failed to migrate river schema: %w", err)
	}

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: syncQueueMaxWorkers},
		},
		Workers: workers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create river client: %w", err)
	}
	return client, nil
}
