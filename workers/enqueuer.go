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

package workers

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
)

// Enqueuer inserts directory sync jobs onto the queue
type Enqueuer struct {
	client *river.Client[pgx.Tx]
}

// NewEnqueuer creates an enqueuer over the queue client
func NewEnqueuer(client *river.Client[pgx.Tx]) *Enqueuer {
	return &Enqueuer{client: client}
}

// EnqueueMCPSync queues an MCP directory sync run and returns the job id
func (e *Enqueuer) EnqueueMCPSync(ctx context.Context) (int64, error) {
	result, err := e.client.Insert(ctx, MCPSyncJobArgs{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue mcp sync job: %w", err)
	}
	return result.Job.ID, nil
}

// EnqueueHackathonScrape queues a hackathon scrape run and returns the job id
func (e *Enqueuer) EnqueueHackathonScrape(ctx context.Context) (int64, error) {
	result, err := e.client.Insert(ctx, HackathonScrapeJobArgs{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue hackathon scrape job: %w", err)
	}
	return result.Job.ID, nil
}
