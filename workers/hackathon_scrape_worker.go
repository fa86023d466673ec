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
	"time"

	"github.com/riverqueue/river"

	"github.com/bvsbharat/ai-agent-platform/services"
)

// HackathonScrapeJobArgs requests a hackathon listing scrape run
type HackathonScrapeJobArgs struct{}

// Kind returns the job kind for hackathon scraping
func (HackathonScrapeJobArgs) Kind() string { return "hackathon_scrape" }

// HackathonScrapeWorker refreshes hackathon listings from the upstream page
type HackathonScrapeWorker struct {
	river.WorkerDefaults[HackathonScrapeJobArgs]
	hackathonService *services.HackathonService
	jobTimeout       time.Duration
}

// NewHackathonScrapeWorker creates a new hackathon scrape worker
func NewHackathonScrapeWorker(hackathonService *services.HackathonService, jobTimeout time.Duration) *HackathonScrapeWorker {
	return &HackathonScrapeWorker{
		hackathonService: hackathonService,
		jobTimeout:       jobTimeout,
	}
}

// Timeout bounds a single scrape run
func (w *HackathonScrapeWorker) Timeout(*river.Job[HackathonScrapeJobArgs]) time.Duration {
	return w.jobTimeout
}

// Work runs the scrape
func (w *HackathonScrapeWorker) Work(ctx context.Context, job *river.Job[HackathonScrapeJobArgs]) error {
	if _, err := w.hackathonService.ScrapeAndStore(ctx); err != nil {
		return fmt.Errorf("hackathon scrape failed: %w", err)
	}
	return nil
}
