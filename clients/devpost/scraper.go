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

package devpost

import (
	"context"
	"fmt"

	firecrawl "github.com/mendableai/firecrawl-go"

	"github.com/bvsbharat/ai-agent-platform/config"
)

// PageScraper renders a listing page to markdown
type PageScraper interface {
	ScrapeMarkdown(ctx context.Context, url string) (string, error)
}

type firecrawlScraper struct {
	app *firecrawl.FirecrawlApp
}

// NewPageScraper creates a Firecrawl-backed page scraper from the directory
// sync configuration.
func NewPageScraper(cfg config.DirectorySyncConfig) (PageScraper, error) {
	app, err := firecrawl.NewFirecrawlApp(cfg.FirecrawlAPIKey, cfg.FirecrawlAPIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create firecrawl client: %w", err)
	}
	return &firecrawlScraper{app: app}, nil
}

// ScrapeMarkdown renders the page behind url to markdown
func (s *firecrawlScraper) ScrapeMarkdown(ctx context.Context, url string) (string, error) {
	doc, err := s.app.ScrapeURL(url, &firecrawl.ScrapeParams{
		Formats: []string{"markdown"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to scrape %s: %w", url, err)
	}
	if doc.Markdown == "" {
		return "", fmt.Errorf("no markdown content returned for %s", url)
	}
	return doc.Markdown, nil
}
