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

package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bvsbharat/ai-agent-platform/clients/devpost"
	"github.com/bvsbharat/ai-agent-platform/middleware/logger"
	"github.com/bvsbharat/ai-agent-platform/models"
	"github.com/bvsbharat/ai-agent-platform/repositories"
	"github.com/bvsbharat/ai-agent-platform/spec"
)

// HackathonScrapeStats summarizes one scrape run
type HackathonScrapeStats struct {
	Found   int
	Saved   int
	Skipped int
}

// HackathonService handles hackathon listing reads and scraping
type HackathonService struct {
	hackathonRepo repositories.HackathonRepository
	scraper       devpost.PageScraper
	sourceURL     string
}

// NewHackathonService creates a new hackathon service
func NewHackathonService(
	hackathonRepo repositories.HackathonRepository,
	scraper devpost.PageScraper,
	sourceURL string,
) *HackathonService {
	return &HackathonService{
		hackathonRepo: hackathonRepo,
		scraper:       scraper,
		sourceURL:     sourceURL,
	}
}

// List lists hackathons matching the location filter
func (s *HackathonService) List(ctx context.Context, filter repositories.HackathonFilter, page int) (*spec.HackathonListResponse, error) {
	hackathons, total, err := s.hackathonRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathons: %w", err)
	}

	responses := make([]spec.HackathonResponse, 0, len(hackathons))
	for i := range hackathons {
		responses = append(responses, hackathonToResponse(&hackathons[i]))
	}

	return &spec.HackathonListResponse{
		Hackathons: responses,
		Pagination: spec.NewPagination(page, filter.Limit, total),
	}, nil
}

// ScrapeAndStore renders the upstream hackathon listing page to markdown,
// extracts the event entries and upserts them keyed by event URL. An entry
// that fails to persist is logged and skipped.
func (s *HackathonService) ScrapeAndStore(ctx context.Context) (*HackathonScrapeStats, error) {
	log := logger.GetLogger(ctx)
	stats := &HackathonScrapeStats{}

	markdown, err := s.scraper.ScrapeMarkdown(ctx, s.sourceURL)
	if err != nil {
		return stats, fmt.Errorf("failed to scrape hackathon listing: %w", err)
	}

	hackathons := parseHackathonMarkdown(markdown)
	stats.Found = len(hackathons)

	for i := range hackathons {
		if err := s.hackathonRepo.Upsert(ctx, &hackathons[i]); err != nil {
			log.Warn("failed to upsert hackathon",
				slog.String("eventUrl", hackathons[i].EventURL),
				slog.String("error", err.Error()))
			stats.Skipped++
			continue
		}
		stats.Saved++
	}

	log.Info("hackathon scrape completed",
		slog.Int("found", stats.Found),
		slog.Int("saved", stats.Saved),
		slog.Int("skipped", stats.Skipped))
	return stats, nil
}

var (
	hackathonLinkRe  = regexp.MustCompile(`\[([^\]]+)\]\((https?://[A-Za-z0-9.-]*devpost\.com[^)\s]*)\)`)
	participantsRe   = regexp.MustCompile(`([\d,]+)\s+participants`)
	locationOnlineRe = regexp.MustCompile(`(?i)\bonline\b`)
)

// parseHackathonMarkdown extracts hackathon entries from the rendered
// listing page. Each entry is a markdown link to an event subdomain; the
// text following the link up to the next entry carries location and
// participant details.
func parseHackathonMarkdown(markdown string) []models.Hackathon {
	matches := hackathonLinkRe.FindAllStringSubmatchIndex(markdown, -1)
	seen := make(map[string]bool)
	var hackathons []models.Hackathon

	today := time.Now().UTC().Format("2006-01-02")

	for idx, match := range matches {
		title := strings.TrimSpace(markdown[match[2]:match[3]])
		eventURL := markdown[match[4]:match[5]]

		if title == "" || seen[eventURL] {
			continue
		}
		// skip image links
		if match[0] > 0 && markdown[match[0]-1] == '!' {
			continue
		}
		// the listing page links to itself and to category filters; real
		// events live on their own subdomain
		if !strings.Contains(eventURL, ".devpost.com") {
			continue
		}
		seen[eventURL] = true

		// details sit between this link and the next one
		sectionEnd := len(markdown)
		if idx+1 < len(matches) {
			sectionEnd = matches[idx+1][0]
		}
		section := markdown[match[1]:sectionEnd]

		isOnline := locationOnlineRe.MatchString(section)
		location := firstNonEmptyLine(section)
		if isOnline {
			location = repositories.LocationOnline
		}

		attendees := 0
		if m := participantsRe.FindStringSubmatch(section); m != nil {
			if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
				attendees = n
			}
		}

		hackathons = append(hackathons, models.Hackathon{
			UUID:      uuid.New(),
			Title:     title,
			Location:  location,
			Date:      today,
			Time:      "12:00 PM",
			Attendees: attendees,
			EventURL:  eventURL,
			IsOnline:  isOnline,
		})
	}

	return hackathons
}

func firstNonEmptyLine(section string) string {
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(strings.Trim(line, "*_-# "))
		if line != "" && !strings.HasPrefix(line, "[") && !strings.HasPrefix(line, "!") {
			return line
		}
	}
	return "Unknown"
}

func hackathonToResponse(hackathon *models.Hackathon) spec.HackathonResponse {
	return spec.HackathonResponse{
		ID:          hackathon.UUID.String(),
		Title:       hackathon.Title,
		Description: hackathon.Description,
		Location:    hackathon.Location,
		Date:        hackathon.Date,
		Time:        hackathon.Time,
		Organizer:   hackathon.Organizer,
		Attendees:   hackathon.Attendees,
		ImageURL:    hackathon.ImageURL,
		EventURL:    hackathon.EventURL,
		IsOnline:    hackathon.IsOnline,
	}
}
