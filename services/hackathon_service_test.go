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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvsbharat/ai-agent-platform/models"
	"github.com/bvsbharat/ai-agent-platform/repositories"
)

// mockHackathonRepo is an in-memory test double for the hackathon repository
type mockHackathonRepo struct {
	hackathons map[string]*models.Hackathon
	failURL    string
}

func newMockHackathonRepo() *mockHackathonRepo {
	return &mockHackathonRepo{hackathons: make(map[string]*models.Hackathon)}
}

func (m *mockHackathonRepo) List(ctx context.Context, filter repositories.HackathonFilter) ([]models.Hackathon, int64, error) {
	var hackathons []models.Hackathon
	for _, hackathon := range m.hackathons {
		hackathons = append(hackathons, *hackathon)
	}
	return hackathons, int64(len(hackathons)), nil
}

func (m *mockHackathonRepo) Upsert(ctx context.Context, hackathon *models.Hackathon) error {
	if hackathon.EventURL == m.failURL {
		return fmt.Errorf("storage failure")
	}
	copied := *hackathon
	m.hackathons[hackathon.EventURL] = &copied
	return nil
}

// mockScraper returns a canned markdown rendering
type mockScraper struct {
	markdown string
	err      error
}

func (m *mockScraper) ScrapeMarkdown(ctx context.Context, url string) (string, error) {
	return m.markdown, m.err
}

const sampleListingMarkdown = `
# Hackathons

![AI Hack banner](https://banner.devpost.com/ai.png)

[AI Agents Hackathon](https://ai-agents.devpost.com/)
Online
$50,000 in prizes
1,234 participants

[Bay Area Build Night](https://bayarea-build.devpost.com/)
San Francisco, CA
500 participants

[AI Agents Hackathon](https://ai-agents.devpost.com/)

[Browse all hackathons](https://devpost.com/hackathons)
`

func TestParseHackathonMarkdown(t *testing.T) {
	hackathons := parseHackathonMarkdown(sampleListingMarkdown)
	require.Len(t, hackathons, 2)

	online := hackathons[0]
	assert.Equal(t, "AI Agents Hackathon", online.Title)
	assert.Equal(t, "https://ai-agents.devpost.com/", online.EventURL)
	assert.True(t, online.IsOnline)
	assert.Equal(t, repositories.LocationOnline, online.Location)
	assert.Equal(t, 1234, online.Attendees)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), online.Date)
	assert.Equal(t, "12:00 PM", online.Time)

	inPerson := hackathons[1]
	assert.Equal(t, "Bay Area Build Night", inPerson.Title)
	assert.False(t, inPerson.IsOnline)
	assert.Equal(t, "San Francisco, CA", inPerson.Location)
	assert.Equal(t, 500, inPerson.Attendees)
}

func TestParseHackathonMarkdownEmpty(t *testing.T) {
	assert.Empty(t, parseHackathonMarkdown(""))
	assert.Empty(t, parseHackathonMarkdown("no links here"))
	// the listing index itself is not an event
	assert.Empty(t, parseHackathonMarkdown("[All](https://devpost.com/hackathons)"))
}

func TestScrapeAndStore(t *testing.T) {
	repo := newMockHackathonRepo()
	svc := NewHackathonService(repo, &mockScraper{markdown: sampleListingMarkdown}, "https://devpost.com/hackathons")

	stats, err := svc.ScrapeAndStore(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Found)
	assert.Equal(t, 2, stats.Saved)
	assert.Equal(t, 0, stats.Skipped)
	assert.Len(t, repo.hackathons, 2)
}

func TestScrapeAndStoreSkipsFailedUpserts(t *testing.T) {
	repo := newMockHackathonRepo()
	repo.failURL = "https://ai-agents.devpost.com/"
	svc := NewHackathonService(repo, &mockScraper{markdown: sampleListingMarkdown}, "https://devpost.com/hackathons")

	stats, err := svc.ScrapeAndStore(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Found)
	assert.Equal(t, 1, stats.Saved)
	assert.Equal(t, 1, stats.Skipped)
}

func TestScrapeAndStoreScraperError(t *testing.T) {
	svc := NewHackathonService(newMockHackathonRepo(), &mockScraper{err: fmt.Errorf("render timeout")}, "https://devpost.com/hackathons")

	_, err := svc.ScrapeAndStore(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render timeout")
}
