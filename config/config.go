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

package config

// Config holds all configuration for the application
type Config struct {
	ServerHost          string
	ServerPort          int
	AuthHeader          string
	AutoMaxProcsEnabled bool
	LogLevel            string
	POSTGRESQL          POSTGRESQL

	// HTTP Server timeout configurations
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
	MaxHeaderBytes      int

	// Database operation timeout configuration
	DbOperationTimeoutSeconds int
	HealthCheckTimeoutSeconds int

	// CORSAllowedOrigin is the single allowed origin for CORS; use "*" to allow all
	CORSAllowedOrigin string

	// JWT signing configuration for issued bearer tokens
	JWTSigning JWTSigningConfig

	// Directory sync configuration (MCP catalog + hackathon scraping)
	DirectorySync DirectorySyncConfig

	IsLocalDevEnv bool
}

// POSTGRESQL holds the database connection configuration
type POSTGRESQL struct {
	Host      string
	Port      int
	User      string
	Password  string `json:"-"`
	DBName    string
	SSLMode   string
	DbConfigs DbConfigs
}

// DbConfigs holds gorm and sql.DB tuning knobs
type DbConfigs struct {
	SkipDefaultTransaction    bool
	SlowThresholdMilliseconds int64

	MaxIdleCount       *int64
	MaxOpenCount       *int64
	MaxIdleTimeSeconds *int64
	MaxLifetimeSeconds *int64
}

// JWTSigningConfig holds the HS256 signing parameters for auth tokens
type JWTSigningConfig struct {
	Secret        string `json:"-"`
	Issuer        string
	ExpirySeconds int64
}

// DirectorySyncConfig holds the remote-source configuration of the sync jobs
type DirectorySyncConfig struct {
	// CursorDirectoryURL is the base URL of the Cursor Directory REST API
	CursorDirectoryURL string
	// CursorDirectoryToken is the anon bearer token for the directory API
	CursorDirectoryToken string `json:"-"`
	// MaxPages bounds how many remote pages a single sync job fetches
	MaxPages int
	// PageSize is the per-page record count requested from the remote API
	PageSize int

	// Firecrawl configuration for the hackathon page scrape
	FirecrawlAPIKey string `json:"-"`
	FirecrawlAPIURL string
	// HackathonSourceURL is the listings page scraped for hackathons
	HackathonSourceURL string

	// JobTimeoutSeconds bounds a single sync or scrape job run
	JobTimeoutSeconds int
}
