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

// Package wiring assembles repositories, services and controllers into the
// dependency graph the HTTP handler and the job queue share.
package wiring

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bvsbharat/ai-agent-platform/clients/cursordirectory"
	"github.com/bvsbharat/ai-agent-platform/clients/devpost"
	"github.com/bvsbharat/ai-agent-platform/config"
	"github.com/bvsbharat/ai-agent-platform/controllers"
	"github.com/bvsbharat/ai-agent-platform/middleware/authtoken"
	"github.com/bvsbharat/ai-agent-platform/repositories"
	"github.com/bvsbharat/ai-agent-platform/services"
)

// Services groups the domain services shared by the HTTP surface and the
// background workers.
type Services struct {
	Agent     *services.AgentService
	Auth      *services.AuthService
	MCP       *services.MCPService
	Rule      *services.RuleService
	Hackathon *services.HackathonService

	TokenManager *authtoken.Manager
}

// NewServices builds the repository and service graph over the database
func NewServices(cfg *config.Config, db *gorm.DB) (*Services, error) {
	agentRepo := repositories.NewAgentRepo(db)
	userRepo := repositories.NewUserRepo(db)
	mcpRepo := repositories.NewMCPRepo(db)
	ruleRepo := repositories.NewRuleRepo(db)
	hackathonRepo := repositories.NewHackathonRepo(db)

	tokenManager := authtoken.NewManager(cfg.JWTSigning, cfg.AuthHeader)
	directoryClient := cursordirectory.NewCursorDirectoryClient(cfg.DirectorySync)
	scraper, err := devpost.NewPageScraper(cfg.DirectorySync)
	if err != nil {
		return nil, fmt.Errorf("failed to build page scraper: %w", err)
	}

	return &Services{
		Agent: services.NewAgentService(agentRepo),
		Auth:  services.NewAuthService(userRepo, tokenManager),
		MCP: services.NewMCPService(mcpRepo, directoryClient,
			cfg.DirectorySync.PageSize, cfg.DirectorySync.MaxPages),
		Rule: services.NewRuleService(ruleRepo),
		Hackathon: services.NewHackathonService(hackathonRepo, scraper,
			cfg.DirectorySync.HackathonSourceURL),
		TokenManager: tokenManager,
	}, nil
}

// AppParams contains all wired application dependencies
type AppParams struct {
	// Middleware
	TokenManager *authtoken.Manager

	// Controllers
	AgentController     controllers.AgentController
	MCPController       controllers.MCPController
	RuleController      controllers.RuleController
	HackathonController controllers.HackathonController
	AuthController      controllers.AuthController

	// Database
	DB *gorm.DB
}

// NewAppParams wires the controllers over the service graph. The enqueuer
// comes in separately because the queue client is built after the services
// the workers close over.
func NewAppParams(
	db *gorm.DB,
	svcs *Services,
	enqueuer controllers.DirectoryJobEnqueuer,
) *AppParams {
	return &AppParams{
		TokenManager:        svcs.TokenManager,
		AgentController:     controllers.NewAgentController(svcs.Agent),
		MCPController:       controllers.NewMCPController(svcs.MCP, enqueuer),
		RuleController:      controllers.NewRuleController(svcs.Rule),
		HackathonController: controllers.NewHackathonController(svcs.Hackathon, enqueuer),
		AuthController:      controllers.NewAuthController(svcs.Auth),
		DB:                  db,
	}
}
