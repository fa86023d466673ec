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

package db

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bvsbharat/ai-agent-platform/config"
)

var (
	dbInstance *gorm.DB
	dbOnce     sync.Once
)

// DSN builds the Postgres connection string from configuration
func DSN(cfg *config.POSTGRESQL) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// GetDB returns the shared gorm DB handle, opening it on first use.
// Repositories attach request contexts per-operation via WithContext.
func GetDB() *gorm.DB {
	dbOnce.Do(func() {
		cfg := config.GetConfig()
		handle, err := open(&cfg.POSTGRESQL)
		if err != nil {
			panic(fmt.Sprintf("failed to open database: %v", err))
		}
		dbInstance = handle
	})
	return dbInstance
}

func open(cfg *config.POSTGRESQL) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		SkipDefaultTransaction: cfg.DbConfigs.SkipDefaultTransaction,
		Logger: gormlogger.New(
			slogWriter{},
			gormlogger.Config{
				SlowThreshold:             time.Duration(cfg.DbConfigs.SlowThresholdMilliseconds) * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	}

	handle, err := gorm.Open(postgres.Open(DSN(cfg)), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := handle.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if v := cfg.DbConfigs.MaxIdleCount; v != nil {
		sqlDB.SetMaxIdleConns(int(*v))
	}
	if v := cfg.DbConfigs.MaxOpenCount; v != nil {
		sqlDB.SetMaxOpenConns(int(*v))
	}
	if v := cfg.DbConfigs.MaxIdleTimeSeconds; v != nil {
		sqlDB.SetConnMaxIdleTime(time.Duration(*v) * time.Second)
	}
	if v := cfg.DbConfigs.MaxLifetimeSeconds; v != nil {
		sqlDB.SetConnMaxLifetime(time.Duration(*v) * time.Second)
	}

	return handle, nil
}

// slogWriter adapts slog to gorm's logger.Writer interface
type slogWriter struct{}

func (slogWriter) Printf(format string, args ...any) {
	slog.Warn(fmt.Sprintf(format, args...))
}
