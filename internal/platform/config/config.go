// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (Content, Engagement) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Engagement backend selectors.
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the Inkwell API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Content Repository (filesystem markdown tree)
	ContentDir string `env:"CONTENT_DIR" envDefault:"./content"`

	// Site identity used by the RSS feed and sitemap
	SiteName        string `env:"SITE_NAME"        envDefault:"Inkwell"`
	SiteURL         string `env:"SITE_URL"         envDefault:"http://localhost:8080"`
	SiteDescription string `env:"SITE_DESCRIPTION" envDefault:"Notes on software and systems"`

	// Engagement Store backend ("redis" or "postgres")
	EngagementBackend string `env:"ENGAGEMENT_BACKEND" envDefault:"redis"`

	// Key-Value Document Store (Redis)
	RedisURL string `env:"REDIS_URL"`

	// Relational Database (PostgreSQL, used when ENGAGEMENT_BACKEND=postgres)
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Signing secret for anonymous visitor tokens
	SessionSecret string `env:"SESSION_SECRET,required"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Backend-conditional requirements cannot be expressed with struct tags.
	switch cfg.EngagementBackend {
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("config: REDIS_URL is required when ENGAGEMENT_BACKEND=redis")
		}
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("config: DATABASE_URL is required when ENGAGEMENT_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("config: unknown ENGAGEMENT_BACKEND %q (want redis or postgres)", cfg.EngagementBackend)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
