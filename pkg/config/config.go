/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig is the full service configuration, loaded once at process start.
type AppConfig struct {
	App       AppSettings
	APIServer APIServerConfig
	Database  DatabaseConfig
	Cache     CacheConfig
}

type AppSettings struct {
	Name        string
	Environment string
}

type APIServerConfig struct {
	Host string
	Port int
	CORS CORSConfig
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// DatabaseConfig points at the external document store. Both URL and Name
// must be set for the store to be used; leaving either empty is not an
// error, the service runs in degraded mode on default data.
type DatabaseConfig struct {
	URL  string
	Name string
}

type CacheConfig struct {
	// Backend selects the cache implementation: "inmemory" or "redis".
	Backend    string
	TTLSeconds int
	Redis      RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from an optional portls.yaml in the working
// directory plus environment variables. DATABASE_URL, DATABASE_NAME and
// PORT are bound explicitly since deployments set them without a prefix.
func Load() (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("app.name", "portls-api")
	v.SetDefault("app.environment", "local")
	v.SetDefault("apiserver.host", "0.0.0.0")
	v.SetDefault("apiserver.port", 8000)
	v.SetDefault("apiserver.cors.allowedOrigins", []string{"*"})
	v.SetDefault("apiserver.cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("apiserver.cors.allowedHeaders", []string{"Origin", "Content-Type", "X-Request-ID"})
	v.SetDefault("cache.backend", "inmemory")
	v.SetDefault("cache.ttlSeconds", 300)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.db", 0)

	v.SetConfigName("portls")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// The config file is optional; only a malformed file is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("database.url", "DATABASE_URL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("database.name", "DATABASE_NAME"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("apiserver.port", "PORT"); err != nil {
		return nil, err
	}

	return &AppConfig{
		App: AppSettings{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.environment"),
		},
		APIServer: APIServerConfig{
			Host: v.GetString("apiserver.host"),
			Port: v.GetInt("apiserver.port"),
			CORS: CORSConfig{
				AllowedOrigins: v.GetStringSlice("apiserver.cors.allowedOrigins"),
				AllowedMethods: v.GetStringSlice("apiserver.cors.allowedMethods"),
				AllowedHeaders: v.GetStringSlice("apiserver.cors.allowedHeaders"),
			},
		},
		Database: DatabaseConfig{
			URL:  v.GetString("database.url"),
			Name: v.GetString("database.name"),
		},
		Cache: CacheConfig{
			Backend:    v.GetString("cache.backend"),
			TTLSeconds: v.GetInt("cache.ttlSeconds"),
			Redis: RedisConfig{
				Addr:     v.GetString("cache.redis.addr"),
				Password: v.GetString("cache.redis.password"),
				DB:       v.GetInt("cache.redis.db"),
			},
		},
	}, nil
}
