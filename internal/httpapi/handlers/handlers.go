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

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/portls-labs/portls/pkg/cache"
	"github.com/portls-labs/portls/pkg/catalog"
	"github.com/portls-labs/portls/pkg/config"
	"github.com/portls-labs/portls/pkg/docstore"
	"github.com/portls-labs/portls/pkg/types"
)

const (
	planetCollection  = "planet"
	profileCollection = "profile"
)

type Handlers struct {
	config   *config.AppConfig
	store    docstore.Store
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandlers(cfg *config.AppConfig, store docstore.Store, c cache.Cache) *Handlers {
	return &Handlers{
		config:   cfg,
		store:    store,
		cache:    c,
		cacheTTL: time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	}
}

func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Portls API running"})
}

// ListPlanets returns every stored planet, normalized. When the store is
// unavailable or the read fails, the built-in planets are served instead.
func (h *Handlers) ListPlanets(c *gin.Context) {
	ctx := c.Request.Context()

	docs, err := h.store.GetDocuments(ctx, planetCollection)
	if err != nil {
		if !errors.Is(err, docstore.ErrUnavailable) {
			logrus.WithError(err).Error("failed to list planets, serving defaults")
		}
		c.JSON(http.StatusOK, catalog.DefaultPlanets())
		return
	}

	c.JSON(http.StatusOK, docstore.NormalizeAll(docs))
}

// GetPlanet looks a planet up by name: cache first, then the store, then
// the built-in planets (case-insensitively). Unknown names get a 404.
func (h *Handlers) GetPlanet(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")
	key := planetCollection + ":" + strings.ToLower(name)

	if rec, ok := h.cachedRecord(ctx, key); ok {
		c.JSON(http.StatusOK, rec)
		return
	}

	doc, err := h.store.FindDocument(ctx, planetCollection, docstore.Record{"name": name})
	if err == nil {
		rec := docstore.Normalize(doc)
		h.cacheRecord(ctx, key, rec)
		c.JSON(http.StatusOK, rec)
		return
	}
	if !errors.Is(err, docstore.ErrNotFound) && !errors.Is(err, docstore.ErrUnavailable) {
		logrus.WithField("planet", name).WithError(err).Error("planet lookup failed, falling back to defaults")
	}

	if p, ok := catalog.FindDefaultPlanet(name); ok {
		p.ID = name
		c.JSON(http.StatusOK, p)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Planet not found"})
}

// ListToys serves the demo toy inventory, optionally filtered by the
// "planet" query parameter.
func (h *Handlers) ListToys(c *gin.Context) {
	if planet := c.Query("planet"); planet != "" {
		c.JSON(http.StatusOK, catalog.ToysForPlanet(planet))
		return
	}
	c.JSON(http.StatusOK, catalog.DemoToys())
}

// GetProfile returns a stored profile by username, or the demo profile for
// users without one.
func (h *Handlers) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.Param("username")
	key := profileCollection + ":" + username

	if rec, ok := h.cachedRecord(ctx, key); ok {
		c.JSON(http.StatusOK, rec)
		return
	}

	doc, err := h.store.FindDocument(ctx, profileCollection, docstore.Record{"username": username})
	if err == nil {
		rec := docstore.Normalize(doc)
		h.cacheRecord(ctx, key, rec)
		c.JSON(http.StatusOK, rec)
		return
	}
	if !errors.Is(err, docstore.ErrNotFound) && !errors.Is(err, docstore.ErrUnavailable) {
		logrus.WithField("username", username).WithError(err).Error("profile lookup failed, serving default profile")
	}

	c.JSON(http.StatusOK, catalog.DefaultProfile(username))
}

// InitiateTravel echoes a mock wormhole booking. No inventory or booking
// record is created.
func (h *Handlers) InitiateTravel(c *gin.Context) {
	var req types.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planet is required"})
		return
	}

	c.JSON(http.StatusOK, types.TravelResponse{
		Status: "stabilizing",
		Planet: req.Planet,
		ETA:    3,
		Token:  "WH-" + strings.ToUpper(strings.ReplaceAll(req.Planet, " ", "")),
	})
}

// StoreDiagnostics reports whether the document store is configured and
// reachable, plus a sample of its collections.
func (h *Handlers) StoreDiagnostics(c *gin.Context) {
	ctx := c.Request.Context()

	resp := gin.H{
		"backend":           "running",
		"database_url_set":  h.config.Database.URL != "",
		"database_name_set": h.config.Database.Name != "",
		"connection_status": "not_connected",
		"collections":       []string{},
	}

	if err := h.store.Ping(ctx); err != nil {
		if errors.Is(err, docstore.ErrUnavailable) {
			resp["connection_status"] = "not_configured"
		} else {
			logrus.WithError(err).Warn("document store ping failed")
			resp["connection_status"] = "error"
			resp["error"] = err.Error()
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["connection_status"] = "connected"
	if names, err := h.store.Collections(ctx); err == nil {
		if len(names) > 10 {
			names = names[:10]
		}
		resp["collections"] = names
	} else {
		logrus.WithError(err).Warn("failed to list collections")
		resp["error"] = err.Error()
	}

	c.JSON(http.StatusOK, resp)
}

// cachedRecord returns the normalized record cached under key, if any.
// Unreadable entries are treated as misses.
func (h *Handlers) cachedRecord(ctx context.Context, key string) (docstore.Record, bool) {
	val, err := h.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	s, ok := val.(string)
	if !ok {
		return nil, false
	}
	var rec docstore.Record
	if err := json.Unmarshal([]byte(s), &rec); err != nil {
		return nil, false
	}
	return rec, true
}

func (h *Handlers) cacheRecord(ctx context.Context, key string, rec docstore.Record) {
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, key, string(data), h.cacheTTL); err != nil {
		logrus.WithField("key", key).WithError(err).Debug("failed to cache record")
	}
}
