// ABOUTME: MCP resource implementations for the workout tracker.
// ABOUTME: Provides broccoli://dashboard, broccoli://today, and broccoli://catalog resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/broccoli/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// broccoli://dashboard - headline stats, last 7 days, per-category totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "broccoli://dashboard",
		Name:        "Workout Dashboard",
		Description: "Workout day counts, last 7 days activity, and per-category totals",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	// broccoli://today - sets logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "broccoli://today",
		Name:        "Today's Workout",
		Description: "All sets logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// broccoli://catalog - categories with their exercises
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "broccoli://catalog",
		Name:        "Exercise Catalog",
		Description: "Every category and the exercises in it",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.svc.Dashboard(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return jsonResource("broccoli://dashboard", summary)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := s.now()
	records, err := s.svc.TodayRecords(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	var volume float64
	for _, r := range records {
		volume += r.Volume()
	}

	result := map[string]interface{}{
		"date":    models.FormatDate(now),
		"records": records,
		"counts": map[string]interface{}{
			"records": len(records),
			"volume":  volume,
		},
	}
	return jsonResource("broccoli://today", result)
}

type catalogCategory struct {
	models.Category
	Exercises []models.Exercise `json:"exercises"`
}

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	categories, err := s.svc.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	exercises, err := s.svc.Exercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	catalog := make([]catalogCategory, 0, len(categories))
	for _, c := range categories {
		entry := catalogCategory{Category: c, Exercises: []models.Exercise{}}
		for _, e := range exercises {
			if e.CategoryID == c.ID {
				entry.Exercises = append(entry.Exercises, e)
			}
		}
		catalog = append(catalog, entry)
	}
	return jsonResource("broccoli://catalog", map[string]interface{}{"categories": catalog})
}
