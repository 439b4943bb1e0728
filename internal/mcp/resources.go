// ABOUTME: MCP resource implementations for the food journal.
// ABOUTME: Provides nosh://today and nosh://favorites resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/nosh/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// nosh://today - Today's aggregated log
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nosh://today",
		Name:        "Today's Food Log",
		Description: "Today's food entries, activities, and nutrient totals",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// nosh://favorites - Saved favorite foods
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nosh://favorites",
		Name:        "Favorite Foods",
		Description: "Saved favorite foods with their nutrient profiles",
		MIMEType:    "application/json",
	}, s.handleFavoritesResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	foods, err := s.store.Foods()
	if err != nil {
		return nil, fmt.Errorf("failed to load foods: %w", err)
	}
	activities, err := s.store.Activities()
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	day := tracker.DayFor(foods, activities, tracker.Today())
	data, err := json.MarshalIndent(day, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "nosh://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleFavoritesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	favorites, err := s.store.Favorites()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	data, err := json.MarshalIndent(favorites, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "nosh://favorites",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
