// ABOUTME: MCP tool implementations for the food journal.
// ABOUTME: Tools load a collection, apply core logic, and write it back.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log a food entry with its nutrient breakdown for a calendar day",
	}, s.handleLogFood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log a physical activity with calories burned for a calendar day",
	}, s.handleLogActivity)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get the aggregated log for a calendar day: entries, activities, totals",
	}, s.handleGetDay)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a food or activity entry by ID or ID prefix",
	}, s.handleDeleteEntry)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_favorite",
		Description: "Toggle a food on or off the favorites list by food ID or name",
	}, s.handleToggleFavorite)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_favorites",
		Description: "List saved favorite foods",
	}, s.handleListFavorites)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_favorite",
		Description: "Log a favorite food onto a calendar day",
	}, s.handleLogFavorite)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "trends",
		Description: "Get per-day nutrient totals for the last N days",
	}, s.handleTrends)
}

// Tool input/output types

type logFoodInput struct {
	Name     string  `json:"name" jsonschema:"description=Food name,required"`
	Calories float64 `json:"calories,omitempty" jsonschema:"description=Calories (kcal)"`
	Protein  float64 `json:"protein,omitempty" jsonschema:"description=Protein (g)"`
	Fiber    float64 `json:"fiber,omitempty" jsonschema:"description=Fiber (g)"`
	Carbs    float64 `json:"carbs,omitempty" jsonschema:"description=Carbohydrates (g)"`
	Fat      float64 `json:"fat,omitempty" jsonschema:"description=Fat (g)"`
	Sugar    float64 `json:"sugar,omitempty" jsonschema:"description=Sugar (g)"`
	Date     string  `json:"date,omitempty" jsonschema:"description=Calendar day (YYYY-MM-DD), defaults to today"`
}

type logActivityInput struct {
	Name           string `json:"name" jsonschema:"description=Activity name,required"`
	CaloriesBurned int    `json:"calories_burned" jsonschema:"description=Calories burned,required"`
	Date           string `json:"date,omitempty" jsonschema:"description=Calendar day (YYYY-MM-DD), defaults to today"`
}

type getDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"description=Calendar day (YYYY-MM-DD), defaults to today"`
}

type deleteEntryInput struct {
	Kind string `json:"kind" jsonschema:"description=Entry kind: food or activity,required"`
	ID   string `json:"id" jsonschema:"description=Entry ID or prefix,required"`
}

type toggleFavoriteInput struct {
	ID   string `json:"id,omitempty" jsonschema:"description=Food entry ID or prefix"`
	Name string `json:"name,omitempty" jsonschema:"description=Food name (used when no ID given)"`
}

type logFavoriteInput struct {
	Name string `json:"name" jsonschema:"description=Favorite name,required"`
	Date string `json:"date,omitempty" jsonschema:"description=Calendar day (YYYY-MM-DD), defaults to today"`
}

type trendsInput struct {
	Days int `json:"days,omitempty" jsonschema:"description=Number of days to include (default 7)"`
}

type entryOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, entryOutput, error) {
	date := input.Date
	if date == "" {
		date = tracker.Today()
	}

	foods, err := s.store.Foods()
	if err != nil {
		return nil, entryOutput{}, err
	}

	candidate := models.FoodRecord{
		Name: input.Name,
		Nutrients: models.NutrientProfile{
			Calories: input.Calories,
			Protein:  input.Protein,
			Fiber:    input.Fiber,
			Carbs:    input.Carbs,
			Fat:      input.Fat,
			Sugar:    input.Sugar,
		},
		Date: date,
	}

	foods, saved, err := tracker.SaveFood(foods, candidate, nil)
	if err != nil {
		return nil, entryOutput{}, err
	}
	if err := s.store.SaveFoods(foods); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to save foods: %w", err)
	}

	return nil, entryOutput{
		ID:      saved.ID.String()[:8],
		Name:    saved.Name,
		Date:    saved.Date,
		Message: fmt.Sprintf("Logged %s on %s (%.0f kcal, ID: %s)", saved.Name, saved.Date, saved.Nutrients.Calories, saved.ID.String()[:8]),
	}, nil
}

func (s *Server) handleLogActivity(ctx context.Context, req *mcp.CallToolRequest, input logActivityInput) (*mcp.CallToolResult, entryOutput, error) {
	date := input.Date
	if date == "" {
		date = tracker.Today()
	}

	activities, err := s.store.Activities()
	if err != nil {
		return nil, entryOutput{}, err
	}

	candidate := models.ActivityRecord{
		Name:           input.Name,
		CaloriesBurned: input.CaloriesBurned,
		Date:           date,
	}

	activities, saved, err := tracker.SaveActivity(activities, candidate, nil)
	if err != nil {
		return nil, entryOutput{}, err
	}
	if err := s.store.SaveActivities(activities); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to save activities: %w", err)
	}

	return nil, entryOutput{
		ID:      saved.ID.String()[:8],
		Name:    saved.Name,
		Date:    saved.Date,
		Message: fmt.Sprintf("Logged %s on %s (%d kcal burned, ID: %s)", saved.Name, saved.Date, saved.CaloriesBurned, saved.ID.String()[:8]),
	}, nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input getDayInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = tracker.Today()
	}

	foods, err := s.store.Foods()
	if err != nil {
		return nil, nil, err
	}
	activities, err := s.store.Activities()
	if err != nil {
		return nil, nil, err
	}

	return nil, tracker.DayFor(foods, activities, date), nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input deleteEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	switch input.Kind {
	case "food":
		foods, err := s.store.Foods()
		if err != nil {
			return nil, simpleOutput{}, err
		}
		foods, rec, err := tracker.DeleteFood(foods, input.ID)
		if err != nil {
			return nil, simpleOutput{}, err
		}
		if err := s.store.SaveFoods(foods); err != nil {
			return nil, simpleOutput{}, fmt.Errorf("failed to save foods: %w", err)
		}
		return nil, simpleOutput{Message: fmt.Sprintf("Deleted food %s (%s)", rec.Name, input.ID)}, nil
	case "activity":
		activities, err := s.store.Activities()
		if err != nil {
			return nil, simpleOutput{}, err
		}
		activities, rec, err := tracker.DeleteActivity(activities, input.ID)
		if err != nil {
			return nil, simpleOutput{}, err
		}
		if err := s.store.SaveActivities(activities); err != nil {
			return nil, simpleOutput{}, fmt.Errorf("failed to save activities: %w", err)
		}
		return nil, simpleOutput{Message: fmt.Sprintf("Deleted activity %s (%s)", rec.Name, input.ID)}, nil
	}
	return nil, simpleOutput{}, fmt.Errorf("unknown entry kind: %s", input.Kind)
}

func (s *Server) handleToggleFavorite(ctx context.Context, req *mcp.CallToolRequest, input toggleFavoriteInput) (*mcp.CallToolResult, simpleOutput, error) {
	foods, err := s.store.Foods()
	if err != nil {
		return nil, simpleOutput{}, err
	}
	favorites, err := s.store.Favorites()
	if err != nil {
		return nil, simpleOutput{}, err
	}

	var rec models.FoodRecord
	switch {
	case input.ID != "":
		rec, err = tracker.FindFoodByID(foods, input.ID)
		if err != nil {
			return nil, simpleOutput{}, err
		}
	case input.Name != "":
		rec = models.FoodRecord{Name: input.Name}
		if f, ok := latestFoodByName(foods, input.Name); ok {
			rec = f
		}
	default:
		return nil, simpleOutput{}, fmt.Errorf("either id or name is required")
	}

	favorites = tracker.ToggleFavorite(favorites, rec)
	if err := s.store.SaveFavorites(favorites); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save favorites: %w", err)
	}

	if _, ok := tracker.FindFavorite(favorites, rec.Name); ok {
		return nil, simpleOutput{Message: fmt.Sprintf("Favorited %s", rec.Name)}, nil
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Unfavorited %s", rec.Name)}, nil
}

func (s *Server) handleListFavorites(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	favorites, err := s.store.Favorites()
	if err != nil {
		return nil, nil, err
	}
	if len(favorites) == 0 {
		return nil, map[string]interface{}{"message": "No favorites saved."}, nil
	}
	return nil, favorites, nil
}

func (s *Server) handleLogFavorite(ctx context.Context, req *mcp.CallToolRequest, input logFavoriteInput) (*mcp.CallToolResult, entryOutput, error) {
	date := input.Date
	if date == "" {
		date = tracker.Today()
	}

	favorites, err := s.store.Favorites()
	if err != nil {
		return nil, entryOutput{}, err
	}
	fav, ok := tracker.FindFavorite(favorites, input.Name)
	if !ok {
		return nil, entryOutput{}, fmt.Errorf("no favorite named %q", input.Name)
	}

	foods, err := s.store.Foods()
	if err != nil {
		return nil, entryOutput{}, err
	}
	rec := tracker.NewFoodFromFavorite(fav, date)
	foods = append(foods, rec)
	if err := s.store.SaveFoods(foods); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to save foods: %w", err)
	}

	return nil, entryOutput{
		ID:      rec.ID.String()[:8],
		Name:    rec.Name,
		Date:    rec.Date,
		Message: fmt.Sprintf("Logged favorite %s on %s (ID: %s)", rec.Name, rec.Date, rec.ID.String()[:8]),
	}, nil
}

func (s *Server) handleTrends(ctx context.Context, req *mcp.CallToolRequest, input trendsInput) (*mcp.CallToolResult, any, error) {
	days := input.Days
	if days <= 0 {
		days = 7
	}

	foods, err := s.store.Foods()
	if err != nil {
		return nil, nil, err
	}
	activities, err := s.store.Activities()
	if err != nil {
		return nil, nil, err
	}

	since, err := tracker.Shift(tracker.Today(), -(days - 1))
	if err != nil {
		return nil, nil, err
	}

	var out []tracker.Day
	for _, d := range tracker.Aggregate(foods, activities) {
		if d.Date >= since {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return nil, map[string]interface{}{"message": "No entries in range."}, nil
	}
	return nil, out, nil
}

// latestFoodByName returns the most recently created food with the given name.
func latestFoodByName(foods []models.FoodRecord, name string) (models.FoodRecord, bool) {
	var match models.FoodRecord
	var found bool
	for _, f := range foods {
		if f.Name == name && (!found || f.CreatedAt.After(match.CreatedAt)) {
			match = f
			found = true
		}
	}
	return match, found
}
