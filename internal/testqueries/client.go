package testqueries

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ResultItem mirrors the fields of the API response this tool verifies.
type ResultItem struct {
	Name         string  `json:"name"`
	FinalScore   float64 `json:"final_score"`
	PriceMinLakh float64 `json:"price_min_lakh"`
	Seats        int     `json:"seats"`
	FuelType     string  `json:"fuel_type"`
	BodyType     string  `json:"body_type"`
	Reason       string  `json:"reason"`
}

// Suggestion mirrors the explanation object of the API response.
type Suggestion struct {
	CarName string   `json:"car_name"`
	Summary string   `json:"summary"`
	Reasons []string `json:"reasons"`
}

// RecommendResponse mirrors the body of POST /recommend.
type RecommendResponse struct {
	Query          string       `json:"query"`
	Results        []ResultItem `json:"results"`
	Suggestion     *Suggestion  `json:"carpilot_suggestion"`
	TotalAvailable int          `json:"total_available"`
}

// checkServiceHealth verifies the service answers /healthz before the run.
func checkServiceHealth(ctx context.Context, config *Config) error {
	client := &http.Client{Timeout: config.Timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.BaseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status %d", resp.StatusCode)
	}
	return nil
}

// postRecommend submits one query and decodes the response.
func postRecommend(ctx context.Context, config *Config, query string) (RecommendResponse, error) {
	body, err := json.Marshal(map[string]any{"query": query, "top_k": config.TopK})
	if err != nil {
		return RecommendResponse{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.BaseURL+"/recommend", bytes.NewReader(body))
	if err != nil {
		return RecommendResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	client := &http.Client{Timeout: config.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return RecommendResponse{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return RecommendResponse{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out RecommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return RecommendResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
