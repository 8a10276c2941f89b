package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/citro-voice-kernel/internal/jsonx"
)

// DashboardStats is the per-user summary returned by the dashboard service.
type DashboardStats struct {
	RegisteredEvents int `json:"registered_events"`
	CartItems        int `json:"cart_items"`
	TotalSpent       int `json:"total_spent"`
}

// UpcomingEvent is one entry of a user's upcoming schedule.
type UpcomingEvent struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Venue string `json:"venue"`
}

// PublishedEvent is the bookable event row owned by the event service. Seat
// counts here are live; the static knowledge base never is.
type PublishedEvent struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	TicketPrice int      `json:"ticket_price"`
	Seats       int      `json:"seats"`
	Registered  int      `json:"registered"`
	Images      []string `json:"images"`
	StartTime   string   `json:"start_time"`
	Venue       string   `json:"venue"`
}

// DashboardService is the external dashboard collaborator.
type DashboardService interface {
	Stats(ctx context.Context, userID string) (*DashboardStats, error)
	UpcomingEvents(ctx context.Context, userID string) ([]UpcomingEvent, error)
}

// EventService is the external bookable-events collaborator.
type EventService interface {
	PublishedEvents(ctx context.Context, search string, limit int) ([]PublishedEvent, error)
}

// HTTPDashboardService talks to the dashboard service over HTTP.
type HTTPDashboardService struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPDashboardService creates a dashboard client with a request timeout.
func NewHTTPDashboardService(baseURL string, logger *zap.Logger) *HTTPDashboardService {
	return &HTTPDashboardService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger.Named("dashboard"),
	}
}

func (s *HTTPDashboardService) Stats(ctx context.Context, userID string) (*DashboardStats, error) {
	var stats DashboardStats
	if err := s.getJSON(ctx, "/api/dashboard/stats?user="+url.QueryEscape(userID), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *HTTPDashboardService) UpcomingEvents(ctx context.Context, userID string) ([]UpcomingEvent, error) {
	var events []UpcomingEvent
	if err := s.getJSON(ctx, "/api/dashboard/upcoming?user="+url.QueryEscape(userID), &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *HTTPDashboardService) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("dashboard service returned %d: %s", resp.StatusCode, string(body))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return jsonx.Unmarshal(data, out)
}

// HTTPEventService talks to the event service over HTTP.
type HTTPEventService struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPEventService creates an event-service client with a request timeout.
func NewHTTPEventService(baseURL string, logger *zap.Logger) *HTTPEventService {
	return &HTTPEventService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger.Named("events"),
	}
}

func (s *HTTPEventService) PublishedEvents(ctx context.Context, search string, limit int) ([]PublishedEvent, error) {
	u := s.baseURL + "/api/events/published?search=" + url.QueryEscape(search) +
		"&limit=" + strconv.Itoa(limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("event service returned %d: %s", resp.StatusCode, string(body))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var events []PublishedEvent
	if err := jsonx.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}
