// Package shipping registers outbound parcels with EasyPost so shipping
// emails can link a live tracking page.
package shipping

import (
	"fmt"
	"log/slog"

	"github.com/EasyPost/easypost-go/v5"
)

// TrackerService creates EasyPost trackers for dispatched orders.
type TrackerService struct {
	client *easypost.Client
}

func NewTrackerService(apiKey string) *TrackerService {
	if apiKey == "" {
		return &TrackerService{}
	}
	return &TrackerService{client: easypost.New(apiKey)}
}

// Register creates a tracker for the carrier tracking code and returns the
// public tracking URL. With no API key configured it returns an empty URL so
// the caller can still dispatch the order.
func (t *TrackerService) Register(trackingCode, carrier string) (string, error) {
	if t.client == nil {
		slog.Warn("easypost not configured, skipping tracker registration", "tracking_code", trackingCode)
		return "", nil
	}
	if trackingCode == "" {
		return "", fmt.Errorf("empty tracking code")
	}

	tracker, err := t.client.CreateTracker(&easypost.CreateTrackerOptions{
		TrackingCode: trackingCode,
		Carrier:      carrier,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create tracker: %w", err)
	}

	slog.Info("registered shipment tracker", "tracking_code", trackingCode, "carrier", carrier)
	return tracker.PublicURL, nil
}
