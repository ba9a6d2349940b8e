package activity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rcliao/activity-tracker/internal/model"
)

// Encode serializes activities in order into the stored blob format.
func Encode(activities []model.Activity) (string, error) {
	if activities == nil {
		activities = []model.Activity{}
	}
	b, err := json.Marshal(activities)
	if err != nil {
		return "", fmt.Errorf("encode activities: %w", err)
	}
	return string(b), nil
}

// Decode parses a stored blob. An empty or null blob yields no activities.
func Decode(blob string) ([]model.Activity, error) {
	blob = strings.TrimSpace(blob)
	if blob == "" || blob == "null" {
		return nil, nil
	}
	var activities []model.Activity
	if err := json.Unmarshal([]byte(blob), &activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}
