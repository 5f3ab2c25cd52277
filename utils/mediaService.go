package utils

import (
	"eduflex/config"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// FetchMediaDuration asks the media service for the duration of a video.
// Lesson creation tolerates failures here; the duration simply stays empty.
func FetchMediaDuration(mediaURL string) (string, error) {
	if config.AppConfig.MediaApiURL == "" {
		return "", fmt.Errorf("media api not configured")
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.MediaApiKey).
		SetQueryParam("url", mediaURL).
		Get(config.AppConfig.MediaApiURL + "/v1/metadata")
	if err != nil {
		log.Printf("Media service error: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("media service returned status %d", resp.StatusCode())
	}

	var meta struct {
		Duration string `json:"duration"`
	}
	if err := json.Unmarshal(resp.Body(), &meta); err != nil {
		return "", fmt.Errorf("invalid media service response: %w", err)
	}
	return meta.Duration, nil
}
