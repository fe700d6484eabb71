package utils

import (
	"encoding/json"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	resourceModels "lms/models/resource"
)

var probeClient = resty.New().SetTimeout(5 * time.Second)

// ProbeResourceURL checks that the URL inside a media resource's payload
// answers at all. Purely advisory: failures are logged, never surfaced to the
// author, and never block resource creation.
func ProbeResourceURL(resourceType string, contentData []byte) {
	switch resourceType {
	case resourceModels.TypeImage, resourceModels.TypeVideo, resourceModels.TypeModel3D:
	default:
		return
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(contentData, &payload); err != nil || payload.URL == "" {
		return
	}

	resp, err := probeClient.R().Head(payload.URL)
	if err != nil {
		log.Printf("Media URL probe failed for %s: %v", payload.URL, err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Media URL %s answered with status %d", payload.URL, resp.StatusCode())
	}
}
