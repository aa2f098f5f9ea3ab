package hue

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"

	"github.com/charmbracelet/log"
	"github.com/fussel132/hue-controller/internal/config"
	"github.com/fussel132/hue-controller/internal/models"
)

type HueAPIService struct {
	cfg    config.Config
	logger *log.Logger
	client *http.Client
}

func NewHueAPIService(cfg config.Config, logger *log.Logger) *HueAPIService {
	if cfg.Insecure {
		logger.Warn("TLS certificate verification of the hue bridge is disabled")
	}

	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.Insecure},
	}
	client := &http.Client{Transport: tr, Timeout: cfg.Timeout}

	return &HueAPIService{cfg: cfg, logger: logger, client: client}
}

// GetSnapshot reads the full state (lights, groups and scenes) of the bridge at address.
func (h *HueAPIService) GetSnapshot(ctx context.Context, address string, appKey string) (*models.Snapshot, error) {
	status, body, err := h.GET(ctx, address, appKey, "/")
	if err != nil {
		return nil, err
	}

	if bridgeErr := parseErrorResponse(body); bridgeErr != nil {
		h.logger.Debug("hue bridge returned an error", "kind", bridgeErr.Kind, "description", bridgeErr.Description)
		return nil, bridgeErr
	}

	snapshot, err := models.ParseSnapshot(body)
	if err != nil {
		return nil, &ResponseError{Status: status, Err: err}
	}

	h.logger.Info("Read bridge snapshot",
		"lights", len(snapshot.Lights),
		"groups", len(snapshot.Groups),
		"scenes", len(snapshot.Scenes),
	)
	return snapshot, nil
}

func (h *HueAPIService) GET(ctx context.Context, address string, appKey string, path string) (int, []byte, error) {
	return h.makeRequest(ctx, http.MethodGet, address, appKey, path)
}

func (h *HueAPIService) makeRequest(ctx context.Context, verb string, address string, appKey string, path string) (int, []byte, error) {

	url := fmt.Sprintf("https://%s/api/%s%s", address, appKey, path)
	logURL := fmt.Sprintf("https://%s/api/%s%s", address, redact(appKey), path)

	req, err := http.NewRequestWithContext(ctx, verb, url, nil)
	if err != nil {
		err = withoutURL(err)
		h.logger.Debug("Error building Hue API request", "url", logURL, "err", err)
		return 0, nil, &TransportError{Err: err}
	}

	h.logger.Debug("Making Hue API call", "verb", verb, "url", logURL, "timeout", h.cfg.Timeout)

	// make the request
	resp, err := h.client.Do(req)
	if err != nil {
		err = withoutURL(err)
		h.logger.Debug("Error making Hue API call", "url", logURL, "err", err)
		return 0, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = withoutURL(err)
		h.logger.Debug("Error reading Hue API response", "url", logURL, "err", err)
		return resp.StatusCode, nil, &TransportError{Err: err}
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// all good
	default:
		// v1 errors normally arrive with a 200, let the body decide
		h.logger.Warn("Unexpected Hue API status", "url", logURL, "status", resp.Status)
	}

	return resp.StatusCode, responseBody, nil
}

// parseErrorResponse returns the first error of a v1 error array, or nil if body isn't one.
func parseErrorResponse(body []byte) *BridgeError {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}

	var response []GeneralResponse
	if err := json.Unmarshal(trimmed, &response); err != nil {
		return nil
	}
	if len(response) > 0 && response[0].Error != nil {
		return newBridgeError(*response[0].Error)
	}
	return nil
}

// withoutURL drops the request url (which carries the application key) from net/http errors.
func withoutURL(err error) error {
	var urlErr *neturl.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

func redact(appKey string) string {
	if len(appKey) <= 4 {
		return "****"
	}
	return appKey[:4] + "****"
}
