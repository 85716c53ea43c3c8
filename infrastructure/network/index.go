package network

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NetworkController is a thin HTTP client for outbound calls to remote
// services. A zero Timeout falls back to 30s.
type NetworkController struct {
	BaseUrl string
	Timeout time.Duration
}

func (nc *NetworkController) client() *http.Client {
	timeout := nc.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// Post sends body to BaseUrl+path and returns the response payload and status
// code. Non-2xx responses are returned as errors alongside the payload.
func (nc *NetworkController) Post(path string, headers *map[string]string, body []byte) (*[]byte, *int, error) {
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s%s", nc.BaseUrl, path), bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	if headers != nil {
		for key, value := range *headers {
			req.Header.Set(key, value)
		}
	}
	res, err := nc.client().Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &res.StatusCode, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &payload, &res.StatusCode, fmt.Errorf("request to %s failed with status code %d", path, res.StatusCode)
	}
	return &payload, &res.StatusCode, nil
}

// Get fetches BaseUrl+path.
func (nc *NetworkController) Get(path string, headers *map[string]string) (*[]byte, *int, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", nc.BaseUrl, path), nil)
	if err != nil {
		return nil, nil, err
	}
	if headers != nil {
		for key, value := range *headers {
			req.Header.Set(key, value)
		}
	}
	res, err := nc.client().Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &res.StatusCode, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &payload, &res.StatusCode, fmt.Errorf("request to %s failed with status code %d", path, res.StatusCode)
	}
	return &payload, &res.StatusCode, nil
}
