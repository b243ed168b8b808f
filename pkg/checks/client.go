package checks

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	cleanhttp "github.com/hashicorp/go-cleanhttp"
	"github.com/robfig/cron/v3"

	"github.com/hchk/hchk/pkg/logger"
)

// DefaultBaseURL is the production checks endpoint.
const DefaultBaseURL = "https://healthchecks.io/api/v1/checks/"

// Client is the sole boundary between the program and the remote service.
// It owns the credential and base URL, validates inputs before any network
// call, and classifies every failure as a ValidationError, TransportError,
// APIStatusError or DecodeError.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	validate *validator.Validate
	logger   *logger.Logger
}

// New creates a client for the given API key. An empty baseURL selects the
// production endpoint; tests substitute a local server URL. A nil logger
// falls back to the default one.
func New(apiKey, baseURL string, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		http:     cleanhttp.DefaultClient(),
		validate: validator.New(),
		logger:   log,
	}
}

// SetHTTPClient replaces the underlying HTTP client, e.g. to add a deadline.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.http = hc
}

type addRequest struct {
	Name     string   `json:"name"`
	Schedule string   `json:"schedule"`
	Grace    int      `json:"grace"`
	Tags     string   `json:"tags"`
	TZ       string   `json:"tz"`
	Unique   []string `json:"unique"`
}

type addInput struct {
	Name       string `validate:"required"`
	GraceHours int    `validate:"min=1,max=8760"`
}

func (c *Client) validateAdd(name, schedule string, graceHours int) error {
	in := addInput{Name: name, GraceHours: graceHours}
	if err := c.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Name":
				return &ValidationError{Reason: "name cannot be empty"}
			case "GraceHours":
				return &ValidationError{Reason: "grace period out of range"}
			}
		}
		return &ValidationError{Reason: err.Error()}
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return &ValidationError{Reason: "invalid cron schedule"}
	}
	return nil
}

// Add creates a check. The grace period is given in hours (1 to 8760
// inclusive) and transmitted in seconds. The service deduplicates by name,
// so adding an existing name updates it instead of creating a second check.
// Validation failures are reported before any request is sent.
func (c *Client) Add(name, schedule string, graceHours int, tz, tags string) (*Check, error) {
	name = strings.TrimSpace(name)
	if err := c.validateAdd(name, schedule, graceHours); err != nil {
		return nil, err
	}

	if tz == "" {
		tz = "UTC"
	}
	body := &addRequest{
		Name:     name,
		Schedule: schedule,
		Grace:    graceHours * 3600,
		Tags:     tags,
		TZ:       tz,
		Unique:   []string{"name"},
	}

	resp, err := c.doRequest(http.MethodPost, c.baseURL, body, true)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return decodeCheck(resp)
}

type checksResponse struct {
	Checks []*Check `json:"checks"`
}

// Get lists checks. A non-empty query keeps only checks whose name or ID
// contains it as a case-sensitive substring. Order is whatever order the
// service returned, and every returned check has its derived identifiers
// resolved.
func (c *Client) Get(query string) ([]*Check, error) {
	resp, err := c.doRequest(http.MethodGet, c.baseURL, nil, true)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope checksResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &DecodeError{Err: err}
	}

	var out []*Check
	for _, check := range envelope.Checks {
		check.ID()
		check.ShortID()
		if query != "" && !strings.Contains(check.Name, query) && !strings.Contains(check.ID(), query) {
			continue
		}
		out = append(out, check)
	}
	return out, nil
}

// Find looks a check up by a name or ID fragment and returns the first
// match in service order, or nil when nothing matched. Any request failure
// is logged and also reported as nil, so callers cannot tell "no such
// check" from "request failed"; kept for compatibility with the established
// command behavior.
func (c *Client) Find(fragment string) *Check {
	matches, err := c.Get(fragment)
	if err != nil {
		c.logger.Warn("check lookup failed", "fragment", fragment, "error", err)
		return nil
	}
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// Pause pauses the check and returns its updated representation.
func (c *Client) Pause(check *Check) (*Check, error) {
	resp, err := c.doRequest(http.MethodPost, c.baseURL+check.ID()+"/pause", nil, true)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return decodeCheck(resp)
}

// Ping sends a heartbeat to the check's dedicated ping endpoint. Any 2xx
// response is success; no body is decoded. The ping host accepts
// unauthenticated requests, so no API key header is sent.
func (c *Client) Ping(check *Check) error {
	resp, err := c.doRequest(http.MethodGet, check.PingURL, nil, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkResponse(resp)
}

// Delete removes the check and returns its last known representation.
func (c *Client) Delete(check *Check) (*Check, error) {
	resp, err := c.doRequest(http.MethodDelete, c.baseURL+check.ID(), nil, true)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return decodeCheck(resp)
}

func (c *Client) doRequest(method, url string, body interface{}, withKey bool) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, &ValidationError{Reason: err.Error()}
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if withKey {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return resp, nil
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return &APIStatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

func decodeCheck(resp *http.Response) (*Check, error) {
	defer resp.Body.Close()
	check := &Check{}
	if err := json.NewDecoder(resp.Body).Decode(check); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return check, nil
}
