package toolchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	releaseFetchTimeout = 15 * time.Second
	releaseIndexURL     = "https://endoflife.date/api/python.json"
)

type pythonRelease struct {
	Cycle  string `json:"cycle"`
	Latest string `json:"latest"`
	EOL    any    `json:"eol"` // bool (false) or string date
}

// LatestPythonVersion returns the newest stable CPython release, taken from
// the first release cycle that has not reached end-of-life.
func (t *LocalToolchainRepository) LatestPythonVersion(ctx context.Context) (string, error) {
	client := &http.Client{Timeout: releaseFetchTimeout} //nolint:exhaustruct // default transport

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releaseIndexURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch Python releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var releases []pythonRelease
	if decodeErr := json.NewDecoder(resp.Body).Decode(&releases); decodeErr != nil {
		return "", fmt.Errorf("failed to parse Python releases: %w", decodeErr)
	}

	for _, release := range releases {
		if isActiveRelease(release) {
			return release.Latest, nil
		}
	}

	return "", errors.New("no active Python release found")
}

// isActiveRelease returns true if the release cycle has not reached
// end-of-life. The EOL field is false while active, or a date string once
// an EOL date is scheduled, in which case that date must be in the future.
func isActiveRelease(release pythonRelease) bool {
	switch v := release.EOL.(type) {
	case bool:
		return !v
	case string:
		eolDate, err := time.Parse("2006-01-02", v)
		if err != nil {
			return false
		}
		return eolDate.After(time.Now())
	default:
		return false
	}
}
