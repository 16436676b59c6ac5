package jobs

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	apiURL    = "https://new-api.zangia.mn/api/jobs"
	userAgent = "cv-screener"
)

var jobIDPattern = regexp.MustCompile(`/job/([^/?#]+)`)

// Client is a thin collaborator around the job board API. It only knows how
// to resolve a posting URL to the board's JSON endpoint and decode the
// result; all scoring happens elsewhere.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
	UserAgent  string
}

func NewClient(logger *zap.Logger) *Client {
	return &Client{
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIURL:    apiURL,
		UserAgent: userAgent,
	}
}

// ExtractJobID pulls the posting identifier out of a job page URL.
func ExtractJobID(postingURL string) (string, error) {
	m := jobIDPattern.FindStringSubmatch(postingURL)
	if m == nil {
		return "", fmt.Errorf("no job id found in url %q", postingURL)
	}
	return m[1], nil
}

// Fetch resolves the posting URL and returns the normalized job record.
func (c *Client) Fetch(postingURL string) (*Job, error) {
	id, err := ExtractJobID(postingURL)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s", c.APIURL, id)
	c.logger.Debug("fetching job posting", zap.String("url", endpoint))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching job %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching job %s: bad status: %s", id, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeJob(data)
}

// FromFile loads a job record from a local JSON file so screening can run
// without reaching the board.
func FromFile(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file %q: %w", path, err)
	}
	return decodeJob(data)
}

// decodeJob goes through a generic map so unknown or mistyped fields in the
// board payload do not break decoding of the ones we use.
func decodeJob(data []byte) (*Job, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding job payload: %w", err)
	}

	var job Job
	cfg := &mapstructure.DecoderConfig{
		Result:           &job,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding job payload: %w", err)
	}

	job.Skills = normalizeSkills(job.Skills)
	return &job, nil
}
