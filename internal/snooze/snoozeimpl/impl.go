package snoozeimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/snoozelabs/snooze-bot/internal/snooze"
	"github.com/snoozelabs/snooze-bot/pkg/config"
	apperrors "github.com/snoozelabs/snooze-bot/pkg/errors"
	"github.com/snoozelabs/snooze-bot/pkg/logger"
	"go.uber.org/fx"
)

type SnoozeImpl struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *SnoozeImpl {
	return &SnoozeImpl{
		baseURL:    strings.TrimRight(opts.Config.Snooze.BaseURL, "/"),
		httpClient: &http.Client{},
		logger:     opts.Logger.WithComponent("SnoozeClient"),
	}
}

var _ snooze.Client = (*SnoozeImpl)(nil)

// do issues one JSON exchange against the service. Transport failures come
// back as ErrNetwork, non-2xx statuses as the matching taxonomy error with
// the status kept as the code. Calls are never retried here.
func (c *SnoozeImpl) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, fmt.Sprintf("encode %s %s request", method, path))
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("build %s %s request", method, path))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.WrapWithCode(
			apperrors.ErrNetwork,
			"NETWORK",
			fmt.Sprintf("%s %s: %v", method, path, err),
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("Request rejected by story service",
			"method", method,
			"path", path,
			"status", resp.StatusCode)
		return apperrors.WrapWithCode(
			apperrors.FromStatus(resp.StatusCode),
			strconv.Itoa(resp.StatusCode),
			fmt.Sprintf("%s %s returned %d", method, path, resp.StatusCode),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("decode %s %s response", method, path))
	}
	return nil
}
