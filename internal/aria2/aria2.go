// Package aria2 hands resolved picture mappings to an aria2 daemon over JSON-RPC.
package aria2

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"comic99/internal/domain"
	"comic99/internal/sharedhttp"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const DefaultRPC = "http://127.0.0.1:6800/jsonrpc"

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type call struct {
	MethodName string `json:"methodName"`
	Params     []any  `json:"params"`
}

type Client struct {
	rpc  string
	http *resty.Client
}

func New(rpc string) *Client {
	if rpc == "" {
		rpc = DefaultRPC
	}

	return &Client{
		rpc: rpc,
		http: resty.New().
			SetTransport(sharedhttp.Transport).
			SetTimeout(30 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(time.Second),
	}
}

func defaultOptions() map[string]any {
	return map[string]any{
		"continue":                  "true",
		"max-connection-per-server": "5",
		"split":                     "5",
		"header":                    []string{"User-Agent: " + sharedhttp.UserAgent},
	}
}

func buildRequest(entries []domain.PictureEntry, destDir string) request {
	calls := make([]call, 0, len(entries))

	for _, e := range entries {
		opts := defaultOptions()
		opts["out"] = e.LocalName
		if destDir != "" {
			opts["dir"] = destDir
		}

		calls = append(calls, call{
			MethodName: "aria2.addUri",
			Params:     []any{[]string{e.RemoteURL}, opts},
		})
	}

	return request{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  "system.multicall",
		Params:  []any{calls},
	}
}

// AddURIs queues every picture in one system.multicall request.
func (c *Client) AddURIs(ctx context.Context, entries []domain.PictureEntry, destDir string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(buildRequest(entries, destDir)).
		Post(c.rpc)
	if err != nil {
		return errors.Wrap(err, "could not call aria2")
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("aria2 rpc returned status code %d", resp.StatusCode())
	}

	return nil
}
