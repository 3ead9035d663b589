package hygraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Client talks to the hosted content API (Hygraph) over plain GraphQL-on-HTTP.
// All storefront data originates here; the service keeps no catalog copy.
type Client struct {
	Endpoint string
	Token    string
	HTTP     *http.Client
}

// NewClient reads the endpoint and optional bearer token from the environment.
// A missing endpoint is not fatal at boot: every call then returns a
// configuration error so read paths can degrade instead of crashing.
func NewClient() *Client {
	return &Client{
		Endpoint: os.Getenv("HYGRAPH_API_URL"),
		Token:    os.Getenv("HYGRAPH_AUTH_TOKEN"),
		HTTP:     &http.Client{},
	}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// do runs one GraphQL operation and unmarshals the data payload into out.
// op names the operation for error classification (e.g. "createOrder").
func (c *Client) do(ctx context.Context, op, query string, vars map[string]any, out any) error {
	if c.Endpoint == "" {
		return &APIError{Op: op, Kind: KindConfig, Message: "content API endpoint not configured"}
	}

	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal %s request: %v", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build %s request: %v", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &APIError{Op: op, Kind: KindTransient, Message: fmt.Sprintf("failed to reach content API: %v", err)}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var gr gqlResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return classifyHTTP(op, resp.StatusCode, string(raw))
	}
	if len(gr.Errors) > 0 {
		return classifyGraphQL(op, resp.StatusCode, gr.Errors)
	}
	if resp.StatusCode != http.StatusOK {
		return classifyHTTP(op, resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.Unmarshal(gr.Data, out); err != nil {
			return fmt.Errorf("parse %s response: %v", op, err)
		}
	}
	return nil
}
