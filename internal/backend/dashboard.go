package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.getJSON(ctx, "/api/dashboard-stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ContractsWithStatus(ctx context.Context) ([]ContractStatus, error) {
	var out []ContractStatus
	if err := c.getJSON(ctx, "/api/contracts-with-status", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) HourlyAnalytics(ctx context.Context) (*HourlyAnalytics, error) {
	var out HourlyAnalytics
	if err := c.getJSON(ctx, "/api/analytics/hourly", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func contractForm(contractID int64) url.Values {
	return url.Values{"contract_id": {strconv.FormatInt(contractID, 10)}}
}

func (c *Client) EmailPreview(ctx context.Context, contractID int64) (*EmailPreview, error) {
	var out EmailPreview
	if err := c.postForm(ctx, "/api/email-preview", contractForm(contractID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendEmail(ctx context.Context, contractID int64) error {
	return c.postForm(ctx, "/api/send-email", contractForm(contractID), nil)
}

func (c *Client) BulkSendEmail(ctx context.Context, req BulkSendRequest) (*BulkSendResult, error) {
	var out BulkSendResult
	if err := c.sendJSON(ctx, http.MethodPost, "/api/bulk-send-email", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
