package backend

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

func campaignPath(id int64, suffix string) string {
	return "/api/campaigns/" + strconv.FormatInt(id, 10) + suffix
}

// CampaignsList returns campaigns with their sent counters, newest first.
func (c *Client) CampaignsList(ctx context.Context) ([]Campaign, error) {
	var out []Campaign
	if err := c.getJSON(ctx, "/api/campaigns-list", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CampaignsWithStats adds signing and PDF generation progress.
func (c *Client) CampaignsWithStats(ctx context.Context) ([]Campaign, error) {
	var out []Campaign
	if err := c.getJSON(ctx, "/api/campaigns-with-stats", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Campaign(ctx context.Context, id int64) (*Campaign, error) {
	var out Campaign
	if err := c.getJSON(ctx, campaignPath(id, ""), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CampaignContracts(ctx context.Context, id int64) ([]Row, error) {
	var out []Row
	if err := c.getJSON(ctx, campaignPath(id, "/contracts"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CampaignContractsWithStatus(ctx context.Context, id int64) ([]ContractStatus, error) {
	var out []ContractStatus
	if err := c.getJSON(ctx, campaignPath(id, "/contracts-with-status"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContractTemplate returns the HTML template generated from the uploaded
// contract document.
func (c *Client) ContractTemplate(ctx context.Context, id int64) (string, error) {
	var out struct {
		HTMLPage string `json:"html_page"`
	}
	if err := c.getJSON(ctx, campaignPath(id, "/contract-template"), &out); err != nil {
		return "", err
	}
	return out.HTMLPage, nil
}

func (c *Client) PopulateStatus(ctx context.Context, id int64) (*PopulateResult, error) {
	var out PopulateResult
	if err := c.sendJSON(ctx, http.MethodPost, campaignPath(id, "/populate-status"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchCompanies(ctx context.Context, q string) ([]string, error) {
	var out []struct {
		Company string `json:"company"`
	}
	if err := c.getJSON(ctx, "/api/companies/search?"+url.Values{"q": {q}}.Encode(), &out); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(out))
	for _, o := range out {
		names = append(names, o.Company)
	}
	return names, nil
}

func (c *Client) CreateCampaign(ctx context.Context, in NewCampaign) (*CreatedCampaign, error) {
	var out CreatedCampaign
	if err := c.sendJSON(ctx, http.MethodPost, "/api/campaigns", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadEmployees sends the employee roster spreadsheet of a campaign.
func (c *Client) UploadEmployees(ctx context.Context, campaignID int64, filename string, r io.Reader) (*UploadResult, error) {
	var out UploadResult
	if err := c.postMultipart(ctx, "/api/campaigns/upload-employees", fileForm(campaignID, filename, r), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadContract sends the contract document the campaign template is
// generated from. PDF generation continues in the background.
func (c *Client) UploadContract(ctx context.Context, campaignID int64, filename string, r io.Reader) (*UploadResult, error) {
	var out UploadResult
	if err := c.postMultipart(ctx, "/api/campaigns/upload-contract", fileForm(campaignID, filename, r), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func fileForm(campaignID int64, filename string, r io.Reader) func(*multipart.Writer) error {
	return func(mw *multipart.Writer) error {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, r); err != nil {
			return fmt.Errorf("copy %s: %w", filename, err)
		}
		return mw.WriteField("campaign_id", strconv.FormatInt(campaignID, 10))
	}
}
