package backend

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"net/url"
)

const (
	SignatureField    = "signature"
	SignatureFilename = "signature.svg"
	SignatureMIME     = "image/svg+xml"
	pdfMIME           = "application/pdf"
)

func (c *Client) Contract(ctx context.Context, contractID string) (*Contract, error) {
	var out Contract
	if err := c.getJSON(ctx, "/api/contract/"+url.PathEscape(contractID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContractPDF downloads the current rendition of a contract.
func (c *Client) ContractPDF(ctx context.Context, contractID string) ([]byte, error) {
	return c.getBytes(ctx, "/api/contracts/"+url.PathEscape(contractID)+"/pdf", pdfMIME)
}

// SignContract uploads an SVG signature for a contract.
func (c *Client) SignContract(ctx context.Context, contractID string, svg []byte) (*SignResult, error) {
	var out SignResult
	err := c.postMultipart(ctx, "/api/sign-contract", func(mw *multipart.Writer) error {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, SignatureField, SignatureFilename))
		h.Set("Content-Type", SignatureMIME)
		part, err := mw.CreatePart(h)
		if err != nil {
			return err
		}
		if _, err := part.Write(svg); err != nil {
			return err
		}
		return mw.WriteField("contract_id", contractID)
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignedContracts(ctx context.Context) ([]SignedContract, error) {
	var out []SignedContract
	if err := c.getJSON(ctx, "/api/signed-contracts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SignedContractPDF(ctx context.Context, uid string) ([]byte, error) {
	return c.getBytes(ctx, "/api/signed-contracts/"+url.PathEscape(uid)+"/pdf", pdfMIME)
}
