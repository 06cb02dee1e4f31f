package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignContractSendsMultipart(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/sign-contract", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("X-Request-ID"), "req_"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "42", r.FormValue("contract_id"))
		f, hdr, err := r.FormFile("signature")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "signature.svg", hdr.Filename)
		require.Equal(t, "image/svg+xml", hdr.Header.Get("Content-Type"))
		got, _ := io.ReadAll(f)
		require.Equal(t, svg, got)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"message":     "Contract signed successfully",
			"contract_id": 42,
			"signed_at":   "2025-10-07T14:30:00",
		})
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).SignContract(context.Background(), "42", svg)
	require.NoError(t, err)
	require.Equal(t, int64(42), res.ContractID)
	require.Equal(t, "2025-10-07T14:30:00", res.SignedAt)
}

func TestErrorPayloads(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error field", 404, `{"error":"Contract not found"}`, "Contract not found"},
		{"detail field", 401, `{"detail":"Invalid credentials"}`, "Invalid credentials"},
		{"validation", 422, `{"detail":[{"loc":["body","contract_id"],"msg":"field required"}]}`, "field required"},
		{"plain text", 502, `Bad Gateway from proxy`, "Bad Gateway from proxy"},
		{"empty", 500, ``, "Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).Contract(context.Background(), "1")
			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, tc.status, apiErr.StatusCode)
			require.Equal(t, tc.want, apiErr.Message)
			require.True(t, strings.HasPrefix(apiErr.RequestID, "req_"))
			require.True(t, IsStatus(err, tc.status))
		})
	}
}

func TestDetailFallback(t *testing.T) {
	require.Equal(t, "fallback", Detail(errors.New("dial tcp: refused"), "fallback"))
	require.Equal(t, "Invalid credentials", Detail(&Error{StatusCode: 401, Message: "Invalid credentials"}, "fallback"))
	require.Equal(t, "fallback", Detail(&Error{StatusCode: 500, Message: "Internal Server Error"}, "fallback"))
}

func TestContractDecodesLooseColumns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/contract/7", r.URL.Path)
		_, _ = io.WriteString(w, `{"contract_id":7,"campaign_id":2,"contract_num_detail":"001/PKWT/X/2025",
			"name":"Budi","nip":12345,"job_description":null,"location":"Jakarta","email":"budi@example.com",
			"mobile_number":"0812","send_status":true,"signed_status":null,"signed_at":null}`)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL).Contract(context.Background(), "7")
	require.NoError(t, err)
	require.Equal(t, Text("12345"), c.NIP)
	require.Equal(t, Text(""), c.JobDescription)
	require.True(t, c.SendStatus)
	require.False(t, c.SignedStatus)
}

func TestContractPDFReturnsBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/pdf", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = io.WriteString(w, "%PDF-1.4 fake")
	}))
	defer srv.Close()

	b, err := NewClient(srv.URL).ContractPDF(context.Background(), "3")
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4 fake", string(b))
}

func TestLoginKeepsSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			var creds Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			if creds.Password != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"detail":"Invalid credentials"}`)
				return
			}
			http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "abc", Path: "/"})
			_, _ = io.WriteString(w, `{"message":"Login successful"}`)
		case "/api/dashboard-stats":
			ck, err := r.Cookie(SessionCookie)
			require.NoError(t, err)
			require.Equal(t, "abc", ck.Value)
			_, _ = io.WriteString(w, `{"target":10,"sent":4,"signed":2}`)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Login(context.Background(), Credentials{Email: "hr@example.com", Password: "wrong"})
	require.True(t, IsStatus(err, http.StatusUnauthorized))
	require.False(t, c.LoggedIn())

	require.NoError(t, c.Login(context.Background(), Credentials{Email: "hr@example.com", Password: "secret"}))
	require.True(t, c.LoggedIn())

	stats, err := c.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, DashboardStats{Target: 10, Sent: 4, Signed: 2}, *stats)
}

func TestBulkSendEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "unsent", req["mode"])
		require.Equal(t, float64(5), req["campaign_id"])
		require.Len(t, req["contract_ids"], 2)
		_, _ = io.WriteString(w, `{"success":[1],"failed":[{"contract_id":2,"error":"smtp down"}],
			"total":2,"success_count":1,"failed_count":1}`)
	}))
	defer srv.Close()

	campaign := int64(5)
	res, err := NewClient(srv.URL).BulkSendEmail(context.Background(), BulkSendRequest{
		ContractIDs: []int64{1, 2},
		Mode:        BulkModeUnsent,
		CampaignID:  &campaign,
	})
	require.NoError(t, err)
	require.Equal(t, []int64{1}, res.Success)
	require.Equal(t, "smtp down", res.Failed[0].Error)
}

func TestEmailPreviewPostsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "9", r.PostFormValue("contract_id"))
		_, _ = io.WriteString(w, `{"email_body":"<p>Halo</p>","recipient":"hr@example.com"}`)
	}))
	defer srv.Close()

	p, err := NewClient(srv.URL).EmailPreview(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, "hr@example.com", p.Recipient)
}

func TestUploadEmployees(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "3", r.FormValue("campaign_id"))
		_, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		require.Equal(t, "roster.csv", hdr.Filename)
		_, _ = io.WriteString(w, `{"message":"ok","processed_count":12}`)
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).UploadEmployees(context.Background(), 3, "roster.csv", strings.NewReader("name\nBudi\n"))
	require.NoError(t, err)
	require.Equal(t, 12, res.ProcessedCount)
}

func TestSearchCompaniesEscapesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "PT Maju & Jaya", r.URL.Query().Get("q"))
		_, _ = io.WriteString(w, `[{"company":"PT Maju & Jaya"}]`)
	}))
	defer srv.Close()

	names, err := NewClient(srv.URL).SearchCompanies(context.Background(), "PT Maju & Jaya")
	require.NoError(t, err)
	require.Equal(t, []string{"PT Maju & Jaya"}, names)
}

func TestTimeoutOption(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, WithTimeout(20*time.Millisecond)).DashboardStats(context.Background())
	require.Error(t, err)
}

func TestHTTPClientOptionLeavesCallerClient(t *testing.T) {
	shared := &http.Client{}
	c := NewClient("http://127.0.0.1:8000", WithHTTPClient(shared), WithTimeout(time.Second))

	require.Zero(t, shared.Timeout)
	require.Nil(t, shared.Jar)
	require.Equal(t, time.Second, c.httpClient.Timeout)
	require.NotNil(t, c.httpClient.Jar)
	require.NotSame(t, shared, c.httpClient)
}

func TestRowCell(t *testing.T) {
	r := Row{"name": "Budi", "nik": float64(3201), "active": true, "missing": nil}
	require.Equal(t, "Budi", r.Cell("name"))
	require.Equal(t, "3201", r.Cell("nik"))
	require.Equal(t, "true", r.Cell("active"))
	require.Equal(t, "", r.Cell("missing"))
	require.Equal(t, "", r.Cell("absent"))
}
