package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hmartins/secconsole/internal/apperr"
	"github.com/hmartins/secconsole/internal/model"
)

// httpTransport talks to a real console API. Every request carries the
// stored bearer token when one is present; a 401 clears that token and
// fires the unauthorized hook exactly once per response.
type httpTransport struct {
	baseURL        string
	hc             *http.Client
	tokens         *TokenStore
	onUnauthorized func()
}

func NewHTTP(baseURL string, timeoutSeconds int, tokens *TokenStore, onUnauthorized func()) *Client {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	t := &httpTransport{
		baseURL:        baseURL,
		hc:             &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
	}
	return &Client{
		Auth:              &httpAuth{t},
		Assets:            &httpAssets{t},
		Vulnerabilities:   &httpVulns{t},
		Scans:             &httpScans{t},
		SecurityBaselines: &httpBaselines{t},
		Reports:           &httpReports{t},
		Dashboard:         &httpDashboard{t},
	}
}

func (t *httpTransport) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, http.Header, error) {
	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := t.tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.hc.Do(req)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.Internal, "request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.Internal, "reading response", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.tokens.Clear()
		if t.onUnauthorized != nil {
			t.onUnauthorized()
		}
	}
	if resp.StatusCode >= 400 {
		return nil, nil, statusError(resp.StatusCode, data)
	}
	return data, resp.Header, nil
}

func statusError(status int, body []byte) error {
	msg := http.StatusText(status)
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		msg = envelope.Message
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperr.New(apperr.Unauthorized, msg)
	case http.StatusNotFound:
		return apperr.New(apperr.NotFound, msg)
	case http.StatusConflict:
		return apperr.New(apperr.InvalidState, msg)
	case http.StatusUnprocessableEntity:
		return apperr.New(apperr.InvalidCredentials, msg)
	default:
		return apperr.New(apperr.Internal, msg)
	}
}

// call performs a request and unwraps the {data, message?} envelope.
func call[T any](ctx context.Context, t *httpTransport, method, path string, query url.Values, body any) (T, string, error) {
	var zero T
	data, _, err := t.do(ctx, method, path, query, body)
	if err != nil {
		return zero, "", err
	}
	var envelope model.Envelope[T]
	if err := json.Unmarshal(data, &envelope); err != nil {
		return zero, "", apperr.Wrap(apperr.Internal, "decoding response", err)
	}
	return envelope.Data, envelope.Message, nil
}

func pageQuery(req model.PageRequest) url.Values {
	q := url.Values{}
	if req.CurrentPage > 0 {
		q.Set("currentPage", strconv.Itoa(req.CurrentPage))
	}
	if req.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(req.PageSize))
	}
	return q
}

// --- auth ---

type httpAuth struct{ t *httpTransport }

func (a *httpAuth) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	resp, _, err := call[model.AuthResponse](ctx, a.t, http.MethodPost, "/auth/login", nil, body)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if resp.Token != "" {
		if err := a.t.tokens.Set(resp.Token); err != nil {
			return model.AuthResponse{}, fmt.Errorf("storing token: %w", err)
		}
	}
	return resp, nil
}

func (a *httpAuth) Register(ctx context.Context, email, password string) (model.User, error) {
	body := map[string]string{"email": email, "password": password}
	user, _, err := call[model.User](ctx, a.t, http.MethodPost, "/auth/register", nil, body)
	return user, err
}

func (a *httpAuth) Logout(ctx context.Context) error {
	_, _, err := call[struct{}](ctx, a.t, http.MethodPost, "/auth/logout", nil, nil)
	a.t.tokens.Clear()
	return err
}

func (a *httpAuth) Profile(ctx context.Context) (model.User, error) {
	user, _, err := call[model.User](ctx, a.t, http.MethodGet, "/auth/profile", nil, nil)
	return user, err
}

// --- assets ---

type httpAssets struct{ t *httpTransport }

func (s *httpAssets) List(ctx context.Context, f model.AssetFilter) (model.Page[model.Asset], error) {
	q := pageQuery(f.PageRequest)
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	page, _, err := call[model.Page[model.Asset]](ctx, s.t, http.MethodGet, "/assets", q, nil)
	return page, err
}

func (s *httpAssets) Get(ctx context.Context, id int64) (model.Asset, error) {
	asset, _, err := call[model.Asset](ctx, s.t, http.MethodGet, fmt.Sprintf("/assets/%d", id), nil, nil)
	return asset, err
}

func (s *httpAssets) Create(ctx context.Context, a model.Asset) (model.Asset, error) {
	asset, _, err := call[model.Asset](ctx, s.t, http.MethodPost, "/assets", nil, a)
	return asset, err
}

func (s *httpAssets) Update(ctx context.Context, id int64, patch model.AssetPatch) (model.Asset, error) {
	asset, _, err := call[model.Asset](ctx, s.t, http.MethodPut, fmt.Sprintf("/assets/%d", id), nil, patch)
	return asset, err
}

func (s *httpAssets) Delete(ctx context.Context, id int64) error {
	_, _, err := call[struct{}](ctx, s.t, http.MethodDelete, fmt.Sprintf("/assets/%d", id), nil, nil)
	return err
}

// --- vulnerabilities ---

type httpVulns struct{ t *httpTransport }

func (s *httpVulns) List(ctx context.Context, f model.VulnerabilityFilter) (model.Page[model.Vulnerability], error) {
	q := pageQuery(f.PageRequest)
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if f.Risk != "" {
		q.Set("risk", string(f.Risk))
	}
	page, _, err := call[model.Page[model.Vulnerability]](ctx, s.t, http.MethodGet, "/vulnerabilities", q, nil)
	return page, err
}

func (s *httpVulns) Get(ctx context.Context, id string) (model.Vulnerability, error) {
	v, _, err := call[model.Vulnerability](ctx, s.t, http.MethodGet, "/vulnerabilities/"+url.PathEscape(id), nil, nil)
	return v, err
}

func (s *httpVulns) Create(ctx context.Context, v model.Vulnerability) (model.Vulnerability, error) {
	created, _, err := call[model.Vulnerability](ctx, s.t, http.MethodPost, "/vulnerabilities", nil, v)
	return created, err
}

func (s *httpVulns) Update(ctx context.Context, id string, patch model.VulnerabilityPatch) (model.Vulnerability, error) {
	v, _, err := call[model.Vulnerability](ctx, s.t, http.MethodPut, "/vulnerabilities/"+url.PathEscape(id), nil, patch)
	return v, err
}

func (s *httpVulns) Delete(ctx context.Context, id string) error {
	_, _, err := call[struct{}](ctx, s.t, http.MethodDelete, "/vulnerabilities/"+url.PathEscape(id), nil, nil)
	return err
}

func (s *httpVulns) UpdateDatabase(ctx context.Context) (model.UpdateDatabaseResult, error) {
	res, _, err := call[model.UpdateDatabaseResult](ctx, s.t, http.MethodPost, "/vulnerabilities/update-database", nil, nil)
	return res, err
}

// --- scans ---

type httpScans struct{ t *httpTransport }

func (s *httpScans) List(ctx context.Context, f model.ScanFilter) (model.Page[model.ScanTask], error) {
	q := pageQuery(f.PageRequest)
	if f.Target != "" {
		q.Set("target", f.Target)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.AssetID != 0 {
		q.Set("assetId", strconv.FormatInt(f.AssetID, 10))
	}
	page, _, err := call[model.Page[model.ScanTask]](ctx, s.t, http.MethodGet, "/scans", q, nil)
	return page, err
}

func (s *httpScans) Get(ctx context.Context, id int64) (model.ScanTask, error) {
	task, _, err := call[model.ScanTask](ctx, s.t, http.MethodGet, fmt.Sprintf("/scans/%d", id), nil, nil)
	return task, err
}

func (s *httpScans) Create(ctx context.Context, task model.ScanTask) (model.ScanTask, error) {
	created, _, err := call[model.ScanTask](ctx, s.t, http.MethodPost, "/scans", nil, task)
	return created, err
}

func (s *httpScans) Start(ctx context.Context, assetID int64, opts model.ScanOptions) (model.ScanTask, error) {
	task, _, err := call[model.ScanTask](ctx, s.t, http.MethodPost, fmt.Sprintf("/scans/asset/%d", assetID), nil, opts)
	return task, err
}

func (s *httpScans) Cancel(ctx context.Context, id int64) (model.ScanTask, error) {
	task, _, err := call[model.ScanTask](ctx, s.t, http.MethodPost, fmt.Sprintf("/scans/%d/cancel", id), nil, nil)
	return task, err
}

func (s *httpScans) Results(ctx context.Context, id int64) (model.ScanResultSet, error) {
	set, msg, err := call[model.ScanResultSet](ctx, s.t, http.MethodGet, fmt.Sprintf("/scans/%d/results", id), nil, nil)
	if err != nil {
		return model.ScanResultSet{}, err
	}
	if set.Message == "" {
		set.Message = msg
	}
	return set, nil
}

// --- security baselines ---

type httpBaselines struct{ t *httpTransport }

func (s *httpBaselines) List(ctx context.Context, f model.BaselineFilter) (model.Page[model.SecurityBaseline], error) {
	q := pageQuery(f.PageRequest)
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	page, _, err := call[model.Page[model.SecurityBaseline]](ctx, s.t, http.MethodGet, "/security-baselines", q, nil)
	return page, err
}

func (s *httpBaselines) Get(ctx context.Context, id int64) (model.SecurityBaseline, error) {
	b, _, err := call[model.SecurityBaseline](ctx, s.t, http.MethodGet, fmt.Sprintf("/security-baselines/%d", id), nil, nil)
	return b, err
}

func (s *httpBaselines) Create(ctx context.Context, b model.SecurityBaseline) (model.SecurityBaseline, error) {
	created, _, err := call[model.SecurityBaseline](ctx, s.t, http.MethodPost, "/security-baselines", nil, b)
	return created, err
}

func (s *httpBaselines) Update(ctx context.Context, id int64, patch model.BaselinePatch) (model.SecurityBaseline, error) {
	b, _, err := call[model.SecurityBaseline](ctx, s.t, http.MethodPut, fmt.Sprintf("/security-baselines/%d", id), nil, patch)
	return b, err
}

func (s *httpBaselines) Delete(ctx context.Context, id int64) error {
	_, _, err := call[struct{}](ctx, s.t, http.MethodDelete, fmt.Sprintf("/security-baselines/%d", id), nil, nil)
	return err
}

func (s *httpBaselines) RunCheck(ctx context.Context, assetID, baselineID int64) (model.BaselineCheck, error) {
	body := map[string]int64{"assetId": assetID, "baselineId": baselineID}
	check, _, err := call[model.BaselineCheck](ctx, s.t, http.MethodPost, "/security-baselines/check", nil, body)
	return check, err
}

func (s *httpBaselines) CheckResults(ctx context.Context, checkID int64) (model.BaselineCheck, error) {
	check, _, err := call[model.BaselineCheck](ctx, s.t, http.MethodGet, fmt.Sprintf("/security-baselines/check/%d", checkID), nil, nil)
	return check, err
}

// --- reports ---

type httpReports struct{ t *httpTransport }

func (s *httpReports) List(ctx context.Context, f model.ReportFilter) (model.Page[model.Report], error) {
	q := pageQuery(f.PageRequest)
	if f.Title != "" {
		q.Set("title", f.Title)
	}
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	page, _, err := call[model.Page[model.Report]](ctx, s.t, http.MethodGet, "/reports", q, nil)
	return page, err
}

func (s *httpReports) Get(ctx context.Context, id int64) (model.Report, error) {
	rpt, _, err := call[model.Report](ctx, s.t, http.MethodGet, fmt.Sprintf("/reports/%d", id), nil, nil)
	return rpt, err
}

func (s *httpReports) CreateScanReport(ctx context.Context, scanID int64) (model.Report, bool, error) {
	rpt, msg, err := call[model.Report](ctx, s.t, http.MethodPost, fmt.Sprintf("/reports/scan/%d", scanID), nil, nil)
	return rpt, msg != "", err
}

func (s *httpReports) CreateBaselineReport(ctx context.Context, checkID int64) (model.Report, bool, error) {
	rpt, msg, err := call[model.Report](ctx, s.t, http.MethodPost, fmt.Sprintf("/reports/baseline/%d", checkID), nil, nil)
	return rpt, msg != "", err
}

// Export fetches the rendered document; the payload is raw bytes, not an
// envelope.
func (s *httpReports) Export(ctx context.Context, id int64, format string) (model.ExportedReport, error) {
	q := url.Values{"format": {format}}
	data, header, err := s.t.do(ctx, http.MethodGet, fmt.Sprintf("/reports/%d/export", id), q, nil)
	if err != nil {
		return model.ExportedReport{}, err
	}

	filename := fmt.Sprintf("report-%d.%s", id, format)
	if cd := header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}
	return model.ExportedReport{
		Filename:    filename,
		ContentType: header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// --- dashboard ---

type httpDashboard struct{ t *httpTransport }

func (s *httpDashboard) Summary(ctx context.Context) (model.DashboardSummary, error) {
	summary, _, err := call[model.DashboardSummary](ctx, s.t, http.MethodGet, "/dashboard/summary", nil, nil)
	return summary, err
}

func (s *httpDashboard) VulnerabilityStats(ctx context.Context) (model.VulnerabilityStats, error) {
	stats, _, err := call[model.VulnerabilityStats](ctx, s.t, http.MethodGet, "/dashboard/vulnerability-stats", nil, nil)
	return stats, err
}

func (s *httpDashboard) RecentScans(ctx context.Context) ([]model.RecentScan, error) {
	scans, _, err := call[[]model.RecentScan](ctx, s.t, http.MethodGet, "/dashboard/recent-scans", nil, nil)
	return scans, err
}

func (s *httpDashboard) AssetStats(ctx context.Context) (model.AssetStats, error) {
	stats, _, err := call[model.AssetStats](ctx, s.t, http.MethodGet, "/dashboard/asset-stats", nil, nil)
	return stats, err
}
