package api

import (
	"context"
	"time"

	"github.com/hmartins/secconsole/internal/apperr"
	"github.com/hmartins/secconsole/internal/model"
	"github.com/hmartins/secconsole/internal/report"
	"github.com/hmartins/secconsole/internal/store"
)

// NewMock wires every domain service straight to the in-memory store. The
// report generator backs the export operation.
func NewMock(st *store.Store, gen *report.Generator) *Client {
	return &Client{
		Auth:              &mockAuth{},
		Assets:            &mockAssets{st},
		Vulnerabilities:   &mockVulns{st},
		Scans:             &mockScans{st},
		SecurityBaselines: &mockBaselines{st},
		Reports:           &mockReports{st: st, gen: gen},
		Dashboard:         &mockDashboard{st},
	}
}

// --- auth ---

type mockAuth struct{}

func (m *mockAuth) Login(_ context.Context, email, password string) (model.AuthResponse, error) {
	if email == "" || len(password) < 6 {
		return model.AuthResponse{}, apperr.New(apperr.InvalidCredentials, "email or password is incorrect")
	}
	return model.AuthResponse{
		Token: "mock-token-xyz",
		User: model.User{
			ID:    "mock-user-id",
			Email: email,
			Name:  "Test User",
		},
	}, nil
}

func (m *mockAuth) Register(_ context.Context, email, _ string) (model.User, error) {
	return model.User{
		ID:        "new-user-id",
		Email:     email,
		CreatedAt: time.Now(),
	}, nil
}

func (m *mockAuth) Logout(context.Context) error { return nil }

func (m *mockAuth) Profile(context.Context) (model.User, error) {
	return model.User{
		ID:        "mock-user-id",
		Email:     "test@example.com",
		Name:      "Test User",
		CreatedAt: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC),
	}, nil
}

// --- assets ---

type mockAssets struct{ st *store.Store }

func (m *mockAssets) List(_ context.Context, f model.AssetFilter) (model.Page[model.Asset], error) {
	return m.st.ListAssets(f), nil
}

func (m *mockAssets) Get(_ context.Context, id int64) (model.Asset, error) {
	return m.st.GetAsset(id)
}

func (m *mockAssets) Create(_ context.Context, a model.Asset) (model.Asset, error) {
	return m.st.CreateAsset(a), nil
}

func (m *mockAssets) Update(_ context.Context, id int64, patch model.AssetPatch) (model.Asset, error) {
	return m.st.UpdateAsset(id, patch)
}

func (m *mockAssets) Delete(_ context.Context, id int64) error {
	return m.st.DeleteAsset(id)
}

// --- vulnerabilities ---

type mockVulns struct{ st *store.Store }

func (m *mockVulns) List(_ context.Context, f model.VulnerabilityFilter) (model.Page[model.Vulnerability], error) {
	return m.st.ListVulnerabilities(f), nil
}

func (m *mockVulns) Get(_ context.Context, id string) (model.Vulnerability, error) {
	return m.st.GetVulnerability(id)
}

func (m *mockVulns) Create(_ context.Context, v model.Vulnerability) (model.Vulnerability, error) {
	return m.st.CreateVulnerability(v), nil
}

func (m *mockVulns) Update(_ context.Context, id string, patch model.VulnerabilityPatch) (model.Vulnerability, error) {
	return m.st.UpdateVulnerability(id, patch)
}

func (m *mockVulns) Delete(_ context.Context, id string) error {
	return m.st.DeleteVulnerability(id)
}

func (m *mockVulns) UpdateDatabase(context.Context) (model.UpdateDatabaseResult, error) {
	return m.st.UpdateDatabase(), nil
}

// --- scans ---

type mockScans struct{ st *store.Store }

func (m *mockScans) List(_ context.Context, f model.ScanFilter) (model.Page[model.ScanTask], error) {
	return m.st.ListScans(f), nil
}

func (m *mockScans) Get(_ context.Context, id int64) (model.ScanTask, error) {
	return m.st.GetScan(id)
}

func (m *mockScans) Create(_ context.Context, task model.ScanTask) (model.ScanTask, error) {
	return m.st.CreateScan(task), nil
}

func (m *mockScans) Start(_ context.Context, assetID int64, opts model.ScanOptions) (model.ScanTask, error) {
	return m.st.StartScan(assetID, opts)
}

func (m *mockScans) Cancel(_ context.Context, id int64) (model.ScanTask, error) {
	return m.st.CancelScan(id)
}

func (m *mockScans) Results(_ context.Context, id int64) (model.ScanResultSet, error) {
	return m.st.GetScanResults(id)
}

// --- security baselines ---

type mockBaselines struct{ st *store.Store }

func (m *mockBaselines) List(_ context.Context, f model.BaselineFilter) (model.Page[model.SecurityBaseline], error) {
	return m.st.ListBaselines(f), nil
}

func (m *mockBaselines) Get(_ context.Context, id int64) (model.SecurityBaseline, error) {
	return m.st.GetBaseline(id)
}

func (m *mockBaselines) Create(_ context.Context, b model.SecurityBaseline) (model.SecurityBaseline, error) {
	return m.st.CreateBaseline(b), nil
}

func (m *mockBaselines) Update(_ context.Context, id int64, patch model.BaselinePatch) (model.SecurityBaseline, error) {
	return m.st.UpdateBaseline(id, patch)
}

func (m *mockBaselines) Delete(_ context.Context, id int64) error {
	return m.st.DeleteBaseline(id)
}

func (m *mockBaselines) RunCheck(_ context.Context, assetID, baselineID int64) (model.BaselineCheck, error) {
	return m.st.RunCheck(assetID, baselineID)
}

func (m *mockBaselines) CheckResults(_ context.Context, checkID int64) (model.BaselineCheck, error) {
	return m.st.GetCheck(checkID)
}

// --- reports ---

type mockReports struct {
	st  *store.Store
	gen *report.Generator
}

func (m *mockReports) List(_ context.Context, f model.ReportFilter) (model.Page[model.Report], error) {
	return m.st.ListReports(f), nil
}

func (m *mockReports) Get(_ context.Context, id int64) (model.Report, error) {
	return m.st.GetReport(id)
}

func (m *mockReports) CreateScanReport(_ context.Context, scanID int64) (model.Report, bool, error) {
	return m.st.CreateScanReport(scanID)
}

func (m *mockReports) CreateBaselineReport(_ context.Context, checkID int64) (model.Report, bool, error) {
	return m.st.CreateBaselineReport(checkID)
}

func (m *mockReports) Export(_ context.Context, id int64, format string) (model.ExportedReport, error) {
	rpt, err := m.st.GetReport(id)
	if err != nil {
		return model.ExportedReport{}, err
	}
	return m.gen.Export(rpt, format)
}

// --- dashboard ---

type mockDashboard struct{ st *store.Store }

func (m *mockDashboard) Summary(context.Context) (model.DashboardSummary, error) {
	return m.st.DashboardSummary(), nil
}

func (m *mockDashboard) VulnerabilityStats(context.Context) (model.VulnerabilityStats, error) {
	return m.st.VulnerabilityStats(), nil
}

func (m *mockDashboard) RecentScans(context.Context) ([]model.RecentScan, error) {
	return m.st.RecentScans(5), nil
}

func (m *mockDashboard) AssetStats(context.Context) (model.AssetStats, error) {
	return m.st.AssetStats(), nil
}
