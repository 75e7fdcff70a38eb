// Package api is the console's request surface, organized by domain. A
// Client is backed by one of two transports chosen once at construction:
// the in-memory store (mock mode) or a real HTTP endpoint (live mode).
// Callers never see which one they are talking to.
package api

import (
	"context"
	"fmt"

	"github.com/hmartins/secconsole/internal/config"
	"github.com/hmartins/secconsole/internal/model"
	"github.com/hmartins/secconsole/internal/report"
	"github.com/hmartins/secconsole/internal/store"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (model.AuthResponse, error)
	Register(ctx context.Context, email, password string) (model.User, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (model.User, error)
}

type AssetsAPI interface {
	List(ctx context.Context, f model.AssetFilter) (model.Page[model.Asset], error)
	Get(ctx context.Context, id int64) (model.Asset, error)
	Create(ctx context.Context, a model.Asset) (model.Asset, error)
	Update(ctx context.Context, id int64, patch model.AssetPatch) (model.Asset, error)
	Delete(ctx context.Context, id int64) error
}

type VulnerabilitiesAPI interface {
	List(ctx context.Context, f model.VulnerabilityFilter) (model.Page[model.Vulnerability], error)
	Get(ctx context.Context, id string) (model.Vulnerability, error)
	Create(ctx context.Context, v model.Vulnerability) (model.Vulnerability, error)
	Update(ctx context.Context, id string, patch model.VulnerabilityPatch) (model.Vulnerability, error)
	Delete(ctx context.Context, id string) error
	UpdateDatabase(ctx context.Context) (model.UpdateDatabaseResult, error)
}

type ScansAPI interface {
	List(ctx context.Context, f model.ScanFilter) (model.Page[model.ScanTask], error)
	Get(ctx context.Context, id int64) (model.ScanTask, error)
	Create(ctx context.Context, task model.ScanTask) (model.ScanTask, error)
	Start(ctx context.Context, assetID int64, opts model.ScanOptions) (model.ScanTask, error)
	Cancel(ctx context.Context, id int64) (model.ScanTask, error)
	Results(ctx context.Context, id int64) (model.ScanResultSet, error)
}

type SecurityBaselinesAPI interface {
	List(ctx context.Context, f model.BaselineFilter) (model.Page[model.SecurityBaseline], error)
	Get(ctx context.Context, id int64) (model.SecurityBaseline, error)
	Create(ctx context.Context, b model.SecurityBaseline) (model.SecurityBaseline, error)
	Update(ctx context.Context, id int64, patch model.BaselinePatch) (model.SecurityBaseline, error)
	Delete(ctx context.Context, id int64) error
	RunCheck(ctx context.Context, assetID, baselineID int64) (model.BaselineCheck, error)
	CheckResults(ctx context.Context, checkID int64) (model.BaselineCheck, error)
}

type ReportsAPI interface {
	List(ctx context.Context, f model.ReportFilter) (model.Page[model.Report], error)
	Get(ctx context.Context, id int64) (model.Report, error)
	// CreateScanReport is idempotent: the bool reports whether the report
	// already existed for this scan.
	CreateScanReport(ctx context.Context, scanID int64) (model.Report, bool, error)
	CreateBaselineReport(ctx context.Context, checkID int64) (model.Report, bool, error)
	Export(ctx context.Context, id int64, format string) (model.ExportedReport, error)
}

type DashboardAPI interface {
	Summary(ctx context.Context) (model.DashboardSummary, error)
	VulnerabilityStats(ctx context.Context) (model.VulnerabilityStats, error)
	RecentScans(ctx context.Context) ([]model.RecentScan, error)
	AssetStats(ctx context.Context) (model.AssetStats, error)
}

type Client struct {
	Auth              AuthAPI
	Assets            AssetsAPI
	Vulnerabilities   VulnerabilitiesAPI
	Scans             ScansAPI
	SecurityBaselines SecurityBaselinesAPI
	Reports           ReportsAPI
	Dashboard         DashboardAPI
}

// FromConfig builds a client for the configured mode. The store and report
// generator are only needed in mock mode; in live mode they may be nil.
func FromConfig(cfg *config.Config, st *store.Store, gen *report.Generator, onUnauthorized func()) (*Client, error) {
	switch cfg.Client.Mode {
	case config.ModeMock:
		return NewMock(st, gen), nil
	case config.ModeLive:
		tokens := NewTokenStore(cfg.Client.TokenPath)
		return NewHTTP(cfg.Client.BaseURL, cfg.Client.TimeoutSeconds, tokens, onUnauthorized), nil
	default:
		return nil, fmt.Errorf("unknown client mode %q", cfg.Client.Mode)
	}
}
