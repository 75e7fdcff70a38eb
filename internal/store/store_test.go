package store

import (
	"testing"
	"time"

	"github.com/hmartins/secconsole/internal/apperr"
	"github.com/hmartins/secconsole/internal/model"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	return New(opts...)
}

func assetIDs(page model.Page[model.Asset]) []int64 {
	ids := make([]int64, 0, len(page.Items))
	for _, a := range page.Items {
		ids = append(ids, a.ID)
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListAssetsFilter(t *testing.T) {
	st := newTestStore(t)

	tests := []struct {
		name    string
		filter  model.AssetFilter
		wantIDs []int64
	}{
		{"no filter", model.AssetFilter{}, []int64{1, 2, 3, 4, 5}},
		{"name substring", model.AssetFilter{Name: "user"}, []int64{2}},
		{"name case insensitive", model.AssetFilter{Name: "USER"}, []int64{2}},
		{"name no match", model.AssetFilter{Name: "zzz"}, nil},
		{"by type", model.AssetFilter{Type: model.AssetWeb}, []int64{1, 2}},
		{"by status", model.AssetFilter{Status: model.AssetStopped}, []int64{5}},
		{"type and status", model.AssetFilter{Type: model.AssetWeb, Status: model.AssetRunning}, []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := st.ListAssets(tt.filter)
			if got := assetIDs(page); !equalIDs(got, tt.wantIDs) {
				t.Errorf("got ids %v, want %v", got, tt.wantIDs)
			}
			if page.Pagination.Total != len(tt.wantIDs) {
				t.Errorf("total = %d, want %d", page.Pagination.Total, len(tt.wantIDs))
			}
		})
	}
}

func TestPagination(t *testing.T) {
	st := newTestStore(t)

	tests := []struct {
		name     string
		req      model.PageRequest
		wantIDs  []int64
		wantPage int
		wantSize int
	}{
		{"defaults", model.PageRequest{}, []int64{1, 2, 3, 4, 5}, 1, 10},
		{"first page of two", model.PageRequest{CurrentPage: 1, PageSize: 2}, []int64{1, 2}, 1, 2},
		{"middle page", model.PageRequest{CurrentPage: 2, PageSize: 2}, []int64{3, 4}, 2, 2},
		{"short last page", model.PageRequest{CurrentPage: 3, PageSize: 2}, []int64{5}, 3, 2},
		{"past the end", model.PageRequest{CurrentPage: 4, PageSize: 2}, []int64{}, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := st.ListAssets(model.AssetFilter{PageRequest: tt.req})
			if got := assetIDs(page); !equalIDs(got, tt.wantIDs) {
				t.Errorf("got ids %v, want %v", got, tt.wantIDs)
			}
			if page.Pagination.Total != 5 {
				t.Errorf("total = %d, want 5", page.Pagination.Total)
			}
			if page.Pagination.CurrentPage != tt.wantPage || page.Pagination.PageSize != tt.wantSize {
				t.Errorf("pagination = %+v", page.Pagination)
			}
		})
	}
}

func TestAssetLifecycle(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	st := newTestStore(t, WithClock(func() time.Time { return now }))

	created := st.CreateAsset(model.Asset{Name: "Staging API", Type: model.AssetAPI, Domain: "staging.example.com"})
	if created.ID != 6 {
		t.Fatalf("created id = %d, want 6", created.ID)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Errorf("timestamps not stamped: %+v", created)
	}

	now = now.Add(time.Hour)
	name := "Staging Gateway"
	updated, err := st.UpdateAsset(created.ID, model.AssetPatch{Name: &name})
	if err != nil {
		t.Fatalf("UpdateAsset: %v", err)
	}
	if updated.Name != name {
		t.Errorf("name = %q, want %q", updated.Name, name)
	}
	if updated.Domain != "staging.example.com" {
		t.Errorf("patch touched domain: %q", updated.Domain)
	}
	if !updated.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", updated.UpdatedAt, now)
	}
	if !updated.CreatedAt.Before(updated.UpdatedAt) {
		t.Errorf("CreatedAt should stay behind UpdatedAt")
	}

	if err := st.DeleteAsset(created.ID); err != nil {
		t.Fatalf("DeleteAsset: %v", err)
	}
	if _, err := st.GetAsset(created.ID); !apperr.IsNotFound(err) {
		t.Errorf("get after delete: %v, want not found", err)
	}
	if err := st.DeleteAsset(created.ID); !apperr.IsNotFound(err) {
		t.Errorf("double delete: %v, want not found", err)
	}
}

func TestCreateVulnerabilityAssignsID(t *testing.T) {
	st := newTestStore(t)

	first := st.CreateVulnerability(model.Vulnerability{Name: "SSRF", Type: model.VulnCmd, Risk: model.RiskHigh})
	if first.ID != "CVE-2024-1006" {
		t.Errorf("first id = %q, want CVE-2024-1006", first.ID)
	}
	second := st.CreateVulnerability(model.Vulnerability{Name: "Open Redirect", Type: model.VulnXSS, Risk: model.RiskLow})
	if second.ID != "CVE-2024-1007" {
		t.Errorf("second id = %q, want CVE-2024-1007", second.ID)
	}
}

func TestUpdateVulnerabilityPatch(t *testing.T) {
	st := newTestStore(t)

	risk := model.RiskLow
	updated, err := st.UpdateVulnerability("CVE-2024-1001", model.VulnerabilityPatch{Risk: &risk})
	if err != nil {
		t.Fatalf("UpdateVulnerability: %v", err)
	}
	if updated.Risk != model.RiskLow {
		t.Errorf("risk = %q, want low", updated.Risk)
	}
	if updated.Name != "SQL Injection" {
		t.Errorf("patch touched name: %q", updated.Name)
	}

	if _, err := st.UpdateVulnerability("CVE-1999-0001", model.VulnerabilityPatch{}); !apperr.IsNotFound(err) {
		t.Errorf("unknown id: %v, want not found", err)
	}
}

func TestUpdateDatabase(t *testing.T) {
	now := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	st := newTestStore(t, WithClock(func() time.Time { return now }))

	res := st.UpdateDatabase()
	if res.UpdatedCount != 15 || res.NewCount != 5 {
		t.Errorf("counts = %d/%d, want 15/5", res.UpdatedCount, res.NewCount)
	}
	if !res.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", res.Timestamp, now)
	}
}

func TestStartScan(t *testing.T) {
	now := time.Date(2024, 4, 3, 8, 30, 0, 0, time.UTC)
	st := newTestStore(t, WithClock(func() time.Time { return now }))

	task, err := st.StartScan(1, model.ScanOptions{})
	if err != nil {
		t.Fatalf("StartScan: %v", err)
	}
	if task.ID != 5 {
		t.Errorf("id = %d, want 5", task.ID)
	}
	if task.Target != "www.example.com" {
		t.Errorf("target = %q, want asset domain", task.Target)
	}
	if len(task.ScanTypes) != 2 || task.ScanTypes[0] != model.VulnSQL || task.ScanTypes[1] != model.VulnXSS {
		t.Errorf("default scan types = %v", task.ScanTypes)
	}
	if task.Depth != 1 {
		t.Errorf("default depth = %d, want 1", task.Depth)
	}
	if task.Status != model.ScanRunning {
		t.Errorf("status = %q, want running", task.Status)
	}
	if task.StartTime == nil || !task.StartTime.Equal(now) {
		t.Errorf("start time = %v, want %v", task.StartTime, now)
	}

	asset, err := st.GetAsset(1)
	if err != nil {
		t.Fatalf("GetAsset: %v", err)
	}
	if asset.LastScan == nil || !asset.LastScan.Equal(now) {
		t.Errorf("asset lastScan = %v, want %v", asset.LastScan, now)
	}

	if _, err := st.StartScan(99, model.ScanOptions{}); !apperr.IsNotFound(err) {
		t.Errorf("unknown asset: %v, want not found", err)
	}
}

func TestStartScanExplicitOptions(t *testing.T) {
	st := newTestStore(t)

	opts := model.ScanOptions{ScanTypes: []model.VulnType{model.VulnCmd}, Depth: 3}
	task, err := st.StartScan(2, opts)
	if err != nil {
		t.Fatalf("StartScan: %v", err)
	}
	if len(task.ScanTypes) != 1 || task.ScanTypes[0] != model.VulnCmd {
		t.Errorf("scan types = %v", task.ScanTypes)
	}
	if task.Depth != 3 {
		t.Errorf("depth = %d, want 3", task.Depth)
	}
}

func TestCancelScan(t *testing.T) {
	now := time.Date(2024, 4, 3, 9, 0, 0, 0, time.UTC)
	st := newTestStore(t, WithClock(func() time.Time { return now }))

	// Scan 2 is seeded running.
	task, err := st.CancelScan(2)
	if err != nil {
		t.Fatalf("CancelScan: %v", err)
	}
	if task.Status != model.ScanFailed {
		t.Errorf("status = %q, want failed", task.Status)
	}
	if task.EndTime == nil || !task.EndTime.Equal(now) {
		t.Errorf("end time = %v, want %v", task.EndTime, now)
	}

	if _, err := st.CancelScan(2); !apperr.IsInvalidState(err) {
		t.Errorf("double cancel: %v, want invalid state", err)
	}
	// Pending and completed tasks cannot be cancelled either.
	if _, err := st.CancelScan(3); !apperr.IsInvalidState(err) {
		t.Errorf("cancel pending: %v, want invalid state", err)
	}
	if _, err := st.CancelScan(1); !apperr.IsInvalidState(err) {
		t.Errorf("cancel completed: %v, want invalid state", err)
	}
	if _, err := st.CancelScan(99); !apperr.IsNotFound(err) {
		t.Errorf("cancel unknown: %v, want not found", err)
	}
}

func TestScanResults(t *testing.T) {
	st := newTestStore(t, WithSeed(1))

	t.Run("seeded findings returned verbatim", func(t *testing.T) {
		set, err := st.GetScanResults(1)
		if err != nil {
			t.Fatalf("GetScanResults: %v", err)
		}
		if len(set.Items) != 2 {
			t.Fatalf("items = %d, want 2", len(set.Items))
		}
		if set.Items[0].VulnerabilityID != "CVE-2024-1001" {
			t.Errorf("first finding = %+v", set.Items[0])
		}
		if set.Message != "" {
			t.Errorf("unexpected message %q", set.Message)
		}
		if set.ScanInfo.ID != 1 {
			t.Errorf("scan info id = %d", set.ScanInfo.ID)
		}
	})

	t.Run("unfinished states carry a note", func(t *testing.T) {
		tests := []struct {
			scanID  int64
			message string
		}{
			{2, "scan is in progress"},
			{3, "scan has not started"},
			{4, "scan failed or was cancelled"},
		}
		for _, tt := range tests {
			set, err := st.GetScanResults(tt.scanID)
			if err != nil {
				t.Fatalf("GetScanResults(%d): %v", tt.scanID, err)
			}
			if len(set.Items) != 0 {
				t.Errorf("scan %d: items = %d, want 0", tt.scanID, len(set.Items))
			}
			if set.Message != tt.message {
				t.Errorf("scan %d: message = %q, want %q", tt.scanID, set.Message, tt.message)
			}
		}
	})

	t.Run("completed without seeded findings synthesizes three", func(t *testing.T) {
		delete(st.results, 1)
		set, err := st.GetScanResults(1)
		if err != nil {
			t.Fatalf("GetScanResults: %v", err)
		}
		if len(set.Items) != 3 {
			t.Fatalf("items = %d, want 3", len(set.Items))
		}
		for i, res := range set.Items {
			if res.ID != int64(i+1) || res.ScanTaskID != 1 {
				t.Errorf("item %d: %+v", i, res)
			}
			if res.VulnerabilityID == "" || res.URL == "" {
				t.Errorf("item %d missing fields: %+v", i, res)
			}
		}
	})

	t.Run("unknown scan", func(t *testing.T) {
		if _, err := st.GetScanResults(99); !apperr.IsNotFound(err) {
			t.Errorf("got %v, want not found", err)
		}
	})
}

func TestSynthesizedResultsDeterministic(t *testing.T) {
	a := newTestStore(t, WithSeed(7))
	b := newTestStore(t, WithSeed(7))
	delete(a.results, 1)
	delete(b.results, 1)

	setA, _ := a.GetScanResults(1)
	setB, _ := b.GetScanResults(1)
	if len(setA.Items) != len(setB.Items) {
		t.Fatalf("lengths differ: %d vs %d", len(setA.Items), len(setB.Items))
	}
	for i := range setA.Items {
		if setA.Items[i] != setB.Items[i] {
			t.Errorf("item %d differs: %+v vs %+v", i, setA.Items[i], setB.Items[i])
		}
	}
}

func TestRunCheck(t *testing.T) {
	now := time.Date(2024, 4, 4, 10, 0, 0, 0, time.UTC)
	st := newTestStore(t, WithSeed(42), WithClock(func() time.Time { return now }))

	check, err := st.RunCheck(1, 1)
	if err != nil {
		t.Fatalf("RunCheck: %v", err)
	}
	if check.ID != 3 {
		t.Errorf("id = %d, want 3", check.ID)
	}
	if check.Status != model.ScanCompleted {
		t.Errorf("status = %q, want completed", check.Status)
	}
	if len(check.Result) != 5 {
		t.Fatalf("results = %d, want 5", len(check.Result))
	}

	passed := 0
	for _, item := range check.Result {
		if item.Passed {
			passed++
			continue
		}
		if item.Details == "" {
			t.Errorf("failed item %s missing details", item.ItemID)
		}
	}
	wantScore := passed * 100 / 5
	if check.Score != wantScore {
		t.Errorf("score = %d, want %d for %d passed", check.Score, wantScore, passed)
	}
	if check.StartTime == nil || check.EndTime == nil || !check.StartTime.Equal(*check.EndTime) {
		t.Errorf("check run should be instantaneous: %v - %v", check.StartTime, check.EndTime)
	}

	for _, tc := range [][2]int64{{99, 1}, {1, 99}} {
		if _, err := st.RunCheck(tc[0], tc[1]); !apperr.IsNotFound(err) {
			t.Errorf("RunCheck(%d, %d): %v, want not found", tc[0], tc[1], err)
		}
	}
}

func TestRunCheckDeterministic(t *testing.T) {
	a := newTestStore(t, WithSeed(11))
	b := newTestStore(t, WithSeed(11))

	checkA, _ := a.RunCheck(1, 2)
	checkB, _ := b.RunCheck(1, 2)
	if checkA.Score != checkB.Score {
		t.Errorf("scores differ: %d vs %d", checkA.Score, checkB.Score)
	}
	for i := range checkA.Result {
		if checkA.Result[i].Passed != checkB.Result[i].Passed {
			t.Errorf("item %d outcome differs", i)
		}
	}
}

func TestGetCheckResolvesNames(t *testing.T) {
	st := newTestStore(t)

	check, err := st.GetCheck(1)
	if err != nil {
		t.Fatalf("GetCheck: %v", err)
	}
	if check.BaselineName != "Web Application Baseline" {
		t.Errorf("baseline name = %q", check.BaselineName)
	}
	if check.AssetName != "Corporate Website" {
		t.Errorf("asset name = %q", check.AssetName)
	}

	// Deleting the asset leaves a dangling reference, not an error.
	if err := st.DeleteAsset(1); err != nil {
		t.Fatalf("DeleteAsset: %v", err)
	}
	check, err = st.GetCheck(1)
	if err != nil {
		t.Fatalf("GetCheck after delete: %v", err)
	}
	if check.AssetName != "Unknown asset" {
		t.Errorf("asset name = %q, want Unknown asset", check.AssetName)
	}

	if _, err := st.GetCheck(99); !apperr.IsNotFound(err) {
		t.Errorf("unknown check: %v, want not found", err)
	}
}

func TestCreateScanReportIdempotent(t *testing.T) {
	st := newTestStore(t)

	// Scan 1 already has a seeded report.
	existing, existed, err := st.CreateScanReport(1)
	if err != nil {
		t.Fatalf("CreateScanReport: %v", err)
	}
	if !existed || existing.ID != 1 {
		t.Errorf("existed = %v, id = %d; want the seeded report", existed, existing.ID)
	}

	created, existed, err := st.CreateScanReport(2)
	if err != nil {
		t.Fatalf("CreateScanReport: %v", err)
	}
	if existed {
		t.Error("fresh scan should create a report")
	}
	if created.ID != 3 {
		t.Errorf("id = %d, want 3", created.ID)
	}
	if created.Title != "User Management System Security Scan Report" {
		t.Errorf("title = %q", created.Title)
	}

	again, existed, err := st.CreateScanReport(2)
	if err != nil {
		t.Fatalf("CreateScanReport: %v", err)
	}
	if !existed || again.ID != created.ID {
		t.Errorf("second call: existed = %v, id = %d", existed, again.ID)
	}

	if _, _, err := st.CreateScanReport(99); !apperr.IsNotFound(err) {
		t.Errorf("unknown scan: %v, want not found", err)
	}
}

func TestCreateBaselineReportIdempotent(t *testing.T) {
	st := newTestStore(t)

	_, existed, err := st.CreateBaselineReport(2)
	if err != nil {
		t.Fatalf("CreateBaselineReport: %v", err)
	}
	if !existed {
		t.Error("check 2 already has a seeded report")
	}

	created, existed, err := st.CreateBaselineReport(1)
	if err != nil {
		t.Fatalf("CreateBaselineReport: %v", err)
	}
	if existed {
		t.Error("fresh check should create a report")
	}
	if created.Title != "Corporate Website Web Application Baseline Check Report" {
		t.Errorf("title = %q", created.Title)
	}

	if _, _, err := st.CreateBaselineReport(99); !apperr.IsNotFound(err) {
		t.Errorf("unknown check: %v, want not found", err)
	}
}

func TestGetReportContent(t *testing.T) {
	st := newTestStore(t)

	t.Run("scan report", func(t *testing.T) {
		rpt, err := st.GetReport(1)
		if err != nil {
			t.Fatalf("GetReport: %v", err)
		}
		if rpt.Content == nil || rpt.Content.Scan == nil {
			t.Fatalf("content not joined: %+v", rpt)
		}
		if rpt.Content.Scan.ID != 1 {
			t.Errorf("scan id = %d", rpt.Content.Scan.ID)
		}
		if len(rpt.Content.Results) != 2 {
			t.Errorf("results = %d, want 2", len(rpt.Content.Results))
		}
		summary := rpt.Content.Summary
		if summary.VulnerabilitiesCount != 2 || summary.HighRiskCount != 1 || summary.MediumRiskCount != 1 {
			t.Errorf("summary = %+v", summary)
		}
	})

	t.Run("baseline report", func(t *testing.T) {
		rpt, err := st.GetReport(2)
		if err != nil {
			t.Fatalf("GetReport: %v", err)
		}
		if rpt.Content == nil || rpt.Content.Check == nil {
			t.Fatalf("content not joined: %+v", rpt)
		}
		summary := rpt.Content.Summary
		if summary.TotalItems != 5 || summary.PassedItems != 4 || summary.FailedItems != 1 {
			t.Errorf("summary = %+v", summary)
		}
		if summary.Score != 80 {
			t.Errorf("score = %d, want 80", summary.Score)
		}
		if rpt.Content.Baseline == nil || rpt.Content.Baseline.Name != "API Baseline" {
			t.Errorf("baseline not joined: %+v", rpt.Content.Baseline)
		}
		if rpt.Content.Asset == nil || rpt.Content.Asset.Name != "Payment API" {
			t.Errorf("asset not joined: %+v", rpt.Content.Asset)
		}
	})

	t.Run("content survives a deleted source", func(t *testing.T) {
		// Deleting the scan leaves the report listed but without content.
		st2 := newTestStore(t)
		st2.mu.Lock()
		st2.scans = st2.scans[1:]
		st2.mu.Unlock()
		rpt, err := st2.GetReport(1)
		if err != nil {
			t.Fatalf("GetReport: %v", err)
		}
		if rpt.Content != nil {
			t.Errorf("content should be nil for a dangling source")
		}
	})

	if _, err := st.GetReport(99); !apperr.IsNotFound(err) {
		t.Errorf("unknown report: %v, want not found", err)
	}
}

func TestDashboardSummary(t *testing.T) {
	st := newTestStore(t)
	summary := st.DashboardSummary()

	if summary.Assets.Total != 5 || summary.Assets.Running != 3 || summary.Assets.Maintenance != 1 || summary.Assets.Stopped != 1 {
		t.Errorf("assets = %+v", summary.Assets)
	}
	if summary.Vulnerabilities.Total != 5 || summary.Vulnerabilities.High != 3 || summary.Vulnerabilities.Medium != 2 || summary.Vulnerabilities.Low != 0 {
		t.Errorf("vulnerabilities = %+v", summary.Vulnerabilities)
	}
	if summary.Scans.Total != 4 || summary.Scans.Pending != 1 || summary.Scans.Running != 1 || summary.Scans.Completed != 1 || summary.Scans.Failed != 1 {
		t.Errorf("scans = %+v", summary.Scans)
	}
	if summary.Reports != 2 {
		t.Errorf("reports = %d, want 2", summary.Reports)
	}
}

func TestVulnerabilityStats(t *testing.T) {
	st := newTestStore(t)
	stats := st.VulnerabilityStats()

	if len(stats.ByRisk) != 3 || stats.ByRisk[0].Value != 3 || stats.ByRisk[1].Value != 2 || stats.ByRisk[2].Value != 0 {
		t.Errorf("byRisk = %+v", stats.ByRisk)
	}
	if len(stats.ByType) != 5 {
		t.Fatalf("byType = %+v", stats.ByType)
	}
	for _, row := range stats.ByType {
		if row.Value != 1 {
			t.Errorf("type %s count = %d, want 1", row.Name, row.Value)
		}
	}

	// Only scan 1 is completed; its findings land in March 2024.
	if len(stats.Trend) != 1 {
		t.Fatalf("trend = %+v", stats.Trend)
	}
	row := stats.Trend[0]
	if row.Date != "2024-03" || row.High != 2 || row.Medium != 3 || row.Low != 5 {
		t.Errorf("trend row = %+v", row)
	}
}

func TestRecentScans(t *testing.T) {
	st := newTestStore(t)
	recent := st.RecentScans(5)

	// Scans 2, 1 and 4 have started; newest first.
	if len(recent) != 3 {
		t.Fatalf("recent = %d entries, want 3", len(recent))
	}
	wantOrder := []int64{2, 1, 4}
	for i, rs := range recent {
		if rs.ID != wantOrder[i] {
			t.Errorf("position %d: scan %d, want %d", i, rs.ID, wantOrder[i])
		}
	}
	if recent[0].AssetName != "User Management System" {
		t.Errorf("asset name = %q", recent[0].AssetName)
	}

	if got := st.RecentScans(2); len(got) != 2 {
		t.Errorf("limit 2 returned %d entries", len(got))
	}
}

func TestAssetStats(t *testing.T) {
	st := newTestStore(t)
	stats := st.AssetStats()

	wantTypes := map[string]int{"Web App": 2, "API Service": 1, "Mobile App": 1, "Mini Program": 1}
	for _, row := range stats.ByType {
		if row.Value != wantTypes[row.Name] {
			t.Errorf("type %s = %d, want %d", row.Name, row.Value, wantTypes[row.Name])
		}
	}

	if len(stats.MostVulnerable) != 5 {
		t.Fatalf("mostVulnerable = %d entries", len(stats.MostVulnerable))
	}
	top := stats.MostVulnerable[0]
	if top.ID != 1 || top.TotalRisk != 10 {
		t.Errorf("top asset = %+v, want asset 1 with 10 findings", top)
	}
}

func TestReset(t *testing.T) {
	st := newTestStore(t)

	st.CreateAsset(model.Asset{Name: "Temporary"})
	if err := st.DeleteAsset(1); err != nil {
		t.Fatalf("DeleteAsset: %v", err)
	}

	st.Reset()
	page := st.ListAssets(model.AssetFilter{})
	if page.Pagination.Total != 5 {
		t.Errorf("total after reset = %d, want 5", page.Pagination.Total)
	}
	if _, err := st.GetAsset(1); err != nil {
		t.Errorf("seeded asset missing after reset: %v", err)
	}
}
