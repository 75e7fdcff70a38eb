package store

import (
	"sort"

	"github.com/hmartins/secconsole/internal/model"
)

// DashboardSummary counts every collection by status. Computed on each call.
func (s *Store) DashboardSummary() model.DashboardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := model.DashboardSummary{Reports: len(s.reports)}

	summary.Assets.Total = len(s.assets)
	for _, a := range s.assets {
		switch a.Status {
		case model.AssetRunning:
			summary.Assets.Running++
		case model.AssetMaintenance:
			summary.Assets.Maintenance++
		case model.AssetStopped:
			summary.Assets.Stopped++
		}
	}

	summary.Vulnerabilities.Total = len(s.vulns)
	for _, v := range s.vulns {
		switch v.Risk {
		case model.RiskHigh:
			summary.Vulnerabilities.High++
		case model.RiskMedium:
			summary.Vulnerabilities.Medium++
		case model.RiskLow:
			summary.Vulnerabilities.Low++
		}
	}

	summary.Scans.Total = len(s.scans)
	for _, sc := range s.scans {
		switch sc.Status {
		case model.ScanPending:
			summary.Scans.Pending++
		case model.ScanRunning:
			summary.Scans.Running++
		case model.ScanCompleted:
			summary.Scans.Completed++
		case model.ScanFailed:
			summary.Scans.Failed++
		}
	}

	return summary
}

// VulnerabilityStats breaks the vulnerability database down by risk and type
// and derives the monthly finding trend from completed scans.
func (s *Store) VulnerabilityStats() model.VulnerabilityStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	riskCount := func(r model.RiskLevel) int {
		n := 0
		for _, v := range s.vulns {
			if v.Risk == r {
				n++
			}
		}
		return n
	}
	typeCount := func(t model.VulnType) int {
		n := 0
		for _, v := range s.vulns {
			if v.Type == t {
				n++
			}
		}
		return n
	}

	stats := model.VulnerabilityStats{
		ByRisk: []model.ChartRow{
			{Name: "High", Value: riskCount(model.RiskHigh)},
			{Name: "Medium", Value: riskCount(model.RiskMedium)},
			{Name: "Low", Value: riskCount(model.RiskLow)},
		},
		ByType: []model.ChartRow{
			{Name: "SQL Injection", Value: typeCount(model.VulnSQL)},
			{Name: "XSS", Value: typeCount(model.VulnXSS)},
			{Name: "Command Injection", Value: typeCount(model.VulnCmd)},
			{Name: "File Inclusion", Value: typeCount(model.VulnFile)},
			{Name: "File Upload", Value: typeCount(model.VulnUpload)},
		},
	}

	// Finding trend: completed scans grouped by start month.
	byMonth := make(map[string]*model.TrendRow)
	for _, sc := range s.scans {
		if sc.Status != model.ScanCompleted || sc.StartTime == nil {
			continue
		}
		month := sc.StartTime.Format("2006-01")
		row, ok := byMonth[month]
		if !ok {
			row = &model.TrendRow{Date: month}
			byMonth[month] = row
		}
		row.High += sc.High
		row.Medium += sc.Medium
		row.Low += sc.Low
	}
	stats.Trend = make([]model.TrendRow, 0, len(byMonth))
	for _, row := range byMonth {
		stats.Trend = append(stats.Trend, *row)
	}
	sort.Slice(stats.Trend, func(i, j int) bool { return stats.Trend[i].Date < stats.Trend[j].Date })

	return stats
}

// RecentScans returns the latest started scans, newest first, joined to
// their asset names.
func (s *Store) RecentScans(limit int) []model.RecentScan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var started []model.ScanTask
	for _, sc := range s.scans {
		if sc.StartTime != nil {
			started = append(started, sc)
		}
	}
	sort.SliceStable(started, func(i, j int) bool {
		return started[i].StartTime.After(*started[j].StartTime)
	})
	if limit > 0 && len(started) > limit {
		started = started[:limit]
	}

	recent := make([]model.RecentScan, 0, len(started))
	for _, sc := range started {
		name := "Unknown asset"
		if a, err := s.findAsset(sc.AssetID); err == nil {
			name = a.Name
		}
		recent = append(recent, model.RecentScan{ScanTask: sc, AssetName: name})
	}
	return recent
}

// AssetStats breaks assets down by type and status and ranks the scanned
// assets by the findings of their first completed scan.
func (s *Store) AssetStats() model.AssetStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	typeCount := func(t model.AssetType) int {
		n := 0
		for _, a := range s.assets {
			if a.Type == t {
				n++
			}
		}
		return n
	}
	statusCount := func(st model.AssetStatus) int {
		n := 0
		for _, a := range s.assets {
			if a.Status == st {
				n++
			}
		}
		return n
	}

	stats := model.AssetStats{
		ByType: []model.ChartRow{
			{Name: "Web App", Value: typeCount(model.AssetWeb)},
			{Name: "API Service", Value: typeCount(model.AssetAPI)},
			{Name: "Mobile App", Value: typeCount(model.AssetMobile)},
			{Name: "Mini Program", Value: typeCount(model.AssetMiniapp)},
		},
		ByStatus: []model.ChartRow{
			{Name: "Running", Value: statusCount(model.AssetRunning)},
			{Name: "Stopped", Value: statusCount(model.AssetStopped)},
			{Name: "Maintenance", Value: statusCount(model.AssetMaintenance)},
		},
	}

	var ranked []model.AssetRiskInfo
	for _, a := range s.assets {
		if a.LastScan == nil {
			continue
		}
		info := model.AssetRiskInfo{ID: a.ID, Name: a.Name, Type: a.Type}
		for _, sc := range s.scans {
			if sc.AssetID == a.ID && sc.Status == model.ScanCompleted {
				info.HighRisk = sc.High
				info.MediumRisk = sc.Medium
				info.LowRisk = sc.Low
				break
			}
		}
		info.TotalRisk = info.HighRisk + info.MediumRisk + info.LowRisk
		ranked = append(ranked, info)
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TotalRisk > ranked[j].TotalRisk })
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	stats.MostVulnerable = ranked

	return stats
}
