package store

import (
	"fmt"

	"github.com/hmartins/secconsole/internal/apperr"
	"github.com/hmartins/secconsole/internal/model"
)

func (s *Store) ListReports(f model.ReportFilter) model.Page[model.Report] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []model.Report
	for _, r := range s.reports {
		if !matchName(r.Title, f.Title) {
			continue
		}
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		filtered = append(filtered, r)
	}
	return paginate(filtered, f.PageRequest)
}

// GetReport resolves the report with its content projection joined in at
// read time: the scan plus its findings, or the baseline check plus its
// baseline and asset, with summary counts. Content is never stored.
func (s *Store) GetReport(id int64) (model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reports {
		if r.ID != id {
			continue
		}
		switch {
		case r.Type == model.ReportScan && r.ScanTaskID != nil:
			if scan, err := s.findScan(*r.ScanTaskID); err == nil {
				set := s.resultsForLocked(scan)
				summary := model.ReportSummary{VulnerabilitiesCount: len(set.Items)}
				for _, res := range set.Items {
					switch res.Risk {
					case model.RiskHigh:
						summary.HighRiskCount++
					case model.RiskMedium:
						summary.MediumRiskCount++
					case model.RiskLow:
						summary.LowRiskCount++
					}
				}
				r.Content = &model.ReportContent{Scan: &scan, Results: set.Items, Summary: summary}
			}
		case r.Type == model.ReportBaseline && r.BaselineCheckID != nil:
			if check, err := s.findCheck(*r.BaselineCheckID); err == nil {
				content := &model.ReportContent{Check: &check}
				if baseline, err := s.findBaseline(check.BaselineID); err == nil {
					content.Baseline = &baseline
				}
				if asset, err := s.findAsset(check.AssetID); err == nil {
					content.Asset = &asset
				}
				content.Summary = model.ReportSummary{
					TotalItems: len(check.Result),
					Score:      check.Score,
				}
				for _, item := range check.Result {
					if item.Passed {
						content.Summary.PassedItems++
					} else {
						content.Summary.FailedItems++
					}
				}
				r.Content = content
			}
		}
		return r, nil
	}
	return model.Report{}, apperr.New(apperr.NotFound, "report not found")
}

// CreateScanReport is idempotent per scan: a second call returns the
// existing report with existed set.
func (s *Store) CreateScanReport(scanID int64) (model.Report, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scan, err := s.findScan(scanID)
	if err != nil {
		return model.Report{}, false, err
	}

	for _, r := range s.reports {
		if r.Type == model.ReportScan && r.ScanTaskID != nil && *r.ScanTaskID == scanID {
			return r, true, nil
		}
	}

	title := scan.Target
	if asset, err := s.findAsset(scan.AssetID); err == nil {
		title = asset.Name
	}

	now := s.now()
	report := model.Report{
		ID:         s.nextReportID(),
		Title:      fmt.Sprintf("%s Security Scan Report", title),
		Type:       model.ReportScan,
		ScanTaskID: &scanID,
		CreatedBy:  mockUserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.reports = append(s.reports, report)
	return report, false, nil
}

// CreateBaselineReport mirrors CreateScanReport for baseline check runs.
func (s *Store) CreateBaselineReport(checkID int64) (model.Report, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	check, err := s.findCheck(checkID)
	if err != nil {
		return model.Report{}, false, err
	}

	for _, r := range s.reports {
		if r.Type == model.ReportBaseline && r.BaselineCheckID != nil && *r.BaselineCheckID == checkID {
			return r, true, nil
		}
	}

	assetName := "Unknown asset"
	if asset, err := s.findAsset(check.AssetID); err == nil {
		assetName = asset.Name
	}
	baselineName := "Security Baseline"
	if baseline, err := s.findBaseline(check.BaselineID); err == nil {
		baselineName = baseline.Name
	}

	now := s.now()
	report := model.Report{
		ID:              s.nextReportID(),
		Title:           fmt.Sprintf("%s %s Check Report", assetName, baselineName),
		Type:            model.ReportBaseline,
		BaselineCheckID: &checkID,
		CreatedBy:       mockUserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.reports = append(s.reports, report)
	return report, false, nil
}

func (s *Store) nextReportID() int64 {
	var maxID int64
	for _, r := range s.reports {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}
