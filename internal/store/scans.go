package store

import (
	"fmt"

	"github.com/hmartins/secconsole/internal/apperr"
	"github.com/hmartins/secconsole/internal/model"
)

func (s *Store) ListScans(f model.ScanFilter) model.Page[model.ScanTask] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []model.ScanTask
	for _, sc := range s.scans {
		if !matchName(sc.Target, f.Target) {
			continue
		}
		if f.Status != "" && sc.Status != f.Status {
			continue
		}
		if f.AssetID != 0 && sc.AssetID != f.AssetID {
			continue
		}
		filtered = append(filtered, sc)
	}
	return paginate(filtered, f.PageRequest)
}

func (s *Store) GetScan(id int64) (model.ScanTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findScan(id)
}

func (s *Store) findScan(id int64) (model.ScanTask, error) {
	for _, sc := range s.scans {
		if sc.ID == id {
			return sc, nil
		}
	}
	return model.ScanTask{}, apperr.New(apperr.NotFound, "scan task not found")
}

// CreateScan registers a task without starting it: status pending, no
// timestamps, zero finding counts.
func (s *Store) CreateScan(task model.ScanTask) model.ScanTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextScanID()
	if task.Status == "" {
		task.Status = model.ScanPending
	}
	task.StartTime = nil
	task.EndTime = nil
	task.High, task.Medium, task.Low = 0, 0, 0
	if task.CreatedBy == "" {
		task.CreatedBy = mockUserID
	}
	s.scans = append(s.scans, task)
	return task
}

func (s *Store) nextScanID() int64 {
	var maxID int64
	for _, sc := range s.scans {
		if sc.ID > maxID {
			maxID = sc.ID
		}
	}
	return maxID + 1
}

// StartScan creates a running task against the asset's domain and stamps the
// asset's lastScan time as a side effect.
func (s *Store) StartScan(assetID int64, opts model.ScanOptions) (model.ScanTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, err := s.findAsset(assetID)
	if err != nil {
		return model.ScanTask{}, err
	}

	types := opts.ScanTypes
	if len(types) == 0 {
		types = []model.VulnType{model.VulnSQL, model.VulnXSS}
	}
	depth := opts.Depth
	if depth == 0 {
		depth = 1
	}

	now := s.now()
	task := model.ScanTask{
		ID:        s.nextScanID(),
		Target:    asset.Domain,
		ScanTypes: types,
		Depth:     depth,
		Status:    model.ScanRunning,
		StartTime: timePtr(now),
		AssetID:   assetID,
		CreatedBy: mockUserID,
	}
	s.scans = append(s.scans, task)

	for i := range s.assets {
		if s.assets[i].ID == assetID {
			s.assets[i].LastScan = timePtr(now)
			break
		}
	}
	return task, nil
}

// CancelScan is only legal while the task is running. A cancelled task lands
// on status failed with its end time set.
func (s *Store) CancelScan(id int64) (model.ScanTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sc := range s.scans {
		if sc.ID != id {
			continue
		}
		if sc.Status != model.ScanRunning {
			return model.ScanTask{}, apperr.New(apperr.InvalidState,
				fmt.Sprintf("cannot cancel scan in status %q", sc.Status))
		}
		sc.Status = model.ScanFailed
		sc.EndTime = timePtr(s.now())
		s.scans[i] = sc
		return sc, nil
	}
	return model.ScanTask{}, apperr.New(apperr.NotFound, "scan task not found")
}

// GetScanResults returns the seeded findings for a task when present.
// Otherwise completed tasks get a synthesized set drawn from the PRNG, and
// unfinished tasks get an empty set with a state note.
func (s *Store) GetScanResults(id int64) (model.ScanResultSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scan, err := s.findScan(id)
	if err != nil {
		return model.ScanResultSet{}, err
	}
	return s.resultsForLocked(scan), nil
}

// resultsForLocked assumes s.mu is held for writing (synthesis draws from
// the PRNG).
func (s *Store) resultsForLocked(scan model.ScanTask) model.ScanResultSet {
	if seeded, ok := s.results[scan.ID]; ok {
		items := make([]model.ScanResult, len(seeded))
		copy(items, seeded)
		return model.ScanResultSet{Items: items, ScanInfo: scan}
	}

	switch scan.Status {
	case model.ScanCompleted:
		return model.ScanResultSet{Items: s.synthesizeResults(scan), ScanInfo: scan}
	case model.ScanRunning:
		return model.ScanResultSet{Items: []model.ScanResult{}, ScanInfo: scan, Message: "scan is in progress"}
	case model.ScanPending:
		return model.ScanResultSet{Items: []model.ScanResult{}, ScanInfo: scan, Message: "scan has not started"}
	default:
		return model.ScanResultSet{Items: []model.ScanResult{}, ScanInfo: scan, Message: "scan failed or was cancelled"}
	}
}

func (s *Store) synthesizeResults(scan model.ScanTask) []model.ScanResult {
	vulnTypes := []model.VulnType{model.VulnSQL, model.VulnXSS, model.VulnCmd, model.VulnFile, model.VulnUpload}
	riskLevels := []model.RiskLevel{model.RiskHigh, model.RiskMedium, model.RiskLow}

	results := make([]model.ScanResult, 0, 3)
	for i := 0; i < 3; i++ {
		vulnType := vulnTypes[s.rng.Intn(len(vulnTypes))]
		risk := riskLevels[s.rng.Intn(len(riskLevels))]

		vulnID := "CVE-2024-1001"
		for _, v := range s.vulns {
			if v.Type == vulnType {
				vulnID = v.ID
				break
			}
		}

		results = append(results, model.ScanResult{
			ID:              int64(i + 1),
			ScanTaskID:      scan.ID,
			VulnerabilityID: vulnID,
			URL:             fmt.Sprintf("%s/path-%d", scan.Target, i),
			Parameter:       fmt.Sprintf("param-%d", i),
			Risk:            risk,
			Description:     fmt.Sprintf("Found a %s vulnerability that may pose a security risk.", vulnType),
			Proof:           fmt.Sprintf("Test input %s-payload-%d triggered the vulnerability.", vulnType, i),
			FixSuggestion:   "See the remediation guidance in the vulnerability database.",
		})
	}
	return results
}
