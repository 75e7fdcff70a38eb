package store

import (
	"fmt"

	"github.com/hmartins/secconsole/internal/apperr"
	"github.com/hmartins/secconsole/internal/model"
)

func (s *Store) ListVulnerabilities(f model.VulnerabilityFilter) model.Page[model.Vulnerability] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []model.Vulnerability
	for _, v := range s.vulns {
		if !matchName(v.Name, f.Name) {
			continue
		}
		if f.Type != "" && v.Type != f.Type {
			continue
		}
		if f.Risk != "" && v.Risk != f.Risk {
			continue
		}
		filtered = append(filtered, v)
	}
	return paginate(filtered, f.PageRequest)
}

func (s *Store) GetVulnerability(id string) (model.Vulnerability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vulns {
		if v.ID == id {
			return v, nil
		}
	}
	return model.Vulnerability{}, apperr.New(apperr.NotFound, "vulnerability not found")
}

// CreateVulnerability assigns the next advisory identifier in the
// CVE-2024-NNNN series, numbered from 1001 by collection size.
func (s *Store) CreateVulnerability(v model.Vulnerability) model.Vulnerability {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = fmt.Sprintf("CVE-2024-%d", 1000+len(s.vulns)+1)
	v.UpdateTime = s.now()
	s.vulns = append(s.vulns, v)
	return v
}

func (s *Store) UpdateVulnerability(id string, patch model.VulnerabilityPatch) (model.Vulnerability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.vulns {
		if v.ID != id {
			continue
		}
		if patch.Name != nil {
			v.Name = *patch.Name
		}
		if patch.Type != nil {
			v.Type = *patch.Type
		}
		if patch.Risk != nil {
			v.Risk = *patch.Risk
		}
		if patch.Description != nil {
			v.Description = *patch.Description
		}
		if patch.Affects != nil {
			v.Affects = *patch.Affects
		}
		if patch.Solution != nil {
			v.Solution = *patch.Solution
		}
		if patch.References != nil {
			v.References = *patch.References
		}
		v.UpdateTime = s.now()
		s.vulns[i] = v
		return v, nil
	}
	return model.Vulnerability{}, apperr.New(apperr.NotFound, "vulnerability not found")
}

func (s *Store) DeleteVulnerability(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.vulns {
		if v.ID == id {
			s.vulns = append(s.vulns[:i], s.vulns[i+1:]...)
			return nil
		}
	}
	return apperr.New(apperr.NotFound, "vulnerability not found")
}

// UpdateDatabase simulates pulling the latest advisories from an upstream
// feed. The counts are illustrative only.
func (s *Store) UpdateDatabase() model.UpdateDatabaseResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.UpdateDatabaseResult{
		Message:      "vulnerability database updated",
		UpdatedCount: 15,
		NewCount:     5,
		Timestamp:    s.now(),
	}
}
