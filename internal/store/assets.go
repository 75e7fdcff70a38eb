package store

import (
	"github.com/hmartins/secconsole/internal/apperr"
	"github.com/hmartins/secconsole/internal/model"
)

func (s *Store) ListAssets(f model.AssetFilter) model.Page[model.Asset] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []model.Asset
	for _, a := range s.assets {
		if !matchName(a.Name, f.Name) {
			continue
		}
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		filtered = append(filtered, a)
	}
	return paginate(filtered, f.PageRequest)
}

func (s *Store) GetAsset(id int64) (model.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findAsset(id)
}

func (s *Store) findAsset(id int64) (model.Asset, error) {
	for _, a := range s.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Asset{}, apperr.New(apperr.NotFound, "asset not found")
}

func (s *Store) CreateAsset(a model.Asset) model.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, existing := range s.assets {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	now := s.now()
	a.ID = maxID + 1
	a.CreatedAt = now
	a.UpdatedAt = now
	s.assets = append(s.assets, a)
	return a
}

func (s *Store) UpdateAsset(id int64, patch model.AssetPatch) (model.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.assets {
		if a.ID != id {
			continue
		}
		if patch.Name != nil {
			a.Name = *patch.Name
		}
		if patch.Type != nil {
			a.Type = *patch.Type
		}
		if patch.Domain != nil {
			a.Domain = *patch.Domain
		}
		if patch.IP != nil {
			a.IP = *patch.IP
		}
		if patch.Ports != nil {
			a.Ports = *patch.Ports
		}
		if patch.Technology != nil {
			a.Technology = *patch.Technology
		}
		if patch.Owner != nil {
			a.Owner = *patch.Owner
		}
		if patch.Contact != nil {
			a.Contact = *patch.Contact
		}
		if patch.Status != nil {
			a.Status = *patch.Status
		}
		if patch.Notes != nil {
			a.Notes = *patch.Notes
		}
		a.UpdatedAt = s.now()
		s.assets[i] = a
		return a, nil
	}
	return model.Asset{}, apperr.New(apperr.NotFound, "asset not found")
}

func (s *Store) DeleteAsset(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.assets {
		if a.ID == id {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			return nil
		}
	}
	return apperr.New(apperr.NotFound, "asset not found")
}
