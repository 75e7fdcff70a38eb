package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hmartins/secconsole/internal/apperr"
	"github.com/hmartins/secconsole/internal/model"
	"github.com/hmartins/secconsole/internal/validate"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeData wraps the payload in the {data, message?} envelope the client
// unwraps on its side.
func writeData(w http.ResponseWriter, status int, v any, message string) {
	writeJSON(w, status, model.Envelope[any]{Data: v, Message: message})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeAppError translates the error taxonomy into HTTP status codes.
func writeAppError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.NotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case apperr.InvalidState:
		writeError(w, http.StatusConflict, err.Error())
	case apperr.InvalidCredentials:
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case apperr.Unauthorized:
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func parsePage(r *http.Request) model.PageRequest {
	var req model.PageRequest
	if v, err := strconv.Atoi(r.URL.Query().Get("currentPage")); err == nil {
		req.CurrentPage = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil {
		req.PageSize = v
	}
	return req
}

func parseID(idStr string) (int64, bool) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	return id, err == nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// --- Auth ---

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var creds credentials
	if !decodeBody(w, r, &creds) {
		return
	}
	resp, err := s.db.Login(creds.Email, creds.Password)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp, "")
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var creds credentials
	if !decodeBody(w, r, &creds) {
		return
	}
	user, err := s.db.Register(creds.Email, creds.Password)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeData(w, http.StatusCreated, user, "")
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if token := bearerToken(r); token != "" {
		if err := s.db.DeleteSession(token); err != nil {
			writeAppError(w, err)
			return
		}
	}
	writeData(w, http.StatusOK, struct{}{}, "logged out")
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	user, err := s.db.UserForToken(bearerToken(r))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeData(w, http.StatusOK, user, "")
}

// --- Assets ---

func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		filter := model.AssetFilter{
			PageRequest: parsePage(r),
			Name:        q.Get("name"),
			Type:        model.AssetType(q.Get("type")),
			Status:      model.AssetStatus(q.Get("status")),
		}
		writeData(w, http.StatusOK, s.store.ListAssets(filter), "")

	case http.MethodPost:
		var asset model.Asset
		if !decodeBody(w, r, &asset) {
			return
		}
		if err := validateAsset(asset.Domain, asset.Ports); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeData(w, http.StatusCreated, s.store.CreateAsset(asset), "")

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(strings.TrimPrefix(r.URL.Path, "/api/assets/"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		asset, err := s.store.GetAsset(id)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeData(w, http.StatusOK, asset, "")

	case http.MethodPut:
		var patch model.AssetPatch
		if !decodeBody(w, r, &patch) {
			return
		}
		if patch.Domain != nil {
			if err := validate.Domain(*patch.Domain); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}
		if patch.Ports != nil {
			if err := validatePorts(*patch.Ports); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}
		asset, err := s.store.UpdateAsset(id, patch)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeData(w, http.StatusOK, asset, "")

	case http.MethodDelete:
		if err := s.store.DeleteAsset(id); err != nil {
			writeAppError(w, err)
			return
		}
		writeData(w, http.StatusOK, struct{}{}, "deleted")

	default:
		methodNotAllowed(w)
	}
}

func validateAsset(domain string, ports []string) error {
	if err := validate.Domain(domain); err != nil {
		return err
	}
	return validatePorts(ports)
}

func validatePorts(ports []string) error {
	for _, p := range ports {
		if err := validate.Port(p); err != nil {
			return err
		}
	}
	return nil
}

// --- Vulnerabilities ---

func (s *Server) handleVulnerabilities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		filter := model.VulnerabilityFilter{
			PageRequest: parsePage(r),
			Name:        q.Get("name"),
			Type:        model.VulnType(q.Get("type")),
			Risk:        model.RiskLevel(q.Get("risk")),
		}
		writeData(w, http.StatusOK, s.store.ListVulnerabilities(filter), "")

	case http.MethodPost:
		var vuln model.Vulnerability
		if !decodeBody(w, r, &vuln) {
			return
		}
		writeData(w, http.StatusCreated, s.store.CreateVulnerability(vuln), "")

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleVulnerability(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/vulnerabilities/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing vulnerability id")
		return
	}

	if id == "update-database" {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		writeData(w, http.StatusOK, s.store.UpdateDatabase(), "")
		return
	}

	switch r.Method {
	case http.MethodGet:
		vuln, err := s.store.GetVulnerability(id)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeData(w, http.StatusOK, vuln, "")

	case http.MethodPut:
		var patch model.VulnerabilityPatch
		if !decodeBody(w, r, &patch) {
			return
		}
		vuln, err := s.store.UpdateVulnerability(id, patch)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeData(w, http.StatusOK, vuln, "")

	case http.MethodDelete:
		if err := s.store.DeleteVulnerability(id); err != nil {
			writeAppError(w, err)
			return
		}
		writeData(w, http.StatusOK, struct{}{}, "deleted")

	default:
		methodNotAllowed(w)
	}
}

// --- Scans ---

func (s *Server) handleScans(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		filter := model.ScanFilter{
			PageRequest: parsePage(r),
			Target:      q.Get("target"),
			Status:      model.ScanStatus(q.Get("status")),
		}
		if assetID, ok := parseID(q.Get("assetId")); ok {
			filter.AssetID = assetID
		}
		writeData(w, http.StatusOK, s.store.ListScans(filter), "")

	case http.MethodPost:
		var task model.ScanTask
		if !decodeBody(w, r, &task) {
			return
		}
		writeData(w, http.StatusCreated, s.store.CreateScan(task), "")

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/scans/")

	// POST /api/scans/asset/{assetId} launches a scan against an asset.
	if assetIDStr, ok := strings.CutPrefix(rest, "asset/"); ok {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		assetID, ok := parseID(assetIDStr)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid asset id")
			return
		}
		var opts model.ScanOptions
		if r.ContentLength > 0 && !decodeBody(w, r, &opts) {
			return
		}
		task, err := s.store.StartScan(assetID, opts)
		if err != nil {
			writeAppError(w, err)
			return
		}
		s.hub.Broadcast(Event{Type: "scan.started", Data: task})
		writeData(w, http.StatusCreated, task, "")
		return
	}

	parts := strings.SplitN(rest, "/", 2)
	id, ok := parseID(parts[0])
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid scan id")
		return
	}

	if len(parts) > 1 {
		switch parts[1] {
		case "cancel":
			if r.Method != http.MethodPost {
				methodNotAllowed(w)
				return
			}
			task, err := s.store.CancelScan(id)
			if err != nil {
				writeAppError(w, err)
				return
			}
			s.hub.Broadcast(Event{Type: "scan.cancelled", Data: task})
			writeData(w, http.StatusOK, task, "")

		case "results":
			if r.Method != http.MethodGet {
				methodNotAllowed(w)
				return
			}
			set, err := s.store.GetScanResults(id)
			if err != nil {
				writeAppError(w, err)
				return
			}
			writeData(w, http.StatusOK, set, set.Message)

		default:
			writeError(w, http.StatusNotFound, "not found")
		}
		return
	}

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	task, err := s.store.GetScan(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeData(w, http.StatusOK, task, "")
}

// --- Security baselines ---

func (s *Server) handleBaselines(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		filter := model.BaselineFilter{
			PageRequest: parsePage(r),
			Name:        q.Get("name"),
			Category:    q.Get("category"),
		}
		writeData(w, http.StatusOK, s.store.ListBaselines(filter), "")

	case http.MethodPost:
		var baseline model.SecurityBaseline
		if !decodeBody(w, r, &baseline) {
			return
		}
		writeData(w, http.StatusCreated, s.store.CreateBaseline(baseline), "")

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleBaseline(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/security-baselines/")

	// POST /api/security-baselines/check runs a check; GET .../check/{id}
	// fetches its results.
	if rest == "check" {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		var req struct {
			AssetID    int64 `json:"assetId"`
			BaselineID int64 `json:"baselineId"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		check, err := s.store.RunCheck(req.AssetID, req.BaselineID)
		if err != nil {
			writeAppError(w, err)
			return
		}
		s.hub.Broadcast(Event{Type: "baseline.check", Data: check})
		writeData(w, http.StatusCreated, check, "")
		return
	}
	if checkIDStr, ok := strings.CutPrefix(rest, "check/"); ok {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		checkID, ok := parseID(checkIDStr)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid check id")
			return
		}
		check, err := s.store.GetCheck(checkID)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeData(w, http.StatusOK, check, "")
		return
	}

	id, ok := parseID(rest)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid baseline id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		baseline, err := s.store.GetBaseline(id)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeData(w, http.StatusOK, baseline, "")

	case http.MethodPut:
		var patch model.BaselinePatch
		if !decodeBody(w, r, &patch) {
			return
		}
		baseline, err := s.store.UpdateBaseline(id, patch)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeData(w, http.StatusOK, baseline, "")

	case http.MethodDelete:
		if err := s.store.DeleteBaseline(id); err != nil {
			writeAppError(w, err)
			return
		}
		writeData(w, http.StatusOK, struct{}{}, "deleted")

	default:
		methodNotAllowed(w)
	}
}

// --- Reports ---

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	q := r.URL.Query()
	filter := model.ReportFilter{
		PageRequest: parsePage(r),
		Title:       q.Get("title"),
		Type:        model.ReportType(q.Get("type")),
	}
	writeData(w, http.StatusOK, s.store.ListReports(filter), "")
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/reports/")

	// POST /api/reports/scan/{scanId} and /api/reports/baseline/{checkId}
	// create reports idempotently; an existing report comes back with a
	// message instead of a duplicate.
	if sourceIDStr, ok := strings.CutPrefix(rest, "scan/"); ok {
		s.handleCreateReport(w, r, sourceIDStr, s.store.CreateScanReport)
		return
	}
	if sourceIDStr, ok := strings.CutPrefix(rest, "baseline/"); ok {
		s.handleCreateReport(w, r, sourceIDStr, s.store.CreateBaselineReport)
		return
	}

	parts := strings.SplitN(rest, "/", 2)
	id, ok := parseID(parts[0])
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	if len(parts) > 1 && parts[1] == "export" {
		s.handleExportReport(w, r, id)
		return
	}

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	rpt, err := s.store.GetReport(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeData(w, http.StatusOK, rpt, "")
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request, sourceIDStr string, create func(int64) (model.Report, bool, error)) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	sourceID, ok := parseID(sourceIDStr)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	rpt, existed, err := create(sourceID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	if existed {
		writeData(w, http.StatusOK, rpt, "report already exists")
		return
	}
	writeData(w, http.StatusCreated, rpt, "")
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request, id int64) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	rpt, err := s.store.GetReport(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	exported, err := s.reportGen.Export(rpt, r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", exported.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exported.Filename))
	w.Write(exported.Data)
}

// --- Dashboard ---

func (s *Server) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeData(w, http.StatusOK, s.store.DashboardSummary(), "")
}

func (s *Server) handleVulnerabilityStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeData(w, http.StatusOK, s.store.VulnerabilityStats(), "")
}

func (s *Server) handleRecentScans(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeData(w, http.StatusOK, s.store.RecentScans(5), "")
}

func (s *Server) handleAssetStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeData(w, http.StatusOK, s.store.AssetStats(), "")
}
