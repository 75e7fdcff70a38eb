package model

import "time"

type AssetType string

const (
	AssetWeb     AssetType = "web"
	AssetAPI     AssetType = "api"
	AssetMobile  AssetType = "mobile"
	AssetMiniapp AssetType = "miniapp"
)

type AssetStatus string

const (
	AssetRunning     AssetStatus = "running"
	AssetStopped     AssetStatus = "stopped"
	AssetMaintenance AssetStatus = "maintenance"
)

type VulnType string

const (
	VulnSQL    VulnType = "sql"
	VulnXSS    VulnType = "xss"
	VulnCmd    VulnType = "cmd"
	VulnFile   VulnType = "file"
	VulnUpload VulnType = "upload"
)

type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
	RiskInfo   RiskLevel = "info"
)

type ScanStatus string

const (
	ScanPending   ScanStatus = "pending"
	ScanRunning   ScanStatus = "running"
	ScanCompleted ScanStatus = "completed"
	ScanFailed    ScanStatus = "failed"
)

type ReportType string

const (
	ReportScan     ReportType = "scan"
	ReportBaseline ReportType = "baseline"
	ReportCustom   ReportType = "custom"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Asset struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Type       AssetType   `json:"type"`
	Domain     string      `json:"domain"`
	IP         string      `json:"ip"`
	Ports      []string    `json:"ports"`
	Technology string      `json:"technology"`
	Owner      string      `json:"owner"`
	Contact    string      `json:"contact"`
	Status     AssetStatus `json:"status"`
	LastScan   *time.Time  `json:"lastScan"`
	Notes      string      `json:"notes"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

type Vulnerability struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        VulnType  `json:"type"`
	Risk        RiskLevel `json:"risk"`
	Description string    `json:"description"`
	Affects     string    `json:"affects"`
	Solution    string    `json:"solution"`
	References  []string  `json:"references"`
	UpdateTime  time.Time `json:"updateTime"`
}

type ScanTask struct {
	ID        int64      `json:"id"`
	Target    string     `json:"target"`
	ScanTypes []VulnType `json:"scanTypes"`
	Depth     int        `json:"depth"`
	Status    ScanStatus `json:"status"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	AssetID   int64      `json:"assetId"`
	High      int        `json:"high"`
	Medium    int        `json:"medium"`
	Low       int        `json:"low"`
	CreatedBy string     `json:"createdBy"`
}

type ScanResult struct {
	ID              int64     `json:"id"`
	ScanTaskID      int64     `json:"scanTaskId"`
	VulnerabilityID string    `json:"vulnerabilityId"`
	URL             string    `json:"url"`
	Parameter       string    `json:"parameter"`
	Risk            RiskLevel `json:"risk"`
	Description     string    `json:"description"`
	Proof           string    `json:"proof"`
	FixSuggestion   string    `json:"fixSuggestion"`
}

// ScanResultSet is the payload of the scan results endpoint. Message carries
// the human-readable state note for scans that have not produced findings.
type ScanResultSet struct {
	Items    []ScanResult `json:"items"`
	ScanInfo ScanTask     `json:"scanInfo"`
	Message  string       `json:"message,omitempty"`
}

type BaselineCheckItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SecurityBaseline struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	CheckItems  []BaselineCheckItem `json:"checkItems"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type BaselineItemResult struct {
	ItemID  string `json:"itemId"`
	Passed  bool   `json:"passed"`
	Details string `json:"details"`
}

type BaselineCheck struct {
	ID         int64                `json:"id"`
	AssetID    int64                `json:"assetId"`
	BaselineID int64                `json:"baselineId"`
	Status     ScanStatus           `json:"status"`
	Result     []BaselineItemResult `json:"result"`
	Score      int                  `json:"score"`
	StartTime  *time.Time           `json:"startTime"`
	EndTime    *time.Time           `json:"endTime"`
	CreatedBy  string               `json:"createdBy"`

	// Resolved on read from the referenced baseline and asset.
	BaselineName string `json:"baselineName,omitempty"`
	AssetName    string `json:"assetName,omitempty"`
}

type Report struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Type            ReportType     `json:"type"`
	ScanTaskID      *int64         `json:"scanTaskId"`
	BaselineCheckID *int64         `json:"baselineCheckId"`
	CreatedBy       string         `json:"createdBy"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	Content         *ReportContent `json:"content,omitempty"`
}

// ReportContent is the projection joined in when a single report is read.
// Exactly one of the scan or baseline branches is populated.
type ReportContent struct {
	Scan    *ScanTask    `json:"scan,omitempty"`
	Results []ScanResult `json:"results,omitempty"`

	Check    *BaselineCheck    `json:"check,omitempty"`
	Baseline *SecurityBaseline `json:"baseline,omitempty"`
	Asset    *Asset            `json:"asset,omitempty"`

	Summary ReportSummary `json:"summary"`
}

type ReportSummary struct {
	VulnerabilitiesCount int `json:"vulnerabilitiesCount,omitempty"`
	HighRiskCount        int `json:"highRiskCount,omitempty"`
	MediumRiskCount      int `json:"mediumRiskCount,omitempty"`
	LowRiskCount         int `json:"lowRiskCount,omitempty"`

	TotalItems  int `json:"totalItems,omitempty"`
	PassedItems int `json:"passedItems,omitempty"`
	FailedItems int `json:"failedItems,omitempty"`
	Score       int `json:"score,omitempty"`
}

type UpdateDatabaseResult struct {
	Message      string    `json:"message"`
	UpdatedCount int       `json:"updatedCount"`
	NewCount     int       `json:"newCount"`
	Timestamp    time.Time `json:"timestamp"`
}

type ExportedReport struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}
