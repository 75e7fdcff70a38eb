package model

// Dashboard aggregates. All of these are computed over the live collections
// on every call, never stored.

type DashboardSummary struct {
	Assets          AssetCounts `json:"assets"`
	Vulnerabilities VulnCounts  `json:"vulnerabilities"`
	Scans           ScanCounts  `json:"scans"`
	Reports         int         `json:"reports"`
}

type AssetCounts struct {
	Total       int `json:"total"`
	Running     int `json:"running"`
	Maintenance int `json:"maintenance"`
	Stopped     int `json:"stopped"`
}

type VulnCounts struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type ScanCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Running   int `json:"running"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// ChartRow is one labelled value in a pie/bar breakdown.
type ChartRow struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TrendRow is one month of findings grouped by risk.
type TrendRow struct {
	Date   string `json:"date"`
	High   int    `json:"high"`
	Medium int    `json:"medium"`
	Low    int    `json:"low"`
}

type VulnerabilityStats struct {
	ByRisk []ChartRow `json:"byRisk"`
	ByType []ChartRow `json:"byType"`
	Trend  []TrendRow `json:"trend"`
}

type AssetRiskInfo struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Type       AssetType `json:"type"`
	HighRisk   int       `json:"highRisk"`
	MediumRisk int       `json:"mediumRisk"`
	LowRisk    int       `json:"lowRisk"`
	TotalRisk  int       `json:"totalRisk"`
}

type AssetStats struct {
	ByType         []ChartRow      `json:"byType"`
	ByStatus       []ChartRow      `json:"byStatus"`
	MostVulnerable []AssetRiskInfo `json:"mostVulnerable"`
}

// RecentScan is a scan task joined to its asset's name for the dashboard.
type RecentScan struct {
	ScanTask
	AssetName string `json:"assetName"`
}
