package model

// Pagination describes one page of a filtered collection. Total counts the
// filtered set before slicing.
type Pagination struct {
	Total       int `json:"total"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}

// PageRequest selects a page. Zero values fall back to page 1, size 10.
type PageRequest struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}

type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Envelope is the wire wrapper every response is normalized into.
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// Filter parameter sets, one per collection. Name-like fields match by
// case-insensitive substring, everything else by equality. Zero values mean
// "no filter".

type AssetFilter struct {
	Name   string      `json:"name,omitempty"`
	Type   AssetType   `json:"type,omitempty"`
	Status AssetStatus `json:"status,omitempty"`
	PageRequest
}

type VulnerabilityFilter struct {
	Name string    `json:"name,omitempty"`
	Type VulnType  `json:"type,omitempty"`
	Risk RiskLevel `json:"risk,omitempty"`
	PageRequest
}

type ScanFilter struct {
	Target  string     `json:"target,omitempty"`
	Status  ScanStatus `json:"status,omitempty"`
	AssetID int64      `json:"assetId,omitempty"`
	PageRequest
}

type BaselineFilter struct {
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
	PageRequest
}

type ReportFilter struct {
	Title string     `json:"title,omitempty"`
	Type  ReportType `json:"type,omitempty"`
	PageRequest
}

// Patch structs for partial updates. Nil fields are left untouched.

type AssetPatch struct {
	Name       *string      `json:"name,omitempty"`
	Type       *AssetType   `json:"type,omitempty"`
	Domain     *string      `json:"domain,omitempty"`
	IP         *string      `json:"ip,omitempty"`
	Ports      *[]string    `json:"ports,omitempty"`
	Technology *string      `json:"technology,omitempty"`
	Owner      *string      `json:"owner,omitempty"`
	Contact    *string      `json:"contact,omitempty"`
	Status     *AssetStatus `json:"status,omitempty"`
	Notes      *string      `json:"notes,omitempty"`
}

type VulnerabilityPatch struct {
	Name        *string    `json:"name,omitempty"`
	Type        *VulnType  `json:"type,omitempty"`
	Risk        *RiskLevel `json:"risk,omitempty"`
	Description *string    `json:"description,omitempty"`
	Affects     *string    `json:"affects,omitempty"`
	Solution    *string    `json:"solution,omitempty"`
	References  *[]string  `json:"references,omitempty"`
}

type BaselinePatch struct {
	Name        *string              `json:"name,omitempty"`
	Category    *string              `json:"category,omitempty"`
	Description *string              `json:"description,omitempty"`
	CheckItems  *[]BaselineCheckItem `json:"checkItems,omitempty"`
}

// ScanOptions configures startScan. Zero values take the defaults
// (scanTypes sql+xss, depth 1).
type ScanOptions struct {
	ScanTypes []VulnType `json:"scanTypes,omitempty"`
	Depth     int        `json:"depth,omitempty"`
}
