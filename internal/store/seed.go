package store

import (
	"time"

	"github.com/hmartins/secconsole/internal/model"
)

// ts parses a fixture timestamp. Fixtures are static, so a parse failure is
// a programming error.
func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// seed loads the demo dataset: five assets, the five vulnerability classes
// the scanner knows about, a scan in every lifecycle state, three baselines
// with their check items, two completed checks and two reports.
func (s *Store) seed() {
	s.assets = []model.Asset{
		{
			ID: 1, Name: "Corporate Website", Type: model.AssetWeb,
			Domain: "www.example.com", IP: "192.168.1.100",
			Ports: []string{"80", "443"}, Technology: "Vue, Node.js",
			Owner: "Alice Zhang", Contact: "alice@example.com",
			Status: model.AssetRunning, LastScan: timePtr(ts("2024-03-15 10:30:00")),
			Notes:     "Primary public website",
			CreatedAt: ts("2024-01-10 08:00:00"), UpdatedAt: ts("2024-03-15 10:30:00"),
		},
		{
			ID: 2, Name: "User Management System", Type: model.AssetWeb,
			Domain: "user.example.com", IP: "192.168.1.101",
			Ports: []string{"80", "443", "8080"}, Technology: "React, Spring Boot",
			Owner: "Ben Li", Contact: "ben@example.com",
			Status: model.AssetRunning, LastScan: timePtr(ts("2024-03-10 14:20:00")),
			Notes:     "Internal user administration",
			CreatedAt: ts("2024-01-15 09:00:00"), UpdatedAt: ts("2024-03-10 14:20:00"),
		},
		{
			ID: 3, Name: "Mobile App", Type: model.AssetMobile,
			Domain: "api.example.com", IP: "192.168.1.102",
			Ports: []string{"443"}, Technology: "Flutter, Node.js",
			Owner: "Carol Wang", Contact: "carol@example.com",
			Status: model.AssetMaintenance, LastScan: timePtr(ts("2024-02-28 09:15:00")),
			Notes:     "Company mobile application",
			CreatedAt: ts("2024-02-01 10:00:00"), UpdatedAt: ts("2024-02-28 09:15:00"),
		},
		{
			ID: 4, Name: "Payment API", Type: model.AssetAPI,
			Domain: "pay.example.com", IP: "192.168.1.103",
			Ports: []string{"443", "8443"}, Technology: "Spring Boot, MySQL",
			Owner: "Dave Zhao", Contact: "dave@example.com",
			Status: model.AssetRunning, LastScan: timePtr(ts("2024-03-01 16:45:00")),
			Notes:     "Payment processing services",
			CreatedAt: ts("2024-01-20 11:00:00"), UpdatedAt: ts("2024-03-01 16:45:00"),
		},
		{
			ID: 5, Name: "Mini Program Shop", Type: model.AssetMiniapp,
			Domain: "miniapp.example.com", IP: "192.168.1.104",
			Ports: []string{"80", "443"}, Technology: "UniApp, Express",
			Owner: "Eve Qian", Contact: "eve@example.com",
			Status: model.AssetStopped, LastScan: timePtr(ts("2024-02-25 11:30:00")),
			Notes:     "WeChat mini program storefront",
			CreatedAt: ts("2024-02-10 13:00:00"), UpdatedAt: ts("2024-02-25 11:30:00"),
		},
	}

	s.vulns = []model.Vulnerability{
		{
			ID: "CVE-2024-1001", Name: "SQL Injection", Type: model.VulnSQL, Risk: model.RiskHigh,
			Description: "User input reaches SQL statements without proper filtering, letting an attacker manipulate the database through crafted queries.",
			Affects:     "Web applications building SQL from raw input, especially those not using parameterized queries.",
			Solution:    "Use parameterized queries or prepared statements, validate all input strictly and run database accounts with least privilege.",
			References: []string{
				"https://owasp.org/www-community/attacks/SQL_Injection",
				"https://portswigger.net/web-security/sql-injection",
			},
			UpdateTime: ts("2024-03-01 09:30:00"),
		},
		{
			ID: "CVE-2024-1002", Name: "Cross-Site Scripting", Type: model.VulnXSS, Risk: model.RiskMedium,
			Description: "Malicious script can be injected into pages and executes in the browser of every visitor.",
			Affects:     "Web applications that echo unfiltered user input, particularly those accepting HTML content.",
			Solution:    "HTML-encode all user input, deploy a content security policy and validate input on the way in as well as out.",
			References: []string{
				"https://owasp.org/www-community/attacks/xss/",
				"https://portswigger.net/web-security/cross-site-scripting",
			},
			UpdateTime: ts("2024-03-05 14:20:00"),
		},
		{
			ID: "CVE-2024-1003", Name: "Command Injection", Type: model.VulnCmd, Risk: model.RiskHigh,
			Description: "Operating system commands can be executed through the application, potentially handing over the whole host.",
			Affects:     "Applications passing user input straight into shell commands.",
			Solution:    "Avoid shelling out; when unavoidable, validate and filter input strictly and prefer safe APIs over command execution.",
			References: []string{
				"https://owasp.org/www-community/attacks/Command_Injection",
				"https://cheatsheetseries.owasp.org/cheatsheets/OS_Command_Injection_Defense_Cheat_Sheet.html",
			},
			UpdateTime: ts("2024-02-28 11:45:00"),
		},
		{
			ID: "CVE-2024-1004", Name: "File Inclusion", Type: model.VulnFile, Risk: model.RiskMedium,
			Description: "Local or remote files can be included, leading to information disclosure or code execution.",
			Affects:     "Applications that include files from dynamic paths, commonly PHP include/require call sites.",
			Solution:    "Never build file paths from user input, whitelist allowed paths and disable remote file inclusion.",
			References: []string{
				"https://owasp.org/www-project-web-security-testing-guide/latest/4-Web_Application_Security_Testing/07-Input_Validation_Testing/11.1-Testing_for_Local_File_Inclusion",
				"https://portswigger.net/web-security/file-path-traversal",
			},
			UpdateTime: ts("2024-03-10 16:30:00"),
		},
		{
			ID: "CVE-2024-1005", Name: "Unrestricted File Upload", Type: model.VulnUpload, Risk: model.RiskHigh,
			Description: "Malicious files such as web shells can be uploaded and executed on the server.",
			Affects:     "Applications exposing upload features with insufficient validation.",
			Solution:    "Validate type, size and content, rename uploads, store them outside the web root and serve them from a separate domain.",
			References: []string{
				"https://owasp.org/www-community/vulnerabilities/Unrestricted_File_Upload",
				"https://cheatsheetseries.owasp.org/cheatsheets/File_Upload_Cheat_Sheet.html",
			},
			UpdateTime: ts("2024-02-15 10:15:00"),
		},
	}

	s.scans = []model.ScanTask{
		{
			ID: 1, Target: "https://www.example.com",
			ScanTypes: []model.VulnType{model.VulnSQL, model.VulnXSS, model.VulnCmd},
			Depth:     2, Status: model.ScanCompleted,
			StartTime: timePtr(ts("2024-03-15 10:00:00")), EndTime: timePtr(ts("2024-03-15 10:30:00")),
			AssetID: 1, High: 2, Medium: 3, Low: 5, CreatedBy: mockUserID,
		},
		{
			ID: 2, Target: "https://user.example.com",
			ScanTypes: []model.VulnType{model.VulnSQL, model.VulnXSS},
			Depth:     1, Status: model.ScanRunning,
			StartTime: timePtr(ts("2024-03-16 14:00:00")),
			AssetID:   2, High: 1, Medium: 1, Low: 2, CreatedBy: mockUserID,
		},
		{
			ID: 3, Target: "https://api.example.com",
			ScanTypes: []model.VulnType{model.VulnSQL, model.VulnCmd},
			Depth:     3, Status: model.ScanPending,
			AssetID: 3, CreatedBy: mockUserID,
		},
		{
			ID: 4, Target: "https://pay.example.com",
			ScanTypes: []model.VulnType{model.VulnSQL, model.VulnXSS, model.VulnCmd, model.VulnFile, model.VulnUpload},
			Depth:     3, Status: model.ScanFailed,
			StartTime: timePtr(ts("2024-03-10 09:00:00")), EndTime: timePtr(ts("2024-03-10 09:05:00")),
			AssetID: 4, CreatedBy: mockUserID,
		},
	}

	s.results = map[int64][]model.ScanResult{
		1: {
			{
				ID: 1, ScanTaskID: 1, VulnerabilityID: "CVE-2024-1001",
				URL: "https://www.example.com/search?q=test", Parameter: "q",
				Risk:          model.RiskHigh,
				Description:   "SQL injection detected; arbitrary SQL commands may be executable.",
				Proof:         "Submitting ' OR 1=1-- returned every record in the table.",
				FixSuggestion: "Replace string-built SQL with parameterized queries and validate user input strictly.",
			},
			{
				ID: 2, ScanTaskID: 1, VulnerabilityID: "CVE-2024-1002",
				URL: "https://www.example.com/feedback", Parameter: "comment",
				Risk:          model.RiskMedium,
				Description:   "XSS detected; malicious script can be injected.",
				Proof:         "Submitting <script>alert('XSS')</script> executed and raised an alert box.",
				FixSuggestion: "HTML-encode user input and restrict script execution with a content security policy.",
			},
		},
	}

	s.baselines = []model.SecurityBaseline{
		{
			ID: 1, Name: "Web Application Baseline", Category: "web",
			Description: "Basic security checks for web applications",
			CheckItems: []model.BaselineCheckItem{
				{ID: "web-001", Name: "HTTPS configuration", Description: "Verify HTTPS is configured correctly"},
				{ID: "web-002", Name: "Cookie security", Description: "Verify cookies set the Secure and HttpOnly attributes"},
				{ID: "web-003", Name: "CSP policy", Description: "Verify a content security policy is configured"},
				{ID: "web-004", Name: "X-XSS-Protection", Description: "Verify XSS protection is enabled"},
				{ID: "web-005", Name: "X-Frame-Options", Description: "Verify the site cannot be embedded in an iframe"},
			},
			CreatedAt: ts("2024-01-15 10:00:00"), UpdatedAt: ts("2024-03-01 14:30:00"),
		},
		{
			ID: 2, Name: "API Baseline", Category: "api",
			Description: "Security checks for API services",
			CheckItems: []model.BaselineCheckItem{
				{ID: "api-001", Name: "API authentication", Description: "Verify the API enforces authentication"},
				{ID: "api-002", Name: "API rate limiting", Description: "Verify request rate limiting is in place"},
				{ID: "api-003", Name: "HTTPS transport", Description: "Verify the API is served over HTTPS"},
				{ID: "api-004", Name: "JWT configuration", Description: "Verify JWT tokens are configured safely"},
				{ID: "api-005", Name: "CORS configuration", Description: "Verify the CORS policy is safe"},
			},
			CreatedAt: ts("2024-01-20 11:30:00"), UpdatedAt: ts("2024-02-25 09:45:00"),
		},
		{
			ID: 3, Name: "Server Baseline", Category: "server",
			Description: "Security checks for server systems",
			CheckItems: []model.BaselineCheckItem{
				{ID: "srv-001", Name: "System updates", Description: "Verify the latest security updates are applied"},
				{ID: "srv-002", Name: "Firewall rules", Description: "Verify firewall rules are configured correctly"},
				{ID: "srv-003", Name: "Audit logging", Description: "Verify audit logging is enabled"},
				{ID: "srv-004", Name: "Account security", Description: "Verify account and password policies are safe"},
				{ID: "srv-005", Name: "Service exposure", Description: "Verify only required services are running"},
			},
			CreatedAt: ts("2024-02-10 08:45:00"), UpdatedAt: ts("2024-03-15 16:20:00"),
		},
	}

	s.checks = []model.BaselineCheck{
		{
			ID: 1, AssetID: 1, BaselineID: 1, Status: model.ScanCompleted,
			Result: []model.BaselineItemResult{
				{ItemID: "web-001", Passed: true, Details: "HTTPS configured correctly with TLS 1.3"},
				{ItemID: "web-002", Passed: false, Details: "Cookies are missing the HttpOnly attribute"},
				{ItemID: "web-003", Passed: false, Details: "No content security policy configured"},
				{ItemID: "web-004", Passed: true, Details: "X-XSS-Protection is enabled"},
				{ItemID: "web-005", Passed: true, Details: "X-Frame-Options is set to DENY"},
			},
			Score:     60,
			StartTime: timePtr(ts("2024-03-15 10:00:00")), EndTime: timePtr(ts("2024-03-15 10:10:00")),
			CreatedBy: mockUserID,
		},
		{
			ID: 2, AssetID: 4, BaselineID: 2, Status: model.ScanCompleted,
			Result: []model.BaselineItemResult{
				{ItemID: "api-001", Passed: true, Details: "API authenticates via OAuth 2.0"},
				{ItemID: "api-002", Passed: true, Details: "Rate limiting is in place"},
				{ItemID: "api-003", Passed: true, Details: "API served over HTTPS"},
				{ItemID: "api-004", Passed: false, Details: "JWT uses a weak signing key"},
				{ItemID: "api-005", Passed: true, Details: "CORS policy is configured correctly"},
			},
			Score:     80,
			StartTime: timePtr(ts("2024-03-10 14:30:00")), EndTime: timePtr(ts("2024-03-10 14:35:00")),
			CreatedBy: mockUserID,
		},
	}

	scanReportSrc, baselineReportSrc := int64(1), int64(2)
	s.reports = []model.Report{
		{
			ID: 1, Title: "www.example.com Security Scan Report", Type: model.ReportScan,
			ScanTaskID: &scanReportSrc, CreatedBy: mockUserID,
			CreatedAt: ts("2024-03-15 11:00:00"), UpdatedAt: ts("2024-03-15 11:00:00"),
		},
		{
			ID: 2, Title: "API Service Baseline Check Report", Type: model.ReportBaseline,
			BaselineCheckID: &baselineReportSrc, CreatedBy: mockUserID,
			CreatedAt: ts("2024-03-10 15:00:00"), UpdatedAt: ts("2024-03-10 15:00:00"),
		},
	}
}
