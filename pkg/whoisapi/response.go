package whoisapi

// Response is the WHOIS API lookup response.
// Every field other than Domain is optional; registrars differ wildly in what
// they publish, and the service omits what it could not parse.
type Response struct {
	Domain      string      `json:"domain" yaml:"domain"`
	WhoisServer string      `json:"whois_server,omitempty" yaml:"whois_server,omitempty"`
	RawData     string      `json:"raw_data,omitempty" yaml:"raw_data,omitempty"`
	ParsedData  *ParsedData `json:"parsed_data,omitempty" yaml:"parsed_data,omitempty"`
	Cached      bool        `json:"cached" yaml:"cached"`
	QueryTimeMs uint64      `json:"query_time_ms" yaml:"query_time_ms"`
	// ParsingAnalysis is populated only by the debug endpoint.
	ParsingAnalysis []string `json:"parsing_analysis,omitempty" yaml:"parsing_analysis,omitempty"`
}

// ParsedData holds the structured fields the service extracted from the raw
// WHOIS record, with calculated day offsets relative to the query time.
type ParsedData struct {
	Registrar       *string  `json:"registrar,omitempty" yaml:"registrar,omitempty"`
	CreationDate    *string  `json:"creation_date,omitempty" yaml:"creation_date,omitempty"`
	ExpirationDate  *string  `json:"expiration_date,omitempty" yaml:"expiration_date,omitempty"`
	UpdatedDate     *string  `json:"updated_date,omitempty" yaml:"updated_date,omitempty"`
	NameServers     []string `json:"name_servers,omitempty" yaml:"name_servers,omitempty"`
	Status          []string `json:"status,omitempty" yaml:"status,omitempty"`
	RegistrantName  *string  `json:"registrant_name,omitempty" yaml:"registrant_name,omitempty"`
	RegistrantEmail *string  `json:"registrant_email,omitempty" yaml:"registrant_email,omitempty"`
	AdminEmail      *string  `json:"admin_email,omitempty" yaml:"admin_email,omitempty"`
	TechEmail       *string  `json:"tech_email,omitempty" yaml:"tech_email,omitempty"`
	CreatedAgo      *int64   `json:"created_ago,omitempty" yaml:"created_ago,omitempty"`
	UpdatedAgo      *int64   `json:"updated_ago,omitempty" yaml:"updated_ago,omitempty"`
	ExpiresIn       *int64   `json:"expires_in,omitempty" yaml:"expires_in,omitempty"`
}

// Health is the WHOIS API health response.
type Health struct {
	Status        string `json:"status" yaml:"status"`
	Version       string `json:"version" yaml:"version"`
	UptimeSeconds uint64 `json:"uptime_seconds" yaml:"uptime_seconds"`
}
