package whois_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/gogentic/chatmodel"
	"github.com/effective-security/gogentic/pkg/llmutils"
	"github.com/effective-security/whoistools/pkg/whoisapi"
	"github.com/effective-security/whoistools/tools/whois"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullResponse = `{
	"domain": "example.com",
	"whois_server": "whois.verisign-grs.com",
	"raw_data": "Domain Name: EXAMPLE.COM\nRegistry Domain ID: 2336799_DOMAIN_COM-VRSN\nRegistrar WHOIS Server: whois.verisign-grs.com\nUpdated Date: 2024-08-14T07:01:31Z\nCreation Date: 1995-08-14T04:00:00Z\nRegistry Expiry Date: 2025-08-13T04:00:00Z",
	"parsed_data": {
		"registrar": "RESERVED-Internet Assigned Numbers Authority",
		"creation_date": "1995-08-14T04:00:00Z",
		"expiration_date": "2025-08-13T04:00:00Z",
		"updated_date": "2024-08-14T07:01:31Z",
		"name_servers": ["a.iana-servers.net", "b.iana-servers.net"],
		"status": ["clientDeleteProhibited", "clientTransferProhibited"],
		"registrant_name": "Internet Assigned Numbers Authority",
		"registrant_email": "reserved@iana.org",
		"admin_email": "admin@iana.org",
		"tech_email": "tech@iana.org",
		"created_ago": 10800,
		"updated_ago": 380,
		"expires_in": 350
	},
	"cached": false,
	"query_time_ms": 42
}`

func newTestTool(t *testing.T, handler http.HandlerFunc) *whois.Tool {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := whoisapi.NewClient(&whoisapi.Config{BaseURL: server.URL}).
		WithHTTPClient(server.Client())

	tool, err := whois.New(nil)
	require.NoError(t, err)
	return tool.WithClient(client)
}

func Test_Tool(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/whois/example.com", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("fresh"))
		_, _ = w.Write([]byte(fullResponse))
	})

	assert.Equal(t, whois.ToolName, tool.Name())
	assert.Contains(t, tool.Description(), "WHOIS information")

	params := llmutils.ToJSONIndent(tool.Parameters())
	expParams := `{
	"properties": {
		"Domain": {
			"type": "string",
			"title": "Domain",
			"description": "The domain name to look up."
		},
		"Fresh": {
			"type": "boolean",
			"title": "Fresh",
			"description": "Bypass the service cache and query the registry directly."
		}
	},
	"type": "object",
	"required": [
		"Domain"
	]
}`
	assert.Equal(t, expParams, params)

	ctx := context.Background()

	_, err := tool.Call(ctx, "plain string")
	assert.True(t, errors.Is(err, chatmodel.ErrFailedUnmarshalInput))
	assert.EqualError(t, err, "failed to unmarshal input: check the schema and try again")

	input := &whois.LookupRequest{
		Domain: " Example.COM. ",
	}
	res, err := tool.Run(ctx, input)
	require.NoError(t, err)

	exp := `WHOIS Information for example.com:

Domain: example.com
WHOIS Server: whois.verisign-grs.com
Cached: false
Query Time: 42ms

Parsed WHOIS Data:
  Registrar: RESERVED-Internet Assigned Numbers Authority
  Created: 1995-08-14T04:00:00Z
  Updated: 2024-08-14T07:01:31Z
  Expires: 2025-08-13T04:00:00Z
  Created Days Ago: 10800
  Updated Days Ago: 380
  Expires In Days: 350
  Name Servers: a.iana-servers.net, b.iana-servers.net
  Status: clientDeleteProhibited, clientTransferProhibited
  Registrant Name: Internet Assigned Numbers Authority
  Registrant Email: reserved@iana.org
  Admin Email: admin@iana.org
  Tech Email: tech@iana.org

Raw WHOIS Data Available: Yes (229 characters)
First few lines of raw data:
  Domain Name: EXAMPLE.COM
  Registry Domain ID: 2336799_DOMAIN_COM-VRSN
  Registrar WHOIS Server: whois.verisign-grs.com
  Updated Date: 2024-08-14T07:01:31Z
  Creation Date: 1995-08-14T04:00:00Z

--- Full API Response ---
` + llmutils.ToJSONIndent(res.Response)
	assert.Equal(t, exp, res.String())
	assert.Equal(t, res.String(), res.GetContent())

	out, err := tool.Call(ctx, llmutils.ToJSON(input))
	require.NoError(t, err)
	assert.Equal(t, res.String(), out)
}

func Test_Tool_Fresh(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/whois/example.com", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("fresh"))
		_, _ = w.Write([]byte(`{"domain": "example.com", "cached": false, "query_time_ms": 7}`))
	})

	res, err := tool.Run(context.Background(), &whois.LookupRequest{Domain: "example.com", Fresh: true})
	require.NoError(t, err)
	assert.False(t, res.Response.Cached)
}

func Test_Tool_NoData(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"domain": "example.com", "cached": false, "query_time_ms": 5}`))
	})

	res, err := tool.Run(context.Background(), &whois.LookupRequest{Domain: "example.com"})
	require.NoError(t, err)

	out := res.String()
	assert.Contains(t, out, "Parsed Data: Not available or could not be parsed")
	assert.Contains(t, out, "Raw WHOIS Data Available: No")
	assert.Contains(t, out, "WHOIS Server: Unknown")
}

func Test_Tool_PartialParsedData(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"domain": "example.com",
			"raw_data": "Domain Name: EXAMPLE.COM",
			"parsed_data": {"registrar": "Example Registrar"},
			"cached": false,
			"query_time_ms": 5
		}`))
	})

	res, err := tool.Run(context.Background(), &whois.LookupRequest{Domain: "example.com"})
	require.NoError(t, err)

	out := res.String()
	assert.Contains(t, out, "  Registrar: Example Registrar\n")
	assert.Contains(t, out, "  Created: Not available\n")
	assert.Contains(t, out, "  Expires In Days: Not available\n")
	assert.Contains(t, out, "  Name Servers: Not available\n")
	assert.Contains(t, out, "  Status: Not available\n")
	assert.Contains(t, out, "  Tech Email: Not available\n")
}

func Test_Tool_Errors(t *testing.T) {
	ctx := context.Background()

	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream timed out", http.StatusBadGateway)
	})

	out, err := tool.Call(ctx, `{"Domain": "example.com"}`)
	require.NoError(t, err)
	assert.Equal(t, "Error: Failed to get WHOIS data for example.com (Status: 502)", out)

	_, err = tool.Run(ctx, &whois.LookupRequest{Domain: "  "})
	assert.EqualError(t, err, "invalid request: empty domain")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	tool2, err := whois.New(&whoisapi.Config{BaseURL: server.URL})
	require.NoError(t, err)

	out, err = tool2.Call(ctx, `{"Domain": "example.com"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "Error: failed to call WHOIS API")
}

func Test_Tool_Real(t *testing.T) {
	// uncomment to run Real Tests
	t.Skip("skipping real test")

	if os.Getenv(whoisapi.EnvBaseURL) == "" {
		t.Skipf("%s is not set", whoisapi.EnvBaseURL)
	}

	tool, err := whois.New(nil)
	require.NoError(t, err)

	out, err := tool.Call(context.Background(), `{"Domain": "example.com"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "WHOIS Information for example.com")
}
