// Package whois provides the WhoisLookup tool,
// which returns a parsed WHOIS summary for a domain
// together with the full WHOIS API response.
package whois

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/gogentic/chatmodel"
	"github.com/effective-security/gogentic/pkg/llmutils"
	"github.com/effective-security/gogentic/pkg/schema"
	"github.com/effective-security/gogentic/tools"
	"github.com/effective-security/whoistools/pkg/whoisapi"
	"github.com/invopop/jsonschema"
)

const ToolName = "WhoisLookup"

const notAvailable = "Not available"

// LookupRequest represents the tool input.
type LookupRequest struct {
	Domain string `json:"Domain" yaml:"Domain" jsonschema:"title=Domain,description=The domain name to look up."`
	Fresh  bool   `json:"Fresh,omitempty" yaml:"Fresh,omitempty" jsonschema:"title=Fresh,description=Bypass the service cache and query the registry directly."`
}

func (r LookupRequest) JSONSchemaExtend(sc *jsonschema.Schema) {
	sc.Title = "WHOIS Lookup Request"
}

// LookupResult represents the tool output.
type LookupResult struct {
	Domain   string             `json:"domain" yaml:"domain"`
	Response *whoisapi.Response `json:"response" yaml:"response"`
}

// GetContent gets the content of the result for the chat history.
func (r *LookupResult) GetContent() string {
	return r.String()
}

// Tool is a tool that provides WHOIS lookups with parsed registration details.
type Tool struct {
	name        string
	description string
	funcParams  any

	client *whoisapi.Client
}

var _ tools.Tool[LookupRequest, LookupResult] = (*Tool)(nil)

// New returns the WhoisLookup tool.
// A nil config uses the environment-based defaults.
func New(cfg *whoisapi.Config) (*Tool, error) {
	sc, err := schema.New(reflect.TypeOf(LookupRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	t := &Tool{
		name:        ToolName,
		description: "Get WHOIS information for a domain, including registrar, registration dates, name servers, status and contacts.",
		funcParams:  sc.Parameters,
		client:      whoisapi.NewClient(cfg),
	}
	return t, nil
}

// WithClient sets the WHOIS API client.
func (t *Tool) WithClient(client *whoisapi.Client) *Tool {
	t.client = client
	return t
}

func (t *Tool) Name() string {
	return t.name
}

func (t *Tool) Description() string {
	return t.description
}

func (t *Tool) Parameters() any {
	return t.funcParams
}

func (t *Tool) Run(ctx context.Context, req *LookupRequest) (*LookupResult, error) {
	domain := whoisapi.NormalizeDomain(req.Domain)
	if domain == "" {
		return nil, errors.New("invalid request: empty domain")
	}

	res, err := t.client.LookupFresh(ctx, domain, req.Fresh)
	if err != nil {
		return nil, err
	}

	return &LookupResult{
		Domain:   domain,
		Response: res,
	}, nil
}

// Call executes the lookup and returns the formatted text.
// Lookup failures degrade to an "Error: ..." text result,
// so that the model sees what went wrong and can react.
func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var req LookupRequest
	if err := json.Unmarshal(llmutils.CleanJSON([]byte(input)), &req); err != nil {
		return "", errors.WithStack(chatmodel.ErrFailedUnmarshalInput)
	}
	res, err := t.Run(ctx, &req)
	if err != nil {
		return errorText(err), nil
	}
	return res.String(), nil
}

// errorText renders a lookup failure as a tool result.
func errorText(err error) string {
	var statusErr *whoisapi.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error: Failed to get WHOIS data for %s (Status: %d)", statusErr.Domain, statusErr.StatusCode)
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

func (r *LookupResult) String() string {
	res := r.Response

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "WHOIS Information for %s:\n\n", r.Domain)
	fmt.Fprintf(&buf, "Domain: %s\n", stringOr(res.Domain, "Unknown"))
	fmt.Fprintf(&buf, "WHOIS Server: %s\n", stringOr(res.WhoisServer, "Unknown"))
	fmt.Fprintf(&buf, "Cached: %v\n", res.Cached)
	fmt.Fprintf(&buf, "Query Time: %dms\n\n", res.QueryTimeMs)

	if pd := res.ParsedData; pd != nil {
		buf.WriteString("Parsed WHOIS Data:\n")
		fmt.Fprintf(&buf, "  Registrar: %s\n", strPtrOr(pd.Registrar, notAvailable))
		fmt.Fprintf(&buf, "  Created: %s\n", strPtrOr(pd.CreationDate, notAvailable))
		fmt.Fprintf(&buf, "  Updated: %s\n", strPtrOr(pd.UpdatedDate, notAvailable))
		fmt.Fprintf(&buf, "  Expires: %s\n", strPtrOr(pd.ExpirationDate, notAvailable))
		fmt.Fprintf(&buf, "  Created Days Ago: %s\n", intPtrOr(pd.CreatedAgo, notAvailable))
		fmt.Fprintf(&buf, "  Updated Days Ago: %s\n", intPtrOr(pd.UpdatedAgo, notAvailable))
		fmt.Fprintf(&buf, "  Expires In Days: %s\n", intPtrOr(pd.ExpiresIn, notAvailable))
		fmt.Fprintf(&buf, "  Name Servers: %s\n", listOr(pd.NameServers, notAvailable))
		fmt.Fprintf(&buf, "  Status: %s\n", listOr(pd.Status, notAvailable))
		fmt.Fprintf(&buf, "  Registrant Name: %s\n", strPtrOr(pd.RegistrantName, notAvailable))
		fmt.Fprintf(&buf, "  Registrant Email: %s\n", strPtrOr(pd.RegistrantEmail, notAvailable))
		fmt.Fprintf(&buf, "  Admin Email: %s\n", strPtrOr(pd.AdminEmail, notAvailable))
		fmt.Fprintf(&buf, "  Tech Email: %s\n", strPtrOr(pd.TechEmail, notAvailable))
	} else {
		buf.WriteString("Parsed Data: Not available or could not be parsed\n")
	}

	if res.RawData != "" {
		fmt.Fprintf(&buf, "\nRaw WHOIS Data Available: Yes (%d characters)\n", len(res.RawData))
		buf.WriteString("First few lines of raw data:\n")
		for _, line := range firstLines(res.RawData, 5) {
			fmt.Fprintf(&buf, "  %s\n", line)
		}
	} else {
		buf.WriteString("\nRaw WHOIS Data Available: No\n")
	}

	fmt.Fprintf(&buf, "\n--- Full API Response ---\n%s", llmutils.ToJSONIndent(res))

	return buf.String()
}

func stringOr(val, def string) string {
	if val == "" {
		return def
	}
	return val
}

func strPtrOr(val *string, def string) string {
	if val == nil || *val == "" {
		return def
	}
	return *val
}

func intPtrOr(val *int64, def string) string {
	if val == nil {
		return def
	}
	return fmt.Sprintf("%d", *val)
}

func listOr(vals []string, def string) string {
	if len(vals) == 0 {
		return def
	}
	return strings.Join(vals, ", ")
}

func firstLines(text string, n int) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}
