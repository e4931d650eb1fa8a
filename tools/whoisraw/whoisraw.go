// Package whoisraw provides the WhoisRawLookup tool,
// which returns the unprocessed WHOIS record for a domain,
// leaving the analysis to the model.
package whoisraw

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/gogentic/chatmodel"
	"github.com/effective-security/gogentic/pkg/llmutils"
	"github.com/effective-security/gogentic/pkg/schema"
	"github.com/effective-security/gogentic/tools"
	"github.com/effective-security/whoistools/pkg/whoisapi"
	"github.com/invopop/jsonschema"
)

const ToolName = "WhoisRawLookup"

// LookupRequest represents the tool input.
type LookupRequest struct {
	Domain string `json:"Domain" yaml:"Domain" jsonschema:"title=Domain,description=The domain name to look up."`
}

func (r LookupRequest) JSONSchemaExtend(sc *jsonschema.Schema) {
	sc.Title = "Raw WHOIS Lookup Request"
}

// LookupResult represents the tool output.
type LookupResult struct {
	Domain  string `json:"domain" yaml:"domain"`
	RawData string `json:"raw_data,omitempty" yaml:"raw_data,omitempty"`
}

// GetContent gets the content of the result for the chat history.
func (r *LookupResult) GetContent() string {
	return r.String()
}

func (r *LookupResult) String() string {
	if r.RawData == "" {
		return fmt.Sprintf("No WHOIS data available for %s. This may be due to privacy protection or server restrictions.", r.Domain)
	}
	return fmt.Sprintf("Raw WHOIS data for %s:\n\n%s", r.Domain, r.RawData)
}

// Tool is a tool that provides raw WHOIS records.
type Tool struct {
	name        string
	description string
	funcParams  any

	client *whoisapi.Client
}

var _ tools.Tool[LookupRequest, LookupResult] = (*Tool)(nil)

// New returns the WhoisRawLookup tool.
// A nil config uses the environment-based defaults.
func New(cfg *whoisapi.Config) (*Tool, error) {
	sc, err := schema.New(reflect.TypeOf(LookupRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	t := &Tool{
		name:        ToolName,
		description: "Get the raw WHOIS record for a domain to analyze.",
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

	res, err := t.client.Lookup(ctx, domain)
	if err != nil {
		return nil, err
	}

	return &LookupResult{
		Domain:  domain,
		RawData: res.RawData,
	}, nil
}

// Call executes the lookup and returns the raw record as text.
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

func errorText(err error) string {
	var statusErr *whoisapi.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error: Failed to get WHOIS data for %s", statusErr.Domain)
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
