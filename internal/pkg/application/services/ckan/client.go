package ckan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("catalog-harvester/ckan")

const (
	DefaultBaseURL   string = "https://www.donneesquebec.ca/recherche/api/3/action/"
	DefaultUserAgent string = "catalog-harvester/1.0"
)

// Client lists and retrieves organizations and datasets from a CKAN action API.
//
// None of the operations fail: transport errors, unexpected status codes and
// undecodable payloads are logged and reported as an empty list or a nil record,
// so that a single unreachable record can not abort a harvest.
//
//go:generate moq -rm -out client_mock.go . Client
type Client interface {
	ListOrganizations(ctx context.Context) []string
	GetOrganization(ctx context.Context, id string) *Organization
	ListDatasets(ctx context.Context) []string
	GetDataset(ctx context.Context, id string) *Dataset
}

func NewClient(baseURL, userAgent string) Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: userAgent,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type client struct {
	baseURL    string
	userAgent  string
	httpClient http.Client
}

func (c *client) ListOrganizations(ctx context.Context) []string {
	names := []string{}

	if err := c.action(ctx, "organization_list", nil, &names); err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Msg("failed to list organizations")
		return []string{}
	}

	return names
}

func (c *client) GetOrganization(ctx context.Context, id string) *Organization {
	org := &Organization{}

	if err := c.action(ctx, "organization_show", url.Values{"id": {id}}, org); err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Msgf("failed to retrieve organization %s", id)
		return nil
	}

	return org
}

func (c *client) ListDatasets(ctx context.Context) []string {
	names := []string{}

	if err := c.action(ctx, "package_list", nil, &names); err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Msg("failed to list datasets")
		return []string{}
	}

	return names
}

func (c *client) GetDataset(ctx context.Context, id string) *Dataset {
	dataset := &Dataset{}

	if err := c.action(ctx, "package_show", url.Values{"id": {id}}, dataset); err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Msgf("failed to retrieve dataset %s", id)
		return nil
	}

	return dataset
}

func (c *client) action(ctx context.Context, action string, params url.Values, result any) error {
	var err error
	ctx, span := tracer.Start(ctx, "ckan-"+strings.ReplaceAll(action, "_", "-"))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	requestURL := c.baseURL + "/" + action
	if len(params) > 0 {
		requestURL = requestURL + "?" + params.Encode()
		span.SetAttributes(attribute.String("ckan.id", params.Get("id")))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		err = fmt.Errorf("failed to create request: %w", err)
		return err
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to send request: %w", err)
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return err
	}

	if resp.StatusCode != http.StatusOK {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msg("request failed")

		err = fmt.Errorf("%s returned status code %d", action, resp.StatusCode)
		return err
	}

	envelope := response[json.RawMessage]{}
	if err = json.Unmarshal(respBody, &envelope); err != nil {
		err = fmt.Errorf("failed to unmarshal response: %w", err)
		return err
	}

	if !envelope.Success {
		reason := "unknown error"
		if envelope.Error != nil {
			reason = envelope.Error.Message
		}
		err = fmt.Errorf("%s was not successful: %s", action, reason)
		return err
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		err = fmt.Errorf("%s returned an empty result", action)
		return err
	}

	if err = json.Unmarshal(envelope.Result, result); err != nil {
		err = fmt.Errorf("failed to unmarshal %s result: %w", action, err)
		return err
	}

	return nil
}
