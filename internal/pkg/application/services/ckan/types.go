package ckan

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type Organization struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          Text   `json:"url"`
	PackageCount int    `json:"package_count"`
	Created      string `json:"created"`
}

// OrganizationRef is the organization summary nested inside a dataset.
type OrganizationRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

type Group struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

type Tag struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type Extra struct {
	Key   string `json:"key"`
	Value Text   `json:"value"`
}

type Resource struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Format       string `json:"format"`
	ResourceType Text   `json:"resource_type"`
	URL          string `json:"url"`
	Size         Size   `json:"size"`
	Description  Text   `json:"description"`
	Methodology  Text   `json:"methodology"`
	Context      Text   `json:"context"`
	Attributes   Text   `json:"attributes"`
	Created      string `json:"created"`
	LastModified string `json:"last_modified"`
}

type Dataset struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Title            string           `json:"title"`
	Notes            string           `json:"notes"`
	URL              Text             `json:"url"`
	Private          bool             `json:"private"`
	MetadataCreated  string           `json:"metadata_created"`
	MetadataModified string           `json:"metadata_modified"`
	Organization     *OrganizationRef `json:"organization"`
	Groups           []Group          `json:"groups"`
	Tags             []Tag            `json:"tags"`
	Extras           []Extra          `json:"extras"`
	Resources        []Resource       `json:"resources"`
}

// Text accepts any JSON value. Strings are kept as is, null becomes the empty
// string and every other value is kept as its compact JSON text.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	compacted := &bytes.Buffer{}
	if err := json.Compact(compacted, data); err != nil {
		*t = Text(data)
		return nil
	}

	*t = Text(compacted.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Size is a byte size that the remote reports as a number, a numeric string or null.
// Anything unparseable is treated as unknown.
type Size struct {
	Value int64
	Valid bool
}

func (s *Size) UnmarshalJSON(data []byte) error {
	*s = Size{}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		*s = Size{Value: int64(v), Valid: true}
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			*s = Size{Value: int64(n), Valid: true}
		}
	}

	return nil
}

func (s Size) Int64() *int64 {
	if !s.Valid {
		return nil
	}
	v := s.Value
	return &v
}

type response[T any] struct {
	Success bool `json:"success"`
	Result  T    `json:"result"`
	Error   *struct {
		Message string `json:"message"`
		Type    string `json:"__type"`
	} `json:"error,omitempty"`
}
