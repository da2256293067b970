// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "encoding/json"

// Resource is a known, readable resource exposed by a server.
type Resource struct {
	URI         string       `json:"uri"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	MimeType    string       `json:"mimeType,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Size        *int64       `json:"size,omitempty"`
}

// ResourceReference refers to a resource by URI, used in completion
// requests to scope argument completion to a specific resource template.
type ResourceReference struct {
	Type string `json:"type"`
	URI  string `json:"uri"`
}

// NewResourceReference builds a ResourceReference for the given URI.
func NewResourceReference(uri string) ResourceReference {
	return ResourceReference{Type: "ref/resource", URI: uri}
}

// ResourceTemplate is an RFC 6570 URI template describing a family of
// resources a server can read from.
type ResourceTemplate struct {
	URITemplate string       `json:"uriTemplate"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	MimeType    string       `json:"mimeType,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

// ListResourcesRequest asks a server for its available resources.
type ListResourcesRequest struct {
	Cursor Cursor
	Meta   RequestMeta
}

func (ListResourcesRequest) Method() string { return MethodResourcesList }

func (r ListResourcesRequest) Params() (json.RawMessage, error) {
	return encodeParams(paginatedFields{Cursor: r.Cursor}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *ListResourcesRequest) UnmarshalParams(data json.RawMessage) error {
	var fields paginatedFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Cursor = fields.Cursor
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *ListResourcesRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

// ListResourcesResult answers a ListResourcesRequest.
type ListResourcesResult struct {
	Resources  []Resource `json:"resources"`
	NextCursor Cursor     `json:"nextCursor,omitempty"`
	Metadata   Meta       `json:"-"`
}

func (r ListResourcesResult) Result() (json.RawMessage, error) {
	return encodeResult(listResourcesFields{Resources: r.Resources, NextCursor: r.NextCursor}, r.Metadata)
}

func (r *ListResourcesResult) UnmarshalResult(data json.RawMessage) error {
	var fields listResourcesFields
	meta, err := decodeResultMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Resources, r.NextCursor, r.Metadata = fields.Resources, fields.NextCursor, meta
	return nil
}

type listResourcesFields struct {
	Resources  []Resource `json:"resources"`
	NextCursor Cursor     `json:"nextCursor,omitempty"`
}

// ListResourceTemplatesRequest asks a server for the RFC 6570 URI
// templates it exposes, distinct from ListResourcesRequest's concrete
// resource listing.
type ListResourceTemplatesRequest struct {
	Cursor Cursor
	Meta   RequestMeta
}

func (ListResourceTemplatesRequest) Method() string { return MethodResourcesTemplatesList }

func (r ListResourceTemplatesRequest) Params() (json.RawMessage, error) {
	return encodeParams(paginatedFields{Cursor: r.Cursor}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *ListResourceTemplatesRequest) UnmarshalParams(data json.RawMessage) error {
	var fields paginatedFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Cursor = fields.Cursor
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *ListResourceTemplatesRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

// ListResourceTemplatesResult answers a ListResourceTemplatesRequest.
type ListResourceTemplatesResult struct {
	ResourceTemplates []ResourceTemplate `json:"resourceTemplates"`
	NextCursor        Cursor             `json:"nextCursor,omitempty"`
	Metadata          Meta               `json:"-"`
}

func (r ListResourceTemplatesResult) Result() (json.RawMessage, error) {
	return encodeResult(listResourceTemplatesFields{ResourceTemplates: r.ResourceTemplates, NextCursor: r.NextCursor}, r.Metadata)
}

func (r *ListResourceTemplatesResult) UnmarshalResult(data json.RawMessage) error {
	var fields listResourceTemplatesFields
	meta, err := decodeResultMeta(data, &fields)
	if err != nil {
		return err
	}
	r.ResourceTemplates, r.NextCursor, r.Metadata = fields.ResourceTemplates, fields.NextCursor, meta
	return nil
}

type listResourceTemplatesFields struct {
	ResourceTemplates []ResourceTemplate `json:"resourceTemplates"`
	NextCursor        Cursor             `json:"nextCursor,omitempty"`
}

// ReadResourceRequest asks a server to read a resource at a given URI.
type ReadResourceRequest struct {
	URI  string
	Meta RequestMeta
}

func (ReadResourceRequest) Method() string { return MethodResourcesRead }

func (r ReadResourceRequest) Params() (json.RawMessage, error) {
	return encodeParams(uriFields{URI: r.URI}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *ReadResourceRequest) UnmarshalParams(data json.RawMessage) error {
	var fields uriFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	r.URI = fields.URI
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *ReadResourceRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

type uriFields struct {
	URI string `json:"uri"`
}

// ReadResourceResult contains the content of a resource, as one or more
// text or binary parts.
type ReadResourceResult struct {
	Contents []json.RawMessage `json:"contents"`
	Metadata Meta               `json:"-"`
}

func (r ReadResourceResult) Result() (json.RawMessage, error) {
	return encodeResult(readResourceFields{Contents: r.Contents}, r.Metadata)
}

func (r *ReadResourceResult) UnmarshalResult(data json.RawMessage) error {
	var fields readResourceFields
	meta, err := decodeResultMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Contents, r.Metadata = fields.Contents, meta
	return nil
}

type readResourceFields struct {
	Contents []json.RawMessage `json:"contents"`
}

// AsText decodes the i-th content entry as TextResourceContents.
func (r ReadResourceResult) AsText(i int) (TextResourceContents, error) {
	var t TextResourceContents
	err := json.Unmarshal(r.Contents[i], &t)
	return t, err
}

// AsBlob decodes the i-th content entry as BlobResourceContents.
func (r ReadResourceResult) AsBlob(i int) (BlobResourceContents, error) {
	var b BlobResourceContents
	err := json.Unmarshal(r.Contents[i], &b)
	return b, err
}

// ResourceListChangedNotification tells the client the server's resource
// list has changed.
type ResourceListChangedNotification struct {
	Metadata Meta
}

func (ResourceListChangedNotification) Method() string { return MethodResourcesListChange }

func (n ResourceListChangedNotification) Params() (json.RawMessage, error) {
	return encodeParams(nil, nil, n.Metadata)
}

func (n *ResourceListChangedNotification) UnmarshalParams(data json.RawMessage) error {
	_, meta, err := decodeParamsMeta(data, nil)
	if err != nil {
		return err
	}
	n.Metadata = meta
	return nil
}

// SubscribeRequest asks a server to notify the client when a resource
// changes.
type SubscribeRequest struct {
	URI  string
	Meta RequestMeta
}

func (SubscribeRequest) Method() string { return MethodResourcesSubscribe }

func (r SubscribeRequest) Params() (json.RawMessage, error) {
	return encodeParams(uriFields{URI: r.URI}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *SubscribeRequest) UnmarshalParams(data json.RawMessage) error {
	var fields uriFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	r.URI = fields.URI
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *SubscribeRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

// UnsubscribeRequest cancels a previous SubscribeRequest.
type UnsubscribeRequest struct {
	URI  string
	Meta RequestMeta
}

func (UnsubscribeRequest) Method() string { return MethodResourcesUnsub }

func (r UnsubscribeRequest) Params() (json.RawMessage, error) {
	return encodeParams(uriFields{URI: r.URI}, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *UnsubscribeRequest) UnmarshalParams(data json.RawMessage) error {
	var fields uriFields
	token, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	r.URI = fields.URI
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *UnsubscribeRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

// ResourceUpdatedNotification reports that a subscribed resource changed.
type ResourceUpdatedNotification struct {
	URI      string
	Metadata Meta
}

func (ResourceUpdatedNotification) Method() string { return MethodResourceUpdated }

func (n ResourceUpdatedNotification) Params() (json.RawMessage, error) {
	return encodeParams(uriFields{URI: n.URI}, nil, n.Metadata)
}

func (n *ResourceUpdatedNotification) UnmarshalParams(data json.RawMessage) error {
	var fields uriFields
	_, meta, err := decodeParamsMeta(data, &fields)
	if err != nil {
		return err
	}
	n.URI, n.Metadata = fields.URI, meta
	return nil
}
