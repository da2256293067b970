// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "encoding/json"

// Root is a filesystem root the client exposes to a server. The URI must
// use the file:// scheme per the current protocol version.
type Root struct {
	URI  string `json:"uri"`
	Name string `json:"name,omitempty"`
}

// ListRootsRequest is sent by a server to ask the client which filesystem
// roots it exposes. Only valid if the client declared the roots
// capability during initialization.
type ListRootsRequest struct {
	Meta RequestMeta
}

func (ListRootsRequest) Method() string { return MethodRootsList }

func (r ListRootsRequest) Params() (json.RawMessage, error) {
	return encodeParams(nil, r.Meta.ProgressToken, r.Meta.Metadata)
}

func (r *ListRootsRequest) UnmarshalParams(data json.RawMessage) error {
	token, meta, err := decodeParamsMeta(data, nil)
	if err != nil {
		return err
	}
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
	return nil
}

func (r *ListRootsRequest) SetMeta(token ProgressToken, meta Meta) {
	r.Meta = RequestMeta{ProgressToken: token, Metadata: meta}
}

// ListRootsResult answers a ListRootsRequest with the client's declared
// roots.
type ListRootsResult struct {
	Roots    []Root `json:"roots"`
	Metadata Meta   `json:"-"`
}

func (r ListRootsResult) Result() (json.RawMessage, error) {
	return encodeResult(listRootsFields{Roots: r.Roots}, r.Metadata)
}

func (r *ListRootsResult) UnmarshalResult(data json.RawMessage) error {
	var fields listRootsFields
	meta, err := decodeResultMeta(data, &fields)
	if err != nil {
		return err
	}
	r.Roots, r.Metadata = fields.Roots, meta
	return nil
}

type listRootsFields struct {
	Roots []Root `json:"roots"`
}

// RootsListChangedNotification tells the server that the client's set of
// declared roots has changed and it should call roots/list again.
type RootsListChangedNotification struct {
	Metadata Meta
}

func (RootsListChangedNotification) Method() string { return MethodRootsListChanged }

func (n RootsListChangedNotification) Params() (json.RawMessage, error) {
	return encodeParams(nil, nil, n.Metadata)
}

func (n *RootsListChangedNotification) UnmarshalParams(data json.RawMessage) error {
	_, meta, err := decodeParamsMeta(data, nil)
	if err != nil {
		return err
	}
	n.Metadata = meta
	return nil
}
