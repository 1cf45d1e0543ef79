package api

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Response is a parsed JSON body returned by the API. The shape is opaque to
// the client: callers either decode Raw themselves, walk Body with the
// structural search, or query individual fields with Get.
type Response struct {
	raw  []byte
	body any
}

// ParseResponse decodes a JSON body into a Response.
func ParseResponse(raw []byte) (*Response, error) {
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}
	return &Response{raw: raw, body: body}, nil
}

// Raw returns the body bytes exactly as received.
func (r *Response) Raw() []byte {
	return r.raw
}

// Body returns the decoded body: map[string]any, []any, scalar, or nil.
func (r *Response) Body() any {
	return r.body
}

// Get queries the body with a gjson path, e.g. "photos.0.img_src".
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.raw, path)
}

// Pretty returns the body re-indented for display.
func (r *Response) Pretty() string {
	return gjson.GetBytes(r.raw, "@pretty").Raw
}
