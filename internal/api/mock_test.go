package api

import (
	"io"
	"net/url"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/bogdanfinn/tls-client/bandwidth"
)

// mockResponseBody is a ReadCloser over fixed bytes.
type mockResponseBody struct {
	data []byte
	pos  int
}

func newMockResponseBody(data []byte) *mockResponseBody {
	return &mockResponseBody{data: data}
}

func (m *mockResponseBody) Read(p []byte) (n int, err error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n = copy(p, m.data[m.pos:])
	m.pos += n
	return n, nil
}

func (m *mockResponseBody) Close() error {
	return nil
}

// mockHttpClient is a mock implementation of tls_client.HttpClient that
// records every request it sees. DoFunc, when set, takes precedence over the
// fixed Response/Err pair.
type mockHttpClient struct {
	Response *fhttp.Response
	Err      error
	DoFunc   func(req *fhttp.Request) (*fhttp.Response, error)
	Requests []*fhttp.Request
}

func (m *mockHttpClient) GetCookies(u *url.URL) []*fhttp.Cookie { return nil }

func (m *mockHttpClient) SetCookies(u *url.URL, cookies []*fhttp.Cookie) {}

func (m *mockHttpClient) SetCookieJar(jar fhttp.CookieJar) {}

func (m *mockHttpClient) GetCookieJar() fhttp.CookieJar { return nil }

func (m *mockHttpClient) SetProxy(proxyUrl string) error { return nil }

func (m *mockHttpClient) GetProxy() string { return "" }

func (m *mockHttpClient) SetFollowRedirect(followRedirect bool) {}

func (m *mockHttpClient) GetFollowRedirect() bool { return false }

func (m *mockHttpClient) CloseIdleConnections() {}

func (m *mockHttpClient) Do(req *fhttp.Request) (*fhttp.Response, error) {
	m.Requests = append(m.Requests, req)
	if m.DoFunc != nil {
		return m.DoFunc(req)
	}
	return m.Response, m.Err
}

func (m *mockHttpClient) Get(url string) (*fhttp.Response, error) {
	return m.Response, m.Err
}

func (m *mockHttpClient) Head(url string) (*fhttp.Response, error) {
	return m.Response, m.Err
}

func (m *mockHttpClient) Post(url, contentType string, body io.Reader) (*fhttp.Response, error) {
	return m.Response, m.Err
}

func (m *mockHttpClient) GetBandwidthTracker() bandwidth.BandwidthTracker { return nil }

// lastRequest returns the most recent request the mock saw.
func (m *mockHttpClient) lastRequest() *fhttp.Request {
	if len(m.Requests) == 0 {
		return nil
	}
	return m.Requests[len(m.Requests)-1]
}

// jsonResponse builds a 200 response with the rate-limit header set.
func jsonResponse(body string, remaining string) *fhttp.Response {
	header := make(fhttp.Header)
	header.Set("X-RateLimit-Remaining", remaining)
	return &fhttp.Response{
		StatusCode: 200,
		Body:       newMockResponseBody([]byte(body)),
		Header:     header,
	}
}

// statusResponse builds a non-200 response.
func statusResponse(statusCode int, body string) *fhttp.Response {
	return &fhttp.Response{
		StatusCode: statusCode,
		Body:       newMockResponseBody([]byte(body)),
		Header:     make(fhttp.Header),
	}
}

// newTestClient wires a Client to a mock transport.
func newTestClient(mock *mockHttpClient, opts ...ClientOption) *Client {
	opts = append([]ClientOption{WithHTTPClient(mock)}, opts...)
	client, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return client
}
