package scsdk

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Transport executes a prepared request and returns a fully buffered
// response. Implementations must respect the context.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request is the client's lightweight representation of an outgoing HTTP
// request.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   io.Reader

	// Proxy, when non-nil, routes this request through the given proxy.
	Proxy *url.URL
}

// Response is the fully buffered result of a request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type httpTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps a standard *http.Client into a Transport. If nil is
// provided, a client with a 30 second timeout is used.
func NewHTTPTransport(client *http.Client) Transport {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &httpTransport{client: client}
}

// Do executes the request using the underlying standard http.Client. A
// per-request proxy is honored by cloning the transport.
func (t *httpTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	stdReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, req.Body)
	if err != nil {
		return nil, err
	}
	for k, vv := range req.Header {
		for _, v := range vv {
			stdReq.Header.Add(k, v)
		}
	}
	// The provider expects short-lived connections.
	stdReq.Close = true

	client := t.client
	if req.Proxy != nil {
		client = t.proxiedClient(req.Proxy)
	}

	stdResp, err := client.Do(stdReq)
	if err != nil {
		return nil, err
	}
	defer stdResp.Body.Close()

	body, err := io.ReadAll(stdResp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: stdResp.StatusCode,
		Header:     stdResp.Header,
		Body:       body,
	}, nil
}

func (t *httpTransport) proxiedClient(proxy *url.URL) *http.Client {
	var base *http.Transport
	if ht, ok := t.client.Transport.(*http.Transport); ok {
		base = ht.Clone()
	} else {
		base = http.DefaultTransport.(*http.Transport).Clone()
	}
	base.Proxy = http.ProxyURL(proxy)

	return &http.Client{
		Transport:     base,
		Timeout:       t.client.Timeout,
		CheckRedirect: t.client.CheckRedirect,
		Jar:           t.client.Jar,
	}
}
