// Package chat relays guest questions to the concierge assistant service.
// The upstream answers as a token stream, so the proxy copies the body to
// the client incrementally instead of buffering the whole reply.
package chat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Proxy forwards prompts to the assistant's streaming endpoint.
type Proxy struct {
	baseURL string
	hc      *http.Client
}

// NewProxy builds a Proxy for the assistant at baseURL.  No client timeout
// is set because streamed answers can legitimately run long; cancellation
// comes from the request context.
func NewProxy(baseURL string) *Proxy {
	return &Proxy{baseURL: baseURL, hc: &http.Client{}}
}

// Stream sends the prompt payload upstream and copies the streamed answer
// into w chunk by chunk, flushing after every chunk when w supports it.
// The upstream status code is returned so callers can mirror it.
func (p *Proxy) Stream(ctx context.Context, payload []byte, w http.ResponseWriter) (int, error) {
	url := fmt.Sprintf("%s/api/chat/stream", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(resp.StatusCode)

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 4*1024)
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return resp.StatusCode, werr
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				return resp.StatusCode, nil
			}
			return resp.StatusCode, rerr
		}
	}
}
