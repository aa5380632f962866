// Package local talks to an on-premises speech daemon (wyoming-piper HTTP
// surface). It serves the voices installed next to the gateway so common
// languages never leave the network.
package local

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	BaseURL string        // e.g. "http://tts:5000"
	Client  *http.Client  // inject; default if nil
	Timeout time.Duration // request timeout per utterance
}

func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL}
}

// Synthesize renders text with the named voice. The daemon streams a WAV
// body on success; the full payload is returned.
func (c *Client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("empty text")
	}

	u, err := url.Parse(c.BaseURL + "/api/text-to-speech")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("text", text)
	if voice != "" {
		q.Set("voice", voice)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "audio/wav")

	hc := c.Client
	if hc == nil {
		hc = &http.Client{}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx2, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req = req.WithContext(ctx2)

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts http request failed: %w (url=%s)", err, u.String())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tts http %d: %s (url=%s, dur=%s)", resp.StatusCode, string(b), u.String(), time.Since(start))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tts body: %w", err)
	}
	return audio, nil
}
