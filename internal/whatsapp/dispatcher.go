package whatsapp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/lynnadornets/adornets-backend/pkg/errors"
)

// Channel names one of the hand-off link variants.
type Channel string

const (
	ChannelNative Channel = "native"
	ChannelWeb    Channel = "web"
	ChannelAPI    Channel = "api"
)

// Opener invokes a single hand-off link. Implementations report an error
// when the channel could not be opened.
type Opener interface {
	Open(ctx context.Context, link string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, link string) error

func (f OpenerFunc) Open(ctx context.Context, link string) error {
	return f(ctx, link)
}

// Result describes a completed hand-off attempt.
type Result struct {
	Channel Channel
	Link    string
}

// Dispatcher hands an order payload to a WhatsApp destination. Candidate
// links are tried in order: the device-native deep link (mobile callers
// only), the public web link, then the API-style web link. The first link
// the opener accepts wins.
type Dispatcher struct {
	destination string
	opener      Opener
}

// New builds a dispatcher for the destination phone (digits only, with
// country code).
func New(destination string, opener Opener) (*Dispatcher, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, fmt.Errorf("destination phone required")
	}
	if opener == nil {
		return nil, fmt.Errorf("opener required")
	}
	return &Dispatcher{destination: destination, opener: opener}, nil
}

// Candidate is one link variant in attempt order.
type Candidate struct {
	Channel Channel
	Link    string
}

// Candidates returns the link variants for the payload in attempt order.
func (d *Dispatcher) Candidates(payload string, mobile bool) []Candidate {
	encoded := url.QueryEscape(payload)

	out := make([]Candidate, 0, 3)
	if mobile {
		out = append(out, Candidate{
			Channel: ChannelNative,
			Link:    fmt.Sprintf("whatsapp://send?phone=%s&text=%s", d.destination, encoded),
		})
	}
	out = append(out,
		Candidate{
			Channel: ChannelWeb,
			Link:    fmt.Sprintf("https://wa.me/%s?text=%s", d.destination, encoded),
		},
		Candidate{
			Channel: ChannelAPI,
			Link:    fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s", d.destination, encoded),
		},
	)
	return out
}

// Dispatch attempts the candidate links until one opens. It returns the
// channel that actually opened; if every candidate fails the last error is
// returned and the caller must not treat the order as placed.
func (d *Dispatcher) Dispatch(ctx context.Context, payload string, mobile bool) (Result, error) {
	if strings.TrimSpace(payload) == "" {
		return Result{}, pkgerrors.New(pkgerrors.CodeValidation, "order payload is empty")
	}

	var lastErr error
	for _, candidate := range d.Candidates(payload, mobile) {
		if err := d.opener.Open(ctx, candidate.Link); err != nil {
			lastErr = err
			continue
		}
		return Result{Channel: candidate.Channel, Link: candidate.Link}, nil
	}

	return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, lastErr, "no hand-off channel could be opened")
}

// ProbeOpener verifies http(s) links with a short HEAD request. Non-http
// schemes fail, so the native deep link only succeeds when a client-side
// opener is injected instead.
type ProbeOpener struct {
	client *http.Client
}

// NewProbeOpener builds an opener with the given probe timeout.
func NewProbeOpener(timeout time.Duration) *ProbeOpener {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ProbeOpener{
		client: &http.Client{
			Timeout: timeout,
			// wa.me redirects to api.whatsapp.com; following it would probe
			// the same host twice.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (p *ProbeOpener) Open(ctx context.Context, link string) error {
	parsed, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid link: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scheme %q cannot be opened server-side", parsed.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, link, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("channel responded %d", resp.StatusCode)
	}
	return nil
}
