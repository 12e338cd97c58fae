package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
	"quickcamp/internal/metrics"
)

// DefaultTimeout bounds every network attempt unless the caller supplies its
// own http.Client.
const DefaultTimeout = 10 * time.Second

// State is the position of a client in its request cycle.
type State int

const (
	StateIdle State = iota
	StateRequesting
	StateRefreshing
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequesting:
		return "requesting"
	case StateRefreshing:
		return "refreshing"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Refresher exchanges a refresh credential for a new access credential.
type Refresher interface {
	Refresh(ctx context.Context, refresh string) (string, error)
}

type Option func(*Client)

// WithLimiter throttles every network attempt, replays included.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithSessionEnded registers the collaborator notified when the session can
// no longer be authenticated, typically one that navigates to the login
// page. It is invoked at most once.
func WithSessionEnded(fn func()) Option {
	return func(c *Client) { c.onEnded = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithUploadClient sets the client used for requests marked with
// port.WithStreamingBody. By default it is derived from the main client with
// streamingClient.
func WithUploadClient(hc *http.Client) Option {
	return func(c *Client) { c.upload = hc }
}

// Client is an authenticated HTTP client bound to one session. Every request
// carries the current access credential. A 401 answer triggers exactly one
// refresh and one replay of the request; when that is not possible the
// credentials are cleared and port.ErrUnauthenticated is returned.
type Client struct {
	http      *http.Client
	upload    *http.Client
	store     *Store
	refresher Refresher
	limiter   *rate.Limiter
	onEnded   func()
	log       *slog.Logger

	endOnce   sync.Once
	refreshMu sync.Mutex

	mu    sync.Mutex
	state State
}

var _ port.SessionClient = (*Client)(nil)

func New(hc *http.Client, store *Store, refresher Refresher, opts ...Option) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	c := &Client{
		http:      hc,
		store:     store,
		refresher: refresher,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.upload == nil {
		c.upload = streamingClient(hc)
	}
	return c
}

// streamingClient derives the upload client from hc. http.Client.Timeout
// covers writing the request body, so it is dropped and hc.Timeout only
// bounds the wait for the response headers.
func streamingClient(hc *http.Client) *http.Client {
	out := *hc
	out.Timeout = 0
	if hc.Timeout <= 0 {
		return &out
	}
	var base *http.Transport
	switch t := hc.Transport.(type) {
	case nil:
		base, _ = http.DefaultTransport.(*http.Transport)
	case *http.Transport:
		base = t
	}
	if base == nil {
		return &out
	}
	tr := base.Clone()
	tr.ResponseHeaderTimeout = hc.Timeout
	out.Transport = tr
	return &out
}

// State returns the state reached by the most recent transition.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Client) Credentials() domain.Credentials {
	return c.store.Credentials()
}

func (c *Client) AccessExpiry() (time.Time, bool) {
	return AccessExpiry(c.store.Credentials().Access)
}

// End clears the credentials. The session-ended collaborator is not
// notified: the caller is the one ending the session.
func (c *Client) End() {
	c.endOnce.Do(func() {})
	c.store.Clear()
	c.transition(StateIdle, "session closed")
}

// Do sends req with the bearer credential. Transport errors, timeouts
// included, are returned as they are and never trigger a refresh. Requests
// with a body must set GetBody to be replayable; otherwise a 401 response is
// returned to the caller untouched.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	access := c.store.Credentials().Access

	c.transition(StateRequesting, "send", slog.String("url", req.URL.Redacted()))
	resp, err := c.send(ctx, req, access, "first", false)
	if err != nil {
		c.transition(StateIdle, "transport error", slog.Any("error", err))
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		c.transition(StateIdle, "done", slog.Int("status", resp.StatusCode))
		return resp, nil
	}
	if !replayable(req) {
		c.transition(StateIdle, "401 on a request that cannot be replayed")
		return resp, nil
	}
	drain(resp)

	c.transition(StateRefreshing, "401 received")
	fresh, err := c.refresh(ctx, access)
	if err != nil {
		return nil, c.fail(err)
	}

	c.transition(StateRequesting, "replay")
	resp, err = c.send(ctx, req, fresh, "replay", true)
	if err != nil {
		c.transition(StateIdle, "transport error on replay", slog.Any("error", err))
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		drain(resp)
		return nil, c.fail(errors.New("replayed request rejected"))
	}
	c.transition(StateIdle, "done", slog.Int("status", resp.StatusCode))
	return resp, nil
}

func (c *Client) send(ctx context.Context, req *http.Request, access, attempt string, replay bool) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if !replay && req.Body != nil && req.Body != http.NoBody {
				_ = req.Body.Close()
			}
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	out := req.Clone(ctx)
	if replay && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewind request body: %w", err)
		}
		out.Body = body
	}
	if access != "" {
		out.Header.Set("Authorization", "Bearer "+access)
	} else {
		out.Header.Del("Authorization")
	}

	hc := c.http
	if port.StreamingBody(ctx) {
		hc = c.upload
	}
	start := time.Now()
	resp, err := hc.Do(out)
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	metrics.RecordRemoteRequest(attempt, status, time.Since(start))
	return resp, err
}

// refresh obtains a new access credential. Concurrent calls that failed with
// the same stale credential share one refresh.
func (c *Client) refresh(ctx context.Context, stale string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	creds := c.store.Credentials()
	if creds.Access != "" && creds.Access != stale {
		return creds.Access, nil
	}
	if creds.Refresh == "" {
		metrics.RecordRefresh("missing")
		return "", errors.New("no refresh credential")
	}
	access, err := c.refresher.Refresh(ctx, creds.Refresh)
	if err != nil {
		metrics.RecordRefresh("failure")
		return "", fmt.Errorf("refresh access credential: %w", err)
	}
	metrics.RecordRefresh("success")
	c.store.SetAccess(access)
	return access, nil
}

func (c *Client) fail(cause error) error {
	c.store.Clear()
	c.transition(StateFailed, "session ended", slog.Any("error", cause))
	c.endOnce.Do(func() {
		if c.onEnded != nil {
			c.onEnded()
		}
	})
	return fmt.Errorf("%w: %w", port.ErrUnauthenticated, cause)
}

func (c *Client) transition(to State, msg string, attrs ...slog.Attr) {
	c.mu.Lock()
	from := c.state
	c.state = to
	c.mu.Unlock()

	attrs = append(attrs, slog.String("from", from.String()), slog.String("to", to.String()))
	c.log.LogAttrs(context.Background(), slog.LevelDebug, "session client: "+msg, attrs...)
}

func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}

// Factory builds session clients sharing one transport, refresher and
// outbound limiter.
type Factory struct {
	http      *http.Client
	upload    *http.Client
	refresher Refresher
	opts      []Option
}

var _ port.SessionClientFactory = (*Factory)(nil)

func NewFactory(hc *http.Client, refresher Refresher, opts ...Option) *Factory {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Factory{http: hc, upload: streamingClient(hc), refresher: refresher, opts: opts}
}

func (f *Factory) NewSessionClient(creds domain.Credentials, onEnded func()) port.SessionClient {
	opts := append([]Option{WithUploadClient(f.upload)}, f.opts...)
	opts = append(opts, WithSessionEnded(onEnded))
	return New(f.http, NewStore(creds), f.refresher, opts...)
}
