// Package api talks to the plan service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"dial-cli/internal/model"
	"dial-cli/internal/period"
	"dial-cli/internal/session"
)

const (
	plansPath       = "/api/v1/plans"
	maxResponseSize = 16 << 20
	defaultTimeout  = 10 * time.Second
)

type PlanRequest struct {
	PeriodType string    `json:"period_type"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

func NewPlanRequest(w period.Window) PlanRequest {
	return PlanRequest{PeriodType: string(w.Kind), StartDate: w.Start, EndDate: w.End}
}

// Envelope is the service's response wrapper.
type Envelope[T any] struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Success   bool   `json:"success"`
	Timestamp int64  `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
	Data      T      `json:"data"`
}

type PlanData struct {
	Tasks         []*model.Task    `json:"tasks"`
	TasksTotal    int              `json:"tasks_total"`
	Journals      []Journal        `json:"journals"`
	JournalsTotal int              `json:"journals_total"`
	PlanType      model.PeriodType `json:"plan_type"`
	PlanPeriod    model.Period     `json:"plan_period"`
	ScoreTotal    int              `json:"score_total"`
	GroupStats    []GroupStat      `json:"group_stats"`
}

// Forest nests the returned tasks. Flat listings are rebuilt by parent id.
func (d *PlanData) Forest() model.Forest {
	if d == nil {
		return model.Forest{}
	}
	out := make(model.Forest, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		if t != nil {
			out = append(out, t)
		}
	}
	if out.IsFlat() {
		return model.FromFlat(out)
	}
	return out
}

type GroupStat struct {
	GroupKey   string `json:"group_key"`
	TaskCount  int    `json:"task_count"`
	ScoreTotal int    `json:"score_total"`
}

type Journal struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	Icon       string       `json:"icon"`
	TimePeriod model.Period `json:"time_period"`
	UserID     string       `json:"user_id"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	session *session.Session
	log     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithSession(s *session.Session) Option {
	return func(c *Client) { c.session = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	// The caller's client is shared; set the timeout on our own copy.
	if c.timeout > 0 {
		h := *c.http
		h.Timeout = c.timeout
		c.http = &h
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// Today fetches the plan for the day containing now.
func (c *Client) Today(ctx context.Context, now time.Time) (model.Forest, error) {
	return c.Plan(ctx, NewPlanRequest(period.Today(now)))
}

// Plan fetches a plan and returns its task forest.
func (c *Client) Plan(ctx context.Context, req PlanRequest) (model.Forest, error) {
	data, err := c.PlanData(ctx, req)
	if err != nil {
		return nil, err
	}
	return data.Forest(), nil
}

// PlanData fetches a plan including the aggregate fields.
func (c *Client) PlanData(ctx context.Context, req PlanRequest) (*PlanData, error) {
	raw, err := c.post(ctx, plansPath, req)
	if err != nil {
		return nil, err
	}
	return decodePlanData(raw)
}

// decodePlanData requires a data object that carries a tasks array. Anything
// else is a protocol error so callers never mistake it for an empty plan.
func decodePlanData(raw json.RawMessage) (*PlanData, error) {
	if isNull(raw) {
		return nil, protocolErr(errors.New("response has no data"))
	}
	var shape struct {
		Tasks json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return nil, decodeErr(err)
	}
	if isNull(shape.Tasks) {
		return nil, protocolErr(errors.New("response data has no tasks"))
	}
	var data PlanData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, decodeErr(err)
	}
	return &data, nil
}

func isNull(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	return len(v) == 0 || bytes.Equal(v, []byte("null"))
}

func decodeErr(err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return protocolErr(fmt.Errorf("invalid JSON at offset %d: %w", syn.Offset, err))
	}
	return protocolErr(err)
}

// post sends body as JSON and returns the envelope's data once the service
// reports success.
func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, protocolErr(fmt.Errorf("encode request: %w", err))
	}
	reqID := uuid.NewString()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, transportErr(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", reqID)
	if auth := c.session.Bearer(); auth != "" {
		httpReq.Header.Set("Authorization", auth)
	}

	start := time.Now()
	c.log.Debug("api request", "method", http.MethodPost, "path", path, "request_id", reqID)
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Warn("api transport failure", "path", path, "request_id", reqID, "err", err)
		return nil, transportErr(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, transportErr(fmt.Errorf("read body: %w", err))
	}
	c.log.Debug("api response", "path", path, "request_id", reqID, "status", resp.StatusCode, "bytes", len(raw), "dur", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("HTTP %s", strings.TrimSpace(resp.Status))
		var env Envelope[json.RawMessage]
		if json.Unmarshal(raw, &env) == nil && strings.TrimSpace(env.Message) != "" {
			msg = env.Message
		}
		c.log.Warn("api http failure", "path", path, "request_id", reqID, "status", resp.StatusCode, "message", msg)
		return nil, businessErr(resp.StatusCode, msg)
	}

	var env struct {
		Envelope[json.RawMessage]
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, decodeErr(err)
	}
	if env.Success == nil {
		return nil, protocolErr(errors.New("response is not an envelope"))
	}
	if !*env.Success {
		c.log.Warn("api business failure", "path", path, "request_id", reqID, "code", env.Code, "message", env.Message)
		return nil, businessErr(env.Code, env.Message)
	}
	return env.Data, nil
}
