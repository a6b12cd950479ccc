package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"rentdesk/internal/rental"
)

// Backend defines the operations the UI needs from the rental API.
// It is implemented by *Client and can be swapped out in tests.
type Backend interface {
	CreateRental(ctx context.Context, req CreateRentalRequest) (*rental.Rental, error)
	ReturnRental(ctx context.Context, rentalID int) (*rental.Rental, error)
	CancelRental(ctx context.Context, rentalID int) (*rental.Rental, error)
	Customers(ctx context.Context) ([]rental.Customer, error)
	Films(ctx context.Context) ([]rental.Title, error)
	Staff(ctx context.Context) ([]rental.Employee, error)
	CustomerRentals(ctx context.Context, customerID int) (CustomerRentalsReport, error)
	Unreturned(ctx context.Context) (UnreturnedReport, error)
	MostRented(ctx context.Context, limit int) ([]rental.RankingRow, error)
	StaffRevenue(ctx context.Context) (StaffRevenueReport, error)
}

var _ Backend = (*Client)(nil)

// Client talks to the rental backend's REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	validate  *validator.Validate
}

const (
	defaultBaseURL   = "http://127.0.0.1:3000"
	defaultUserAgent = "rentdesk/1.0"
	defaultTimeout   = 10 * time.Second

	catalogFetchLimit = 1000
	staffFetchLimit   = 100
)

// NewClient builds a Client for the given base URL. An empty URL falls back
// to the local development backend; a zero timeout uses the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
		validate:  validator.New(),
	}, nil
}

// CreateRentalRequest is the body of POST /rentals.
type CreateRentalRequest struct {
	CustomerID int `json:"customer_id" validate:"required,gt=0"`
	FilmID     int `json:"film_id" validate:"required,gt=0"`
	StaffID    int `json:"staff_id" validate:"required,gt=0"`
}

// CustomerRentalsReport is the rentals-by-customer report.
type CustomerRentalsReport struct {
	Customer *rental.Customer
	Total    int
	Rentals  []rental.Rental
}

// UnreturnedReport is the unreturned-DVDs report.
type UnreturnedReport struct {
	Summary rental.UnreturnedSummary
	Rentals []rental.Rental
}

// StaffRevenueReport is the staff earnings report.
type StaffRevenueReport struct {
	TotalRevenue float64
	Rows         []rental.EarningsRow
}

// CreateRental registers a new rental and returns the normalized record.
func (c *Client) CreateRental(ctx context.Context, req CreateRentalRequest) (*rental.Rental, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validate rental request: %w", err)
	}
	payload, err := c.do(ctx, http.MethodPost, &url.URL{Path: "/rentals"}, req)
	if err != nil {
		return nil, err
	}
	data, err := singleObject(payload)
	if err != nil {
		return nil, err
	}
	return rental.NormalizeRental(data, time.Now().UTC()), nil
}

// ReturnRental marks a rental as returned.
func (c *Client) ReturnRental(ctx context.Context, rentalID int) (*rental.Rental, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if rentalID <= 0 {
		return nil, fmt.Errorf("rental id required")
	}
	rel := &url.URL{Path: fmt.Sprintf("/rentals/%d/return", rentalID)}
	payload, err := c.do(ctx, http.MethodPut, rel, nil)
	if err != nil {
		return nil, err
	}
	data, err := singleObject(payload)
	if err != nil {
		return nil, err
	}
	return rental.NormalizeRental(data, time.Now().UTC()), nil
}

// CancelRental cancels a rental. The returned record carries whatever
// confirmation details the backend included; its status is forced to
// canceled since cancellation is the one state the backend does not echo.
func (c *Client) CancelRental(ctx context.Context, rentalID int) (*rental.Rental, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if rentalID <= 0 {
		return nil, fmt.Errorf("rental id required")
	}
	rel := &url.URL{Path: fmt.Sprintf("/rentals/%d", rentalID)}
	payload, err := c.do(ctx, http.MethodDelete, rel, nil)
	if err != nil {
		return nil, err
	}
	data, err := singleObject(payload)
	if err != nil {
		return nil, err
	}
	r := rental.NormalizeRental(data, time.Now().UTC())
	if r != nil {
		r.Status = rental.StatusCanceled
	}
	return r, nil
}

// Customers fetches the customer catalog.
func (c *Client) Customers(ctx context.Context) ([]rental.Customer, error) {
	items, err := c.fetchCollection(ctx, "/customers", catalogFetchLimit, "data", "customers", "clientes")
	if err != nil {
		return nil, err
	}
	return rental.NormalizeCustomers(items), nil
}

// Films fetches the film catalog.
func (c *Client) Films(ctx context.Context) ([]rental.Title, error) {
	items, err := c.fetchCollection(ctx, "/films", catalogFetchLimit, "data", "films")
	if err != nil {
		return nil, err
	}
	return rental.NormalizeTitles(items), nil
}

// Staff fetches the staff catalog.
func (c *Client) Staff(ctx context.Context) ([]rental.Employee, error) {
	items, err := c.fetchCollection(ctx, "/staff", staffFetchLimit, "data", "staff")
	if err != nil {
		return nil, err
	}
	return rental.NormalizeEmployees(items), nil
}

// CustomerRentals fetches every rental for one customer.
func (c *Client) CustomerRentals(ctx context.Context, customerID int) (CustomerRentalsReport, error) {
	if c == nil {
		return CustomerRentalsReport{}, fmt.Errorf("client is nil")
	}
	if customerID <= 0 {
		return CustomerRentalsReport{}, fmt.Errorf("customer id required")
	}
	rel := &url.URL{Path: fmt.Sprintf("/reports/customer-rentals/%d", customerID)}
	payload, err := c.do(ctx, http.MethodGet, rel, nil)
	if err != nil {
		return CustomerRentalsReport{}, err
	}

	report := CustomerRentalsReport{}
	items, err := collection(payload, "rentals", "data")
	if err != nil {
		return CustomerRentalsReport{}, err
	}
	report.Rentals = rental.NormalizeRentals(items, time.Now().UTC())
	report.Total = len(report.Rentals)

	if env, ok := payload.(map[string]any); ok {
		if customer, ok := env["customer"].(map[string]any); ok {
			report.Customer = rental.NormalizeCustomer(customer)
		}
		if total, ok := intField(env, "total_rentals"); ok {
			report.Total = total
		}
	}
	return report, nil
}

// Unreturned fetches the unreturned-DVDs report.
func (c *Client) Unreturned(ctx context.Context) (UnreturnedReport, error) {
	if c == nil {
		return UnreturnedReport{}, fmt.Errorf("client is nil")
	}
	payload, err := c.do(ctx, http.MethodGet, &url.URL{Path: "/reports/unreturned-dvds"}, nil)
	if err != nil {
		return UnreturnedReport{}, err
	}
	items, err := collection(payload, "data")
	if err != nil {
		return UnreturnedReport{}, err
	}
	report := UnreturnedReport{
		Rentals: rental.NormalizeRentals(items, time.Now().UTC()),
	}
	if env, ok := payload.(map[string]any); ok {
		if summary, ok := env["summary"].(map[string]any); ok {
			report.Summary = rental.NormalizeUnreturnedSummary(summary)
		}
	}
	if report.Summary.Total == 0 {
		report.Summary.Total = len(report.Rentals)
	}
	return report, nil
}

// MostRented fetches the most-rented titles ranking.
func (c *Client) MostRented(ctx context.Context, limit int) ([]rental.RankingRow, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	rel := &url.URL{Path: "/reports/most-rented", RawQuery: values.Encode()}
	payload, err := c.do(ctx, http.MethodGet, rel, nil)
	if err != nil {
		return nil, err
	}
	items, err := collection(payload, "data")
	if err != nil {
		return nil, err
	}
	return rental.NormalizeRankingRows(items), nil
}

// StaffRevenue fetches the per-staff earnings report.
func (c *Client) StaffRevenue(ctx context.Context) (StaffRevenueReport, error) {
	if c == nil {
		return StaffRevenueReport{}, fmt.Errorf("client is nil")
	}
	payload, err := c.do(ctx, http.MethodGet, &url.URL{Path: "/reports/staff-revenue"}, nil)
	if err != nil {
		return StaffRevenueReport{}, err
	}
	items, err := collection(payload, "data")
	if err != nil {
		return StaffRevenueReport{}, err
	}
	report := StaffRevenueReport{
		Rows: rental.NormalizeEarningsRows(items),
	}
	if env, ok := payload.(map[string]any); ok {
		if total, ok := floatField(env, "total_revenue_all_staff"); ok {
			report.TotalRevenue = total
		}
	}
	if report.TotalRevenue == 0 {
		for _, row := range report.Rows {
			report.TotalRevenue += row.TotalRevenue
		}
	}
	return report, nil
}

func (c *Client) fetchCollection(ctx context.Context, path string, limit int, keys ...string) ([]any, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	rel := &url.URL{Path: path, RawQuery: values.Encode()}
	payload, err := c.do(ctx, http.MethodGet, rel, nil)
	if err != nil {
		return nil, err
	}
	return collection(payload, keys...)
}

// do executes one request and decodes the JSON response without imposing a
// shape; callers unwrap envelopes with collection and singleObject.
func (c *Client) do(ctx context.Context, method string, rel *url.URL, body any) (any, error) {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var payload any
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode >= 400 {
		if msg := envelopeMessage(payload); msg != "" {
			return nil, fmt.Errorf("api %s: %s", rel.Path, msg)
		}
		return nil, fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	return payload, nil
}

// collection unwraps a response that is either a bare JSON array or an
// envelope carrying the array under one of the candidate keys. A missing
// array is an empty collection, not an error; success:false is an error.
func collection(payload any, keys ...string) ([]any, error) {
	switch v := payload.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case map[string]any:
		if err := envelopeError(v); err != nil {
			return nil, err
		}
		for _, key := range keys {
			if items, ok := v[key].([]any); ok {
				return items, nil
			}
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected response shape %T", payload)
	}
}

// singleObject unwraps an enveloped single-entity response, preferring the
// data object and falling back to the envelope itself for bare objects.
func singleObject(payload any) (map[string]any, error) {
	env, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape %T", payload)
	}
	if err := envelopeError(env); err != nil {
		return nil, err
	}
	if data, ok := env["data"].(map[string]any); ok {
		return data, nil
	}
	return env, nil
}

func envelopeError(env map[string]any) error {
	success, ok := env["success"].(bool)
	if !ok || success {
		return nil
	}
	if msg := envelopeMessage(env); msg != "" {
		return fmt.Errorf("api error: %s", msg)
	}
	return fmt.Errorf("api error: request failed")
}

func envelopeMessage(payload any) string {
	env, ok := payload.(map[string]any)
	if !ok {
		return ""
	}
	msg, _ := env["message"].(string)
	return strings.TrimSpace(msg)
}

func intField(env map[string]any, key string) (int, bool) {
	switch v := env[key].(type) {
	case float64:
		return int(v), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func floatField(env map[string]any, key string) (float64, bool) {
	switch v := env[key].(type) {
	case float64:
		return v, true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
