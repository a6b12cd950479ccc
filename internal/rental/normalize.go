package rental

import (
	"log"
	"strconv"
	"strings"
	"time"
)

const defaultRentalDuration = 3

// payload wraps a decoded JSON object with field lookup helpers. Every lookup
// takes an ordered list of candidate keys and yields the first present,
// well-typed value; coercion failures fall through to the next candidate so a
// bad field degrades to the caller's default instead of erroring.
type payload map[string]any

// object returns the nested object under key, or nil.
func (p payload) object(key string) payload {
	m, ok := p[key].(map[string]any)
	if !ok {
		return nil
	}
	return payload(m)
}

// text returns the first non-empty string among the candidate keys.
func (p payload) text(keys ...string) string {
	for _, key := range keys {
		if s, ok := p[key].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// intval returns the first value among the candidate keys coercible to int.
// JSON numbers arrive as float64; the Node backend additionally serializes
// Postgres counts and day extracts as strings.
func (p payload) intval(keys ...string) (int, bool) {
	for _, key := range keys {
		switch v := p[key].(type) {
		case float64:
			return int(v), true
		case int:
			return v, true
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.Atoi(s); err == nil {
				return n, true
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return int(f), true
			}
		}
	}
	return 0, false
}

// floatval returns the first value among the candidate keys coercible to
// float64. Postgres numerics arrive as strings such as "4.99".
func (p payload) floatval(keys ...string) (float64, bool) {
	for _, key := range keys {
		switch v := p[key].(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// boolval returns the first value among the candidate keys coercible to bool.
// The customer table stores its active flag as 0/1.
func (p payload) boolval(keys ...string) (bool, bool) {
	for _, key := range keys {
		switch v := p[key].(type) {
		case bool:
			return v, true
		case float64:
			return v != 0, true
		case string:
			s := strings.TrimSpace(strings.ToLower(v))
			switch s {
			case "true", "1", "t", "yes":
				return true, true
			case "false", "0", "f", "no":
				return false, true
			}
		}
	}
	return false, false
}

// timeval parses the first present candidate key as a timestamp, returning
// the zero time when absent or unparseable.
func (p payload) timeval(keys ...string) time.Time {
	for _, key := range keys {
		if s, ok := p[key].(string); ok && strings.TrimSpace(s) != "" {
			if t := ParseTime(s); !t.IsZero() {
				return t
			}
		}
	}
	return time.Time{}
}

// splitName splits a combined display name on the first whitespace run.
func splitName(full string) (first, last string) {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// resolveName prefers explicit first/last name fields, falling back to
// splitting any of the combined-name keys.
func resolveName(p payload, combinedKeys ...string) (first, last string) {
	first = p.text("first_name")
	last = p.text("last_name")
	if first != "" || last != "" {
		return first, last
	}
	if full := p.text(combinedKeys...); full != "" {
		return splitName(full)
	}
	return "", ""
}

// NormalizeCustomer builds a Customer from a decoded JSON object. An empty or
// nil payload yields nil. A payload without either customer_id or id still
// produces a record with ID zero; callers must treat that as invalid for
// create/update actions.
func NormalizeCustomer(data map[string]any) *Customer {
	if len(data) == 0 {
		return nil
	}
	p := payload(data)
	c := &Customer{Active: true}
	c.ID, _ = p.intval("customer_id", "id")
	c.FirstName, c.LastName = resolveName(p, "name", "customer_name")
	c.Email = p.text("email")
	if active, ok := p.boolval("active"); ok {
		c.Active = active
	}
	return c
}

// NormalizeTitle builds a Title from a decoded JSON object. Rental rate
// defaults to 0 and rental duration to 3 days when absent or invalid.
func NormalizeTitle(data map[string]any) *Title {
	if len(data) == 0 {
		return nil
	}
	p := payload(data)
	t := &Title{RentalDuration: defaultRentalDuration}
	t.ID, _ = p.intval("film_id", "id")
	t.Title = p.text("title", "titulo")
	if rate, ok := p.floatval("rental_rate"); ok && rate >= 0 {
		t.RentalRate = rate
	}
	if days, ok := p.intval("rental_duration", "expected_duration"); ok && days >= 1 {
		t.RentalDuration = days
	}
	t.Category = p.text("category", "genero")
	t.Rating = p.text("rating")
	t.ReleaseYear, _ = p.intval("release_year")
	t.Length, _ = p.intval("length")
	return t
}

// NormalizeEmployee builds an Employee from a decoded JSON object.
func NormalizeEmployee(data map[string]any) *Employee {
	if len(data) == 0 {
		return nil
	}
	p := payload(data)
	e := &Employee{Active: true}
	e.ID, _ = p.intval("staff_id", "id")
	e.FirstName, e.LastName = resolveName(p, "name", "staff_name")
	e.Email = p.text("email")
	e.Username = p.text("username")
	e.StoreID, _ = p.intval("store_id")
	if active, ok := p.boolval("active"); ok {
		e.Active = active
	}
	return e
}

// NormalizeRental builds a Rental from a decoded JSON object, filling fields
// the backend omitted via the derivation engine. The current time must be
// supplied by the caller so the result is deterministic.
//
// Related entities are resolved in priority order: a nested customer/film/
// staff object wins, then a stub built from flat scalar fields when at least
// an identifier or a name is present, else the relation stays unset.
func NormalizeRental(data map[string]any, now time.Time) *Rental {
	if len(data) == 0 {
		return nil
	}
	p := payload(data)
	r := &Rental{}
	r.ID, _ = p.intval("rental_id", "id")
	r.CustomerID, _ = p.intval("customer_id")
	r.EmployeeID, _ = p.intval("staff_id")

	film := p.object("film")
	r.TitleID, _ = p.intval("film_id")
	if r.TitleID == 0 && film != nil {
		r.TitleID, _ = film.intval("film_id", "id")
	}

	r.RentalDate = p.timeval("rental_date")
	r.ReturnDate = p.timeval("return_date")

	duration := defaultRentalDuration
	if days, ok := p.intval("rental_duration", "expected_duration"); ok && days >= 1 {
		duration = days
	}
	if film != nil {
		if days, ok := film.intval("rental_duration"); ok && days >= 1 {
			duration = days
		}
	}

	r.ExpectedReturn = p.timeval("expected_return_date")
	if r.ExpectedReturn.IsZero() {
		r.ExpectedReturn = ExpectedReturn(r.RentalDate, duration)
	}

	rate, haveRate := p.floatval("rental_rate")
	if !haveRate && film != nil {
		rate, haveRate = film.floatval("rental_rate")
	}
	if rate < 0 {
		rate, haveRate = 0, false
	}

	// Amount fallback chain: estimated -> total -> title rate -> 0.
	if amount, ok := p.floatval("estimated_amount"); ok {
		r.Amount = amount
	} else if amount, ok := p.floatval("total_amount"); ok {
		r.Amount = amount
	} else if haveRate {
		r.Amount = rate
	}

	if days, ok := p.intval("days_rented"); ok && days >= 0 {
		r.DaysRented = days
	} else if !r.Returned() {
		r.DaysRented = DaysSinceRental(r.RentalDate, now)
	}

	r.Status = DeriveStatus(p.text("status", "estado"), r.ReturnDate)

	r.Customer = normalizeCustomerRef(p, r.CustomerID)
	r.Title = normalizeTitleRef(p, film, r.TitleID, rate, duration)
	r.Employee = normalizeEmployeeRef(p, r.EmployeeID)
	return r
}

func normalizeCustomerRef(p payload, customerID int) CustomerRef {
	if nested := p.object("customer"); nested != nil {
		if c := NormalizeCustomer(nested); c != nil {
			return CustomerRef{Kind: RefFull, Customer: *c}
		}
	}
	name := p.text("customer_name")
	if customerID == 0 && name == "" {
		return CustomerRef{}
	}
	first, last := splitName(name)
	return CustomerRef{Kind: RefStub, Customer: Customer{
		ID:        customerID,
		FirstName: first,
		LastName:  last,
		Email:     p.text("customer_email", "email"),
		Active:    true,
	}}
}

func normalizeTitleRef(p payload, film payload, titleID int, rate float64, duration int) TitleRef {
	if film != nil {
		if t := NormalizeTitle(film); t != nil {
			return TitleRef{Kind: RefFull, Title: *t}
		}
	}
	text := p.text("title", "film_title")
	if titleID == 0 && text == "" {
		return TitleRef{}
	}
	return TitleRef{Kind: RefStub, Title: Title{
		ID:             titleID,
		Title:          text,
		RentalRate:     rate,
		RentalDuration: duration,
		Category:       p.text("category"),
	}}
}

func normalizeEmployeeRef(p payload, employeeID int) EmployeeRef {
	if nested := p.object("staff"); nested != nil {
		if e := NormalizeEmployee(nested); e != nil {
			return EmployeeRef{Kind: RefFull, Employee: *e}
		}
	}
	name := p.text("staff_name")
	if employeeID == 0 && name == "" {
		return EmployeeRef{}
	}
	first, last := splitName(name)
	return EmployeeRef{Kind: RefStub, Employee: Employee{
		ID:        employeeID,
		FirstName: first,
		LastName:  last,
		Email:     p.text("staff_email"),
		Active:    true,
	}}
}

// NormalizeRentals converts an array of rental payloads, skipping elements
// that are not objects or carry no identifying fields at all. A skipped
// element shortens the result instead of failing the batch.
func NormalizeRentals(items []any, now time.Time) []Rental {
	rentals := make([]Rental, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			log.Printf("skipping rental payload %d: not an object", i)
			continue
		}
		r := NormalizeRental(obj, now)
		if r == nil || (r.ID == 0 && r.RentalDate.IsZero()) {
			log.Printf("skipping rental payload %d: no identifying fields", i)
			continue
		}
		rentals = append(rentals, *r)
	}
	return rentals
}

// NormalizeCustomers converts an array of customer payloads, skipping
// malformed elements.
func NormalizeCustomers(items []any) []Customer {
	customers := make([]Customer, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			log.Printf("skipping customer payload %d: not an object", i)
			continue
		}
		if c := NormalizeCustomer(obj); c != nil && c.ID != 0 {
			customers = append(customers, *c)
		}
	}
	return customers
}

// NormalizeTitles converts an array of film payloads, skipping malformed
// elements.
func NormalizeTitles(items []any) []Title {
	titles := make([]Title, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			log.Printf("skipping film payload %d: not an object", i)
			continue
		}
		if t := NormalizeTitle(obj); t != nil && t.ID != 0 {
			titles = append(titles, *t)
		}
	}
	return titles
}

// NormalizeEmployees converts an array of staff payloads, skipping malformed
// elements.
func NormalizeEmployees(items []any) []Employee {
	employees := make([]Employee, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			log.Printf("skipping staff payload %d: not an object", i)
			continue
		}
		if e := NormalizeEmployee(obj); e != nil && e.ID != 0 {
			employees = append(employees, *e)
		}
	}
	return employees
}

// NormalizeRankingRows converts most-rented report payloads. The backend and
// older report screens disagree on key names (titulo vs title, total_rentas
// vs total_rentals); candidates are tried in that order.
func NormalizeRankingRows(items []any) []RankingRow {
	rows := make([]RankingRow, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		p := payload(obj)
		row := RankingRow{
			Title:    p.text("titulo", "title"),
			Category: p.text("genero", "category"),
		}
		row.TitleID, _ = p.intval("film_id")
		row.TotalRentals, _ = p.intval("total_rentas", "total_rentals")
		row.RentalRate, _ = p.floatval("rental_rate")
		row.TotalRevenue, _ = p.floatval("total_revenue")
		rows = append(rows, row)
	}
	return rows
}

// NormalizeEarningsRows converts staff-revenue report payloads, accepting
// both the backend field names and their display aliases.
func NormalizeEarningsRows(items []any) []EarningsRow {
	rows := make([]EarningsRow, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		p := payload(obj)
		row := EarningsRow{
			Name:  p.text("nombre", "staff_name"),
			Email: p.text("email"),
		}
		if row.Name == "" {
			first, last := resolveName(p, "name")
			row.Name = strings.TrimSpace(first + " " + last)
		}
		row.EmployeeID, _ = p.intval("staff_id")
		row.TotalRentals, _ = p.intval("total_rentas", "total_rentals")
		row.TotalPayments, _ = p.intval("total_pagos", "total_payments")
		row.TotalRevenue, _ = p.floatval("ganancia_total", "total_revenue")
		row.AveragePayment, _ = p.floatval("promedio_pago", "average_payment")
		rows = append(rows, row)
	}
	return rows
}

// NormalizeUnreturnedSummary converts the unreturned-DVDs report header.
func NormalizeUnreturnedSummary(data map[string]any) UnreturnedSummary {
	if len(data) == 0 {
		return UnreturnedSummary{}
	}
	p := payload(data)
	var s UnreturnedSummary
	s.Total, _ = p.intval("total_unreturned")
	s.Late, _ = p.intval("late_returns")
	s.OnTime, _ = p.intval("on_time")
	return s
}
