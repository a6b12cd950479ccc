package rental

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Status is a rental's display state.
//
// Returned is derived from the presence of a return date and always wins over
// whatever the backend reported. Any other upstream value is preserved
// verbatim; cancellation in particular is a terminal state set only by the
// cancel action, never inferred from other fields.
type Status string

const (
	StatusActive   Status = "active"
	StatusReturned Status = "returned"
	StatusCanceled Status = "canceled"
)

// Display returns the status in title case for table rendering.
func (s Status) Display() string {
	v := strings.TrimSpace(string(s))
	if v == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(v)
	return string(unicode.ToUpper(first)) + strings.ToLower(v[size:])
}

// Customer is a rental customer record.
type Customer struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Active    bool
}

// FullName returns the trimmed concatenation of first and last name.
func (c Customer) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// Title is a rental item in the catalog (a film/DVD).
type Title struct {
	ID             int
	Title          string
	RentalRate     float64
	RentalDuration int // whole days a rental is allowed before it counts as late
	Category       string
	Rating         string
	ReleaseYear    int
	Length         int
}

// Genre returns the category when known, falling back to the rating label.
func (t Title) Genre() string {
	if t.Category != "" {
		return t.Category
	}
	return t.Rating
}

// Employee is a staff member record.
type Employee struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Username  string
	StoreID   int
	Active    bool
}

// FullName returns the trimmed concatenation of first and last name.
func (e Employee) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName))
}

// RefKind describes how much of a related entity a payload carried.
type RefKind int

const (
	// RefUnset means the payload had no usable data for the relation.
	RefUnset RefKind = iota
	// RefStub means the relation was reconstructed from flat scalar fields.
	RefStub
	// RefFull means the payload carried a nested object for the relation.
	RefFull
)

// CustomerRef is a rental's customer relation.
type CustomerRef struct {
	Kind     RefKind
	Customer Customer
}

// Label returns the display label for the relation: the customer name when
// known, "ID: <n>" when only an identifier is available, else "".
func (r CustomerRef) Label() string {
	if r.Kind == RefUnset {
		return ""
	}
	if name := r.Customer.FullName(); name != "" {
		return name
	}
	if r.Customer.ID > 0 {
		return fmt.Sprintf("ID: %d", r.Customer.ID)
	}
	return ""
}

// TitleRef is a rental's title relation.
type TitleRef struct {
	Kind  RefKind
	Title Title
}

// Label returns the title text, "ID: <n>", or "".
func (r TitleRef) Label() string {
	if r.Kind == RefUnset {
		return ""
	}
	if t := strings.TrimSpace(r.Title.Title); t != "" {
		return t
	}
	if r.Title.ID > 0 {
		return fmt.Sprintf("ID: %d", r.Title.ID)
	}
	return ""
}

// EmployeeRef is a rental's staff relation.
type EmployeeRef struct {
	Kind     RefKind
	Employee Employee
}

// Label returns the employee name, "ID: <n>", or "".
func (r EmployeeRef) Label() string {
	if r.Kind == RefUnset {
		return ""
	}
	if name := r.Employee.FullName(); name != "" {
		return name
	}
	if r.Employee.ID > 0 {
		return fmt.Sprintf("ID: %d", r.Employee.ID)
	}
	return ""
}

// Rental is a presentation snapshot of one rental, rebuilt from every API
// response and discarded when the screen that requested it goes away.
//
// Zero time values mean unset: a zero ReturnDate is a rental that has not
// come back yet, a zero ExpectedReturn means neither the backend nor the
// derivation engine could produce one.
type Rental struct {
	ID         int
	CustomerID int
	TitleID    int
	EmployeeID int

	RentalDate     time.Time
	ReturnDate     time.Time
	ExpectedReturn time.Time

	Amount     float64
	DaysRented int
	Status     Status

	Customer CustomerRef
	Title    TitleRef
	Employee EmployeeRef
}

// Returned reports whether the rental has a return date.
func (r Rental) Returned() bool {
	return !r.ReturnDate.IsZero()
}

// CustomerLabel returns the best available customer display label, falling
// back to the rental's own scalar customer id.
func (r Rental) CustomerLabel() string {
	if label := r.Customer.Label(); label != "" {
		return label
	}
	if r.CustomerID > 0 {
		return fmt.Sprintf("ID: %d", r.CustomerID)
	}
	return ""
}

// TitleLabel returns the best available title display label.
func (r Rental) TitleLabel() string {
	if label := r.Title.Label(); label != "" {
		return label
	}
	if r.TitleID > 0 {
		return fmt.Sprintf("ID: %d", r.TitleID)
	}
	return ""
}

// EmployeeLabel returns the best available staff display label.
func (r Rental) EmployeeLabel() string {
	if label := r.Employee.Label(); label != "" {
		return label
	}
	if r.EmployeeID > 0 {
		return fmt.Sprintf("ID: %d", r.EmployeeID)
	}
	return ""
}

// RankingRow is one entry of the most-rented titles report.
type RankingRow struct {
	TitleID      int
	Title        string
	Category     string
	TotalRentals int
	RentalRate   float64
	TotalRevenue float64
}

// EarningsRow is one entry of the staff revenue report.
type EarningsRow struct {
	EmployeeID     int
	Name           string
	Email          string
	TotalRentals   int
	TotalPayments  int
	TotalRevenue   float64
	AveragePayment float64
}

// UnreturnedSummary aggregates the unreturned-DVDs report header counts.
type UnreturnedSummary struct {
	Total  int
	Late   int
	OnTime int
}
