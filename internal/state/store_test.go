package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"rentdesk/internal/rental"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	data := &Data{
		Customers:  []rental.Customer{{ID: 1, FirstName: "Ana"}, {ID: 2, FirstName: "Luis"}},
		Titles:     []rental.Title{{ID: 7, Title: "The Matrix"}},
		Unreturned: []rental.Rental{{ID: 11}},
		Summary:    rental.UnreturnedSummary{Total: 1},
	}

	before := time.Now()
	s.Update(data, nil)

	snap := s.Snapshot()
	if !snap.HasData {
		t.Fatal("HasData = false, want true")
	}
	if len(snap.Data.Customers) != 2 || snap.Data.Customers[0].ID != 1 {
		t.Fatalf("snapshot customers = %#v, want 2 items", snap.Data.Customers)
	}
	if snap.Data.Summary.Total != 1 {
		t.Fatalf("summary = %#v, want Total=1", snap.Data.Summary)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Data.Customers[0].ID = 999
	snap2 := s.Snapshot()
	if snap2.Data.Customers[0].ID != 1 {
		t.Fatalf("Snapshot should clone customers; got id %d want 1", snap2.Data.Customers[0].ID)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(&Data{Customers: []rental.Customer{{ID: 1}}}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.HasData != prev.HasData {
		t.Fatalf("HasData changed on error: got %v want %v", snap.HasData, prev.HasData)
	}
	if len(snap.Data.Customers) != 1 || snap.Data.Customers[0].ID != 1 {
		t.Fatalf("customers changed on error: got %#v want %#v", snap.Data.Customers, prev.Data.Customers)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	s.Update(nil, errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 failure")
	}

	s.Update(nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}
	if !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}

	s.Update(nil, errors.New("fail 3"))
	snap = s.Snapshot()
	if !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true with 3 failures")
	}

	// Success resets counter
	s.Update(&Data{}, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false after success")
	}
}
