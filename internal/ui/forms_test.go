package ui

import (
	"strings"
	"testing"

	"rentdesk/internal/rental"
)

func TestFormValues_ParsesPositiveIntegers(t *testing.T) {
	f := newRentForm()
	f.inputs[0].SetValue(" 12 ")
	f.inputs[1].SetValue("7")
	f.inputs[2].SetValue("3")

	ids, err := f.values()
	if err != nil {
		t.Fatalf("values returned error: %v", err)
	}
	if len(ids) != 3 || ids[0] != 12 || ids[1] != 7 || ids[2] != 3 {
		t.Fatalf("values = %v, want [12 7 3]", ids)
	}
}

func TestFormValues_RejectsEmptyField(t *testing.T) {
	f := newRentForm()
	f.inputs[0].SetValue("12")
	f.inputs[2].SetValue("3")

	_, err := f.values()
	if err == nil {
		t.Fatal("values returned nil error for empty field")
	}
	if !strings.Contains(err.Error(), "Film ID") {
		t.Fatalf("error = %v, want mention of Film ID", err)
	}
}

func TestFormValues_RejectsNonNumeric(t *testing.T) {
	f := newReturnForm()
	f.inputs[0].SetValue("abc")

	_, err := f.values()
	if err == nil {
		t.Fatal("values returned nil error for non-numeric input")
	}
}

func TestFormValues_RejectsZeroAndNegative(t *testing.T) {
	for _, raw := range []string{"0", "-4"} {
		f := newCancelForm()
		f.inputs[0].SetValue(raw)
		if _, err := f.values(); err == nil {
			t.Fatalf("values(%q) returned nil error, want rejection", raw)
		}
	}
}

func TestHandleActionDone_NilRentalAck(t *testing.T) {
	m := New(Options{})
	m.currentView = ViewCancel
	m.form = newCancelForm()

	got, _ := m.handleActionDone(actionDoneMsg{verb: "cancel", rental: nil, err: nil})
	next := got.(Model)

	if next.currentView != ViewMenu {
		t.Fatalf("currentView = %v, want ViewMenu", next.currentView)
	}
	if next.statusErr {
		t.Fatalf("status marked as error: %q", next.statusMsg)
	}
	if !strings.Contains(next.statusMsg, "confirmed") {
		t.Fatalf("statusMsg = %q, want confirmation text", next.statusMsg)
	}
	if next.form.active {
		t.Fatal("form still active after acknowledged action")
	}
}

func TestHandleActionDone_RentSuccess(t *testing.T) {
	m := New(Options{})
	m.currentView = ViewRent
	m.form = newRentForm()

	got, _ := m.handleActionDone(actionDoneMsg{verb: "rent", rental: &rental.Rental{ID: 7, Amount: 4.99}})
	next := got.(Model)

	if !strings.Contains(next.statusMsg, "Rental #7 created") {
		t.Fatalf("statusMsg = %q, want creation message", next.statusMsg)
	}
	if !strings.Contains(next.statusMsg, "$4.99") {
		t.Fatalf("statusMsg = %q, want amount", next.statusMsg)
	}
}

func TestVerbLabel(t *testing.T) {
	if got := verbLabel("rent"); got != "Rental" {
		t.Fatalf("verbLabel(rent) = %q, want Rental", got)
	}
	if got := verbLabel("other"); got != "other" {
		t.Fatalf("verbLabel(other) = %q, want passthrough", got)
	}
}
