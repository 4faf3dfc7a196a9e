package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2024-03-15"` {
		t.Fatalf("unexpected encoding %s", raw)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back, d)
	}
}

func TestDateZeroMarshalsNull(t *testing.T) {
	raw, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("expected null, got %s", raw)
	}

	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.Time.IsZero() {
		t.Fatalf("expected zero date, got %v", d)
	}
}

func TestDateDaysSince(t *testing.T) {
	ordered, _ := ParseDate("2024-03-01")
	shipped, _ := ParseDate("2024-03-05")
	if got := shipped.DaysSince(ordered); got != 4 {
		t.Fatalf("expected 4 days, got %d", got)
	}
	if got := ordered.DaysSince(ordered); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 7, 1, 15, 30, 0, 0, time.Local)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "2024-07-01" {
		t.Fatalf("unexpected date %s", d)
	}

	if err := d.Scan("2024-07-02 00:00:00"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2024-07-02" {
		t.Fatalf("unexpected date %s", d)
	}
}
