package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateUnmarshalPlainDate(t *testing.T) {
	var req CreateCertificationRequest
	payload := `{"title":"CKA","issuer":"CNCF","issue_date":"2023-05-01"}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.IssueDate == nil {
		t.Fatal("issue_date not parsed")
	}
	if got := req.IssueDate.Format("2006-01-02"); got != "2023-05-01" {
		t.Errorf("issue_date: got %s", got)
	}
}

func TestDateUnmarshalTimestamp(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2023-05-01T10:30:00Z"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := d.Format("2006-01-02"); got != "2023-05-01" {
		t.Errorf("date: got %s", got)
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"01/05/2023"`), &d); err == nil {
		t.Error("non-ISO date accepted")
	}
}

func TestDateMarshalDateOnly(t *testing.T) {
	d := NewDate(time.Date(2023, 5, 1, 15, 4, 5, 0, time.UTC))
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2023-05-01"` {
		t.Errorf("marshal: got %s", out)
	}
}

func TestDateOptionalHelpers(t *testing.T) {
	if DateOf(nil) != nil {
		t.Error("DateOf(nil) should be nil")
	}
	var missing *Date
	if missing.TimeValue() != nil {
		t.Error("nil date should unwrap to nil")
	}

	ts := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	d := DateOf(&ts)
	if d == nil || !d.Time.Equal(ts) {
		t.Fatalf("DateOf: got %+v", d)
	}
	back := d.TimeValue()
	if back == nil || !back.Equal(ts) {
		t.Errorf("TimeValue: got %v", back)
	}
}
