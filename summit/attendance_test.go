package summit

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/summitpt/summit-go/transport"
)

func TestAttendance_TimeIn(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/attendance/time-in" {
			t.Errorf("expected /attendance/time-in, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		want := `{"time_in":"09:00","status":"present"}`
		if string(body) != want {
			t.Errorf("body = %s, want %s", body, want)
		}
		w.WriteHeader(201)
		w.Write([]byte(`{"message":"Time in recorded","date":"2024-01-15","time_in":"09:00"}`))
	}))

	res, err := c.Attendance.TimeIn(context.Background(), TimeInRequest{
		TimeIn: "09:00",
		Status: "present",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Time in recorded" {
		t.Errorf("expected confirmation, got %q", res.Message)
	}
	if res.Date != "2024-01-15" {
		t.Errorf("expected 2024-01-15, got %s", res.Date)
	}
	if res.TimeIn != "09:00" {
		t.Errorf("expected 09:00, got %s", res.TimeIn)
	}
}

func TestAttendance_TimeIn_Invalid(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(200)
	}))

	_, err := c.Attendance.TimeIn(context.Background(), TimeInRequest{Status: "present"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !transport.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "time_in") {
		t.Errorf("error should name time_in, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("expected 0 requests, got %d", got)
	}
}

func TestAttendance_TimeIn_AlreadyRecorded(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		w.Write([]byte(`{"detail":"Already timed in today"}`))
	}))

	_, err := c.Attendance.TimeIn(context.Background(), TimeInRequest{
		TimeIn: "09:00",
		Status: "present",
	})
	if err == nil {
		t.Fatal("expected error for 400")
	}
	e, ok := transport.AsError(err)
	if !ok {
		t.Fatalf("expected *transport.Error, got %T", err)
	}
	if e.Message != "Already timed in today" {
		t.Errorf("expected backend detail, got %q", e.Message)
	}
}

func TestAttendance_TimeOut_SendsZeroExtraHours(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/attendance/time-out" {
			t.Errorf("expected /attendance/time-out, got %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		want := `{"time_out":"18:00","total_hours":8.5,"extra_hours":0}`
		if string(body) != want {
			t.Errorf("body = %s, want %s", body, want)
		}
		w.Write([]byte(`{"message":"Time out recorded","total_hours":8.5}`))
	}))

	res, err := c.Attendance.TimeOut(context.Background(), TimeOutRequest{
		TimeOut:    "18:00",
		TotalHours: 8.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalHours != 8.5 {
		t.Errorf("expected 8.5 hours, got %v", res.TotalHours)
	}
}

func TestAttendance_Mine(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/attendance/me" {
			t.Errorf("expected /attendance/me, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"records":[
			{"date":"2024-01-15","timeIn":"09:00","timeOut":"18:00","totalHours":8.25,"status":"present","extraHours":0.25,"adminTimedOut":false},
			{"date":"2024-01-16","timeIn":"09:05","status":"present","adminTimedOut":true,"adminTimedOutAt":"2024-01-16T18:00:00","adminTimedOutBy":"sup-1"}
		]}`))
	}))

	records, err := c.Attendance.Mine(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].TimeIn != "09:00" {
		t.Errorf("expected 09:00, got %s", records[0].TimeIn)
	}
	if records[0].TotalHours != 8.25 {
		t.Errorf("expected 8.25, got %v", records[0].TotalHours)
	}
	if !records[1].AdminTimedOut {
		t.Error("expected adminTimedOut=true")
	}
	if records[1].AdminTimedOutBy != "sup-1" {
		t.Errorf("expected sup-1, got %s", records[1].AdminTimedOutBy)
	}
}

func TestAttendance_All_DateFilter(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/attendance/all" {
			t.Errorf("expected /attendance/all, got %s", r.URL.Path)
		}
		dates := r.URL.Query()["date"]
		if len(dates) != 1 || dates[0] != "2024-01-15" {
			t.Errorf("expected date=2024-01-15 exactly once, got %v", dates)
		}
		w.Write([]byte(`{"records":[
			{"uid":"u1","date":"2024-01-15","display_name":"Ana Cruz","employee_id":"EMP-014","timeIn":"09:00","status":"present"}
		]}`))
	}))

	records, err := c.Attendance.All(context.Background(), "2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].UID != "u1" {
		t.Errorf("expected u1, got %s", records[0].UID)
	}
	if records[0].DisplayName != "Ana Cruz" {
		t.Errorf("expected Ana Cruz, got %s", records[0].DisplayName)
	}
	if records[0].EmployeeID != "EMP-014" {
		t.Errorf("expected EMP-014, got %s", records[0].EmployeeID)
	}
}

func TestAttendance_All_NoDate(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["date"]; ok {
			t.Error("expected no date parameter")
		}
		w.Write([]byte(`{"records":[]}`))
	}))

	records, err := c.Attendance.All(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected 0 records, got %d", len(records))
	}
}

func TestAttendance_BulkTimeOut(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/attendance/bulk-timeout" {
			t.Errorf("expected /attendance/bulk-timeout, got %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		want := `{"date":"2024-01-15","employee_uids":["u1","u2"]}`
		if string(body) != want {
			t.Errorf("body = %s, want %s", body, want)
		}
		w.Write([]byte(`{"message":"Bulk time out applied to 2 employees","updated":["u1","u2"]}`))
	}))

	res, err := c.Attendance.BulkTimeOut(context.Background(), BulkTimeOutRequest{
		Date:         "2024-01-15",
		EmployeeUIDs: []string{"u1", "u2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Updated) != 2 {
		t.Errorf("expected 2 updated, got %d", len(res.Updated))
	}
}

func TestAttendance_BulkTimeOut_NilUIDs(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		want := `{"date":"2024-01-15","employee_uids":[]}`
		if string(body) != want {
			t.Errorf("body = %s, want %s", body, want)
		}
		w.Write([]byte(`{"message":"Bulk time out applied to 0 employees","updated":[]}`))
	}))

	res, err := c.Attendance.BulkTimeOut(context.Background(), BulkTimeOutRequest{Date: "2024-01-15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Updated) != 0 {
		t.Errorf("expected 0 updated, got %d", len(res.Updated))
	}
}

func TestAttendance_BulkTimeOut_MissingDate(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(200)
	}))

	_, err := c.Attendance.BulkTimeOut(context.Background(), BulkTimeOutRequest{
		EmployeeUIDs: []string{"u1"},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !transport.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("expected 0 requests, got %d", got)
	}
}
