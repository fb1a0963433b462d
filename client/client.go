package client

import (
	"context"
	"encoding/json"

	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/model"
)

type envelope[T any] struct {
	Data T `json:"data"`
}

func decode[T any](resp *Response, err error) (T, error) {
	var out envelope[T]
	if err != nil {
		return out.Data, err
	}
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return out.Data, err
	}
	return out.Data, nil
}

type Client struct {
	Transport  *Transport
	Auth       *AuthEndpoint
	Attendance *AttendanceEndpoint
}

// New initializes the API client
func New(baseURL string, token string) *Client {
	t := NewTransport(baseURL, token)
	return &Client{
		Transport:  t,
		Auth:       &AuthEndpoint{transport: t},
		Attendance: &AttendanceEndpoint{transport: t},
	}
}

type LoginResult struct {
	model.UserView
	Token string `json:"token"`
}

type AuthEndpoint struct {
	transport *Transport
}

func (e *AuthEndpoint) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	return decode[*LoginResult](e.transport.Post(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil))
}

func (e *AuthEndpoint) Me(ctx context.Context) (*model.UserView, error) {
	return decode[*model.UserView](e.transport.Get(ctx, "/api/auth/me", nil))
}

type AttendanceEndpoint struct {
	transport *Transport
}

func (e *AttendanceEndpoint) CheckIn(ctx context.Context) (*model.AttendanceRecord, error) {
	return decode[*model.AttendanceRecord](e.transport.Post(ctx, "/api/attendance/checkin", nil, nil))
}

func (e *AttendanceEndpoint) CheckOut(ctx context.Context) (*model.AttendanceRecord, error) {
	return decode[*model.AttendanceRecord](e.transport.Post(ctx, "/api/attendance/checkout", nil, nil))
}

// Today returns nil when the caller has not checked in today.
func (e *AttendanceEndpoint) Today(ctx context.Context) (*model.AttendanceRecord, error) {
	return decode[*model.AttendanceRecord](e.transport.Get(ctx, "/api/attendance/today", nil))
}

func (e *AttendanceEndpoint) History(ctx context.Context) ([]model.AttendanceRecord, error) {
	return decode[[]model.AttendanceRecord](e.transport.Get(ctx, "/api/attendance/my-history", nil))
}

func (e *AttendanceEndpoint) All(ctx context.Context, filter core.RecordFilter) ([]core.JoinedRecord, error) {
	return decode[[]core.JoinedRecord](e.transport.Get(ctx, "/api/attendance/all", map[string]string{
		"name":       filter.Name,
		"employeeId": filter.EmployeeID,
		"department": filter.Department,
		"date":       filter.Date,
		"status":     filter.Status,
	}))
}

// Export returns the raw report file.
func (e *AttendanceEndpoint) Export(ctx context.Context, format string, filter core.RecordFilter) ([]byte, error) {
	resp, err := e.transport.Get(ctx, "/api/attendance/export", map[string]string{
		"format":     format,
		"name":       filter.Name,
		"employeeId": filter.EmployeeID,
		"department": filter.Department,
		"date":       filter.Date,
		"status":     filter.Status,
	})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
