package main

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name       string
		detail     string
		wantFormat string
		wantDate   string
		wantErr    bool
	}{
		{name: "empty detail", detail: ""},
		{name: "null detail", detail: "null"},
		{name: "format and date", detail: `{"format":"xlsx","filter":{"date":"2025-03-04"}}`, wantFormat: "xlsx", wantDate: "2025-03-04"},
		{name: "malformed", detail: `{"format":`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequest(events.CloudWatchEvent{Detail: json.RawMessage(tt.detail)})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, req.Format)
			assert.Equal(t, tt.wantDate, req.Filter.Date)
		})
	}
}
