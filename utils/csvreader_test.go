package utils

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := `name,age,city
Alice,30,New York
Bob,25,Los Angeles`

	reader := strings.NewReader(csvData)

	got, err := ParseCSV(reader)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	want := [][]string{
		{"name", "age", "city"},
		{"Alice", "30", "New York"},
		{"Bob", "25", "Los Angeles"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV returned %+v, want %+v", got, want)
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	header := []string{"Name", "Date"}
	rows := [][]string{{"Doe, Jane", "2025-03-04"}}

	if err := WriteCSV(&buf, header, rows); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	if !strings.Contains(buf.String(), `"Doe, Jane"`) {
		t.Errorf("expected quoted field, got %q", buf.String())
	}

	got, err := ParseCSV(&buf)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	want := [][]string{header, rows[0]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
