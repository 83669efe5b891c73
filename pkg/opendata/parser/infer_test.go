package parser

import (
	"testing"

	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
		{"NaN", "NaN"},
		{"1,000", "1,000"},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestInferKind(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected models.Kind
	}{
		{"empty", nil, models.KindText},
		{"integers", []string{"1", "2", "-3"}, models.KindInt},
		{"mixed numbers", []string{"1", "2.5"}, models.KindFloat},
		{"thousands separators", []string{"1,000", "250"}, models.KindFloat},
		{"currency", []string{"$ 1,500.00", "$20"}, models.KindFloat},
		{"dates", []string{"2023-01-02", "2023-01-02T10:00:00"}, models.KindDate},
		{"text", []string{"Si", "No"}, models.KindText},
		{"mostly numbers", []string{"1", "dos"}, models.KindText},
		{"padded numbers", []string{" 12", "7 "}, models.KindText},
		{"inner spaces", []string{"1 500", "20"}, models.KindFloat},
		{"decimal comma", []string{"3,5", "2"}, models.KindFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inferKind(tt.values); got != tt.expected {
				t.Errorf("inferKind(%v) = %s, expected %s", tt.values, got, tt.expected)
			}
		})
	}
}

func TestCropToBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", ""},
		{"", "a", "b"},
		{"", "1"},
	}

	got := cropToBounds(rows)
	if len(got) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(got))
	}
	if len(got[0]) != 2 || got[0][0] != "a" || got[0][1] != "b" {
		t.Errorf("Unexpected header row %v", got[0])
	}
	if len(got[1]) != 1 || got[1][0] != "1" {
		t.Errorf("Unexpected data row %v", got[1])
	}

	if cropToBounds([][]string{{"", ""}}) != nil {
		t.Error("Expected nil for blank grid")
	}
}
