package paging

import (
	"errors"
	"reflect"
	"testing"
)

func TestComputeRanges(t *testing.T) {
	tests := []struct {
		name         string
		totalRecords int
		pageSize     int
		expected     []Range
	}{
		{
			name:         "EmptyRecordSetSentinel",
			totalRecords: 0,
			pageSize:     10,
			expected:     []Range{{0, 0}},
		},
		{
			name:         "PartialLastPage",
			totalRecords: 23,
			pageSize:     10,
			expected:     []Range{{0, 10}, {10, 20}, {20, 23}},
		},
		{
			name:         "ExactMultiple",
			totalRecords: 20,
			pageSize:     10,
			expected:     []Range{{0, 10}, {10, 20}},
		},
		{
			name:         "FewerRecordsThanPageSize",
			totalRecords: 3,
			pageSize:     10,
			expected:     []Range{{0, 3}},
		},
		{
			name:         "PageSizeOne",
			totalRecords: 3,
			pageSize:     1,
			expected:     []Range{{0, 1}, {1, 2}, {2, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges, err := ComputeRanges(tt.totalRecords, tt.pageSize)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !reflect.DeepEqual(ranges, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, ranges)
			}
		})
	}
}

func TestComputeRanges_InvalidArguments(t *testing.T) {
	tests := []struct {
		name         string
		totalRecords int
		pageSize     int
	}{
		{"ZeroPageSize", 10, 0},
		{"NegativePageSize", 10, -5},
		{"NegativeTotal", -1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges, err := ComputeRanges(tt.totalRecords, tt.pageSize)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
			if ranges != nil {
				t.Errorf("Expected nil ranges, got %v", ranges)
			}
		})
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		totalRecords int
		pageSize     int
		expected     int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{23, 10, 3},
	}

	for _, tt := range tests {
		count, err := PageCount(tt.totalRecords, tt.pageSize)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if count != tt.expected {
			t.Errorf("PageCount(%d, %d): expected %d, got %d", tt.totalRecords, tt.pageSize, tt.expected, count)
		}
	}

	if _, err := PageCount(5, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero page size, got %v", err)
	}
}

func TestRangeLen(t *testing.T) {
	if got := (Range{Start: 20, End: 23}).Len(); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}
