package aggregate

import (
	"errors"
	"reflect"
	"testing"
)

type payment struct {
	Recipient string
	Amount    int64
}

func recipientOf(p payment) string { return p.Recipient }
func amountOf(p payment) int64     { return p.Amount }

func TestTopN(t *testing.T) {
	tests := []struct {
		name     string
		records  []payment
		topK     int
		expected []Entry[int64]
	}{
		{
			name: "TopFivePlusOther",
			records: []payment{
				{"a", 10}, {"b", 8}, {"c", 6}, {"d", 4}, {"e", 2}, {"f", 1},
			},
			topK: 5,
			expected: []Entry[int64]{
				{"a", 10}, {"b", 8}, {"c", 6}, {"d", 4}, {"e", 2}, {"Other", 1},
			},
		},
		{
			name: "GroupsAccumulateBeforeRanking",
			records: []payment{
				{"x", 3}, {"y", 5}, {"x", 4}, {"z", 1},
			},
			topK: 1,
			expected: []Entry[int64]{
				{"x", 7}, {"Other", 6},
			},
		},
		{
			name:     "FewerGroupsThanTopK",
			records:  []payment{{"a", 1}, {"b", 2}},
			topK:     5,
			expected: []Entry[int64]{{"b", 2}, {"a", 1}},
		},
		{
			name:     "ExactlyTopKGroupsHasNoOther",
			records:  []payment{{"a", 1}, {"b", 2}, {"c", 3}},
			topK:     3,
			expected: []Entry[int64]{{"c", 3}, {"b", 2}, {"a", 1}},
		},
		{
			name:     "TiesKeepFirstSeenOrder",
			records:  []payment{{"late", 5}, {"early", 5}, {"small", 1}},
			topK:     2,
			expected: []Entry[int64]{{"late", 5}, {"early", 5}, {"Other", 1}},
		},
		{
			name:     "NegativeValuesPassThrough",
			records:  []payment{{"a", -4}, {"b", 2}, {"c", -1}},
			topK:     1,
			expected: []Entry[int64]{{"b", 2}, {"Other", -5}},
		},
		{
			name:     "EmptyInput",
			records:  nil,
			topK:     5,
			expected: []Entry[int64]{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := TopN(tt.records, recipientOf, amountOf, tt.topK, DefaultOtherLabel)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !reflect.DeepEqual(entries, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, entries)
			}
		})
	}
}

func TestTopN_InvalidTopK(t *testing.T) {
	for _, k := range []int{0, -1} {
		_, err := TopN([]payment{{"a", 1}}, recipientOf, amountOf, k, DefaultOtherLabel)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument for topK=%d, got %v", k, err)
		}
	}
}

func TestTopN_CustomOtherLabel(t *testing.T) {
	records := []payment{{"a", 3}, {"b", 2}, {"c", 1}}

	entries, err := TopN(records, recipientOf, amountOf, 1, "Everyone else")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	last := entries[len(entries)-1]
	if last.Key != "Everyone else" || last.Value != 3 {
		t.Errorf("Expected {Everyone else 3}, got %v", last)
	}
}

func TestTopN_FloatValues(t *testing.T) {
	records := []string{"a", "b", "a"}
	values := map[string]float64{"a": 0.25, "b": 1.5}

	entries, err := TopN(records,
		func(s string) string { return s },
		func(s string) float64 { return values[s] },
		5, DefaultOtherLabel)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []Entry[float64]{{"b", 1.5}, {"a", 0.5}}
	if !reflect.DeepEqual(entries, expected) {
		t.Errorf("Expected %v, got %v", expected, entries)
	}
}

func TestGroupSum(t *testing.T) {
	records := []payment{{"b", 1}, {"a", 2}, {"b", 3}}

	groups := GroupSum(records, recipientOf, amountOf)

	expected := []Entry[int64]{{"b", 4}, {"a", 2}}
	if !reflect.DeepEqual(groups, expected) {
		t.Errorf("Expected %v, got %v", expected, groups)
	}
}

func TestSum(t *testing.T) {
	if got := Sum([]Entry[int64]{{"a", 3}, {"b", 4}}); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
	if got := Sum[int64](nil); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}
