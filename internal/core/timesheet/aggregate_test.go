package timesheet

import (
	"testing"

	"github.com/penwyp/go-timesheets/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func chunks(pairs ...[2]int) []model.WorkChunk {
	out := make([]model.WorkChunk, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, model.WorkChunk{Hours: p[0], Minutes: p[1]})
	}
	return out
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		chunks   []model.WorkChunk
		expected model.Totals
	}{
		{"nil input", nil, model.Totals{}},
		{"empty input", []model.WorkChunk{}, model.Totals{}},
		{"carry once", chunks([2]int{1, 45}, [2]int{0, 30}), model.Totals{Hours: 2, Minutes: 15}},
		{"no carry", chunks([2]int{3, 10}, [2]int{4, 20}), model.Totals{Hours: 7, Minutes: 30}},
		{"exactly sixty", chunks([2]int{0, 30}, [2]int{0, 30}), model.Totals{Hours: 1, Minutes: 0}},
		{"several carries", chunks([2]int{0, 59}, [2]int{0, 59}, [2]int{0, 59}), model.Totals{Hours: 2, Minutes: 57}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Aggregate(tt.chunks))
		})
	}
}

func TestAggregateMinutesAlwaysBelowSixty(t *testing.T) {
	var input []model.WorkChunk
	for i := 0; i < 200; i++ {
		input = append(input, model.WorkChunk{Hours: i % 9, Minutes: (i * 7) % 60})

		totals := Aggregate(input)
		assert.GreaterOrEqual(t, totals.Minutes, 0)
		assert.Less(t, totals.Minutes, 60)
	}
}

func TestAggregatePreservesTotalMinutes(t *testing.T) {
	input := chunks([2]int{2, 50}, [2]int{1, 40}, [2]int{0, 55}, [2]int{7, 5})

	totals := Aggregate(input)

	assert.Equal(t, (2+1+0+7)*60+50+40+55+5, totals.Hours*60+totals.Minutes)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, model.Totals{Hours: 3, Minutes: 5}, Normalize(model.Totals{Hours: 1, Minutes: 125}))
	assert.Equal(t, model.Totals{Hours: 1, Minutes: 59}, Normalize(model.Totals{Hours: 1, Minutes: 59}))
}
