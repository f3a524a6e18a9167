package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemesterGPA(t *testing.T) {
	tests := []struct {
		name  string
		marks []float64
		want  float64
	}{
		{"two subjects", []float64{80, 90}, 8.5},
		{"single perfect score", []float64{100}, 10.0},
		{"single subject", []float64{73}, 7.3},
		{"repeating mean rounds to two decimals", []float64{70, 80, 95}, 8.17},
		{"all zero", []float64{0, 0}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SemesterGPA(tt.marks), 0.0001)
		})
	}
}

func TestCumulativeGPA(t *testing.T) {
	tests := []struct {
		name string
		gpas []float64
		want float64
	}{
		{"two semesters", []float64{8.5, 10.0}, 9.25},
		{"single semester equals its gpa", []float64{7.3}, 7.3},
		{"rounds to two decimals", []float64{8.5, 10.0, 7.3}, 8.6},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CumulativeGPA(tt.gpas), 0.0001)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 8.17, Round2(8.16666), 0.0001)
	assert.InDelta(t, 8.5, Round2(8.5), 0.0001)
	// Half rounds away from zero
	assert.InDelta(t, 0.13, Round2(0.125), 0.0001)
}

func TestValidMarks(t *testing.T) {
	assert.True(t, ValidMarks(0))
	assert.True(t, ValidMarks(100))
	assert.True(t, ValidMarks(55.5))
	assert.False(t, ValidMarks(-0.01))
	assert.False(t, ValidMarks(100.01))
}
