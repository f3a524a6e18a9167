// Package grading holds the GPA arithmetic. GPA and CGPA are pure functions
// of the recorded marks and are recomputed on every write, never stored
// independently of their source data.
package grading

import "math"

// MinMarks and MaxMarks bound a valid subject mark.
const (
	MinMarks = 0
	MaxMarks = 100
)

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidMarks reports whether a mark is inside the allowed range.
func ValidMarks(marks float64) bool {
	return marks >= MinMarks && marks <= MaxMarks
}

// SemesterGPA computes the GPA of one semester from its subject marks:
// round(mean(marks)/10, 2). Returns 0 for an empty mark list.
func SemesterGPA(marks []float64) float64 {
	if len(marks) == 0 {
		return 0
	}
	var sum float64
	for _, m := range marks {
		sum += m
	}
	mean := sum / float64(len(marks))
	return Round2(mean / 10)
}

// CumulativeGPA computes the CGPA from all semester GPAs:
// round(mean(gpas), 2). Returns 0 for an empty list.
func CumulativeGPA(gpas []float64) float64 {
	if len(gpas) == 0 {
		return 0
	}
	var sum float64
	for _, g := range gpas {
		sum += g
	}
	return Round2(sum / float64(len(gpas)))
}
