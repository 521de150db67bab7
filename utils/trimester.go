package utils

import (
	"errors"
	"math"
	"time"
)

var ErrBeforePregnancyStart = errors.New("date cannot be before pregnancy start date")

// diffDaysCeil counts whole days from start to asOf, rounding partial days up.
func diffDaysCeil(start, asOf time.Time) int {
	return int(math.Ceil(asOf.Sub(start).Hours() / 24))
}

// CalculateTrimester maps the pregnancy start date to the trimester at asOf.
// Day 0-83 is trimester 1, day 84-181 trimester 2, everything later trimester 3.
// An asOf before the start date is a hard error, not clamped.
func CalculateTrimester(startDate, asOf time.Time) (int, error) {
	days := diffDaysCeil(startDate, asOf)
	if days < 0 {
		return 0, ErrBeforePregnancyStart
	}
	switch {
	case days <= 83:
		return 1, nil
	case days <= 181:
		return 2, nil
	default:
		return 3, nil
	}
}

// CalculatePregnancyWeek returns whole gestational weeks, rounded up.
// Unlike CalculateTrimester it clamps a negative diff to 0 instead of
// failing; the dashboard uses it on its own for not-yet-started pregnancies.
func CalculatePregnancyWeek(startDate, asOf time.Time) int {
	days := diffDaysCeil(startDate, asOf)
	if days < 0 {
		return 0
	}
	return int(math.Ceil(float64(days) / 7))
}

func TrimesterName(trimester int) string {
	switch trimester {
	case 1:
		return "Trimester Pertama"
	case 2:
		return "Trimester Kedua"
	case 3:
		return "Trimester Ketiga"
	default:
		return "Unknown"
	}
}

type PregnancyInfo struct {
	Trimester     int    `json:"trimester"`
	Week          int    `json:"week"`
	TrimesterName string `json:"trimesterName"`
}

func GetPregnancyInfo(startDate, asOf time.Time) (PregnancyInfo, error) {
	trimester, err := CalculateTrimester(startDate, asOf)
	if err != nil {
		return PregnancyInfo{}, err
	}
	return PregnancyInfo{
		Trimester:     trimester,
		Week:          CalculatePregnancyWeek(startDate, asOf),
		TrimesterName: TrimesterName(trimester),
	}, nil
}

// IsActivePregnancy reports whether a pregnancy without an end date is
// still within the typical 40-week (280 day) duration as of asOf.
func IsActivePregnancy(startDate time.Time, endDate *time.Time, asOf time.Time) bool {
	if endDate != nil {
		return false
	}
	days := diffDaysCeil(startDate, asOf)
	return days >= 0 && days <= 280
}
