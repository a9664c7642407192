package services

import (
	"math"
	"strconv"
	"time"
)

// Period is a reporting window used by order statistics and the dashboard.
type Period string

const (
	Week    Period = "week"
	Month   Period = "month"
	Quarter Period = "quarter"
	Year    Period = "year"
)

// ParsePeriod maps raw input to a Period. Unknown or empty values fall back to Month.
func ParsePeriod(s string) Period {
	switch p := Period(s); p {
	case Week, Month, Quarter, Year:
		return p
	default:
		return Month
	}
}

// Start returns the beginning of the window that ends at now, in UTC:
//   - week: exactly seven days before now
//   - month: midnight of the first day of the current month
//   - quarter: midnight of the first day of the current three-month block
//   - year: midnight of January 1
func (p Period) Start(now time.Time) time.Time {
	now = now.UTC()
	switch p {
	case Week:
		return now.Add(-7 * 24 * time.Hour)
	case Quarter:
		firstMonth := (int(now.Month())-1)/3*3 + 1
		return time.Date(now.Year(), time.Month(firstMonth), 1, 0, 0, 0, 0, time.UTC)
	case Year:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// Window is a reporting time range between From and To.
type Window struct {
	From time.Time
	To   time.Time
}

// CurrentAndPrevious returns the current window [start, now] and the preceding
// window of equal length that ends where the current one starts.
func (p Period) CurrentAndPrevious(now time.Time) (Window, Window) {
	now = now.UTC()
	start := p.Start(now)
	length := now.Sub(start)
	return Window{From: start, To: now}, Window{From: start.Add(-length), To: start}
}

// Trend is the direction of a period-over-period change.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Comparison is the change of a metric between two periods.
type Comparison struct {
	Current  float64
	Previous float64
	// Change is the percentage change rounded to one decimal.
	Change float64
	Trend  Trend
	// measured is false when there was no previous value and Change is a fixed 100 or 0.
	measured bool
}

// Compare computes (current - previous) / previous × 100 rounded to one decimal.
// When previous is zero the change is 100 if current is positive and 0 otherwise.
// The trend is up for any change that is not negative.
func Compare(current, previous float64) Comparison {
	var (
		change   float64
		measured bool
	)
	switch {
	case previous > 0:
		change = RoundToOneDecimal((current - previous) / previous * 100)
		measured = true
	case current > 0:
		change = 100
	}

	trend := TrendUp
	if change < 0 {
		trend = TrendDown
	}

	return Comparison{Current: current, Previous: previous, Change: change, Trend: trend, measured: measured}
}

// ChangeLabel renders the change as shown on the dashboard. A measured change
// keeps one decimal ("+12.5%", "-30.0%", "0.0%"); without a previous value the
// label is "+100%" or "0%".
func (c Comparison) ChangeLabel() string {
	label := percentLabel(c.Change, c.measured)
	if c.Change > 0 {
		return "+" + label
	}
	return label
}

// ConversionRate is orders per distinct retailer × 100, rounded to one decimal.
// It is zero when there are no retailers.
func ConversionRate(orders, retailers int) float64 {
	if retailers == 0 {
		return 0
	}
	return RoundToOneDecimal(float64(orders) / float64(retailers) * 100)
}

// ConversionRateLabel renders ConversionRate as shown on the dashboard:
// "150.0%", or "0%" when there are no retailers.
func ConversionRateLabel(orders, retailers int) string {
	return percentLabel(ConversionRate(orders, retailers), retailers > 0)
}

func percentLabel(v float64, oneDecimal bool) string {
	if oneDecimal {
		return strconv.FormatFloat(v, 'f', 1, 64) + "%"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// RoundToOneDecimal rounds half away from zero.
func RoundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
