// Package domain turns a table of daily Fahrenheit readings into plain-text
// weather reports.
//
// # Input Data
//
// Each row of the source table carries three columns, matched by header name:
//
//	date,min,max
//	2021-07-02T07:00:00+08:00,49,67
//
// The date is an ISO-8601 calendar date, optionally with a time of day and a
// UTC offset. Only the calendar date as written is displayed; the offset is
// never applied. Temperatures are Fahrenheit, integer or decimal.
//
// # Conversion and Rounding
//
// Every displayed temperature is converted exactly once with
// (f - 32) * 5 / 9 and rounded to one decimal place. Rounding is the
// correctly-rounded decimal rendering of the float64 result with one
// fractional digit, so 31.95°F becomes -0.0 and -6.95 (as stored in binary)
// becomes -7.0. Means are rounded the same way after averaging the already
// rounded Celsius values.
//
// # Extremes
//
// [FindMin] and [FindMax] report the last index at which the extreme value
// occurs: later rows are more recent readings and win ties. Both return
// ok == false for empty input, while [Mean] fails with [ErrEmptyInput].
//
// # Report Layout
//
// Overview:
//
//	6 Day Overview
//	  The lowest temperature will be 9.4°C, and will occur on Wednesday 07 July 2021.
//	  The highest temperature will be 20.0°C, and will occur on Saturday 03 July 2021.
//	  The average low this week is 11.8°C.
//	  The average high this week is 17.7°C.
//
// Daily (one block per row, in row order):
//
//	---- Friday 02 July 2021 ----
//	  Minimum Temperature: 9.4°C
//	  Maximum Temperature: 19.4°C
//
// An empty table has no overview ([ErrEmptyTable]) and an empty daily summary.
package domain
