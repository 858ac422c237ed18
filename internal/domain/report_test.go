package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDateMonday  = "2021-07-05"
	testDateTuesday = "2021-07-06"
)

// sampleTable mirrors testdata/weather_sample.csv: the lowest reading (9.4°C)
// occurs twice, first on Friday and again on Wednesday.
func sampleTable() WeatherTable {
	return WeatherTable{
		{Date: "2021-07-02T07:00:00+08:00", MinTempF: 49, MaxTempF: 67},
		{Date: "2021-07-03T07:00:00+08:00", MinTempF: 57, MaxTempF: 68},
		{Date: "2021-07-04T07:00:00+08:00", MinTempF: 56, MaxTempF: 62},
		{Date: "2021-07-05T07:00:00+08:00", MinTempF: 55, MaxTempF: 61},
		{Date: "2021-07-06T07:00:00+08:00", MinTempF: 53, MaxTempF: 62},
		{Date: "2021-07-07T07:00:00+08:00", MinTempF: 49, MaxTempF: 63},
	}
}

func TestGenerateOverview(t *testing.T) {
	got, err := GenerateOverview(sampleTable())
	require.NoError(t, err)

	want := "6 Day Overview\n" +
		"  The lowest temperature will be 9.4°C, and will occur on Wednesday 07 July 2021.\n" +
		"  The highest temperature will be 20.0°C, and will occur on Saturday 03 July 2021.\n" +
		"  The average low this week is 11.8°C.\n" +
		"  The average high this week is 17.7°C.\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("overview mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateOverview_TwoDays(t *testing.T) {
	table := WeatherTable{
		{Date: testDateMonday, MinTempF: 9, MaxTempF: 19},
		{Date: testDateTuesday, MinTempF: 10.5, MaxTempF: 20},
	}

	got, err := GenerateOverview(table)
	require.NoError(t, err)

	// Lows -12.8, -11.9 average -12.35 (binary -12.350000000000001) -> -12.4.
	// Highs -7.2, -6.7 average -6.95 (binary just below) -> -7.0.
	want := "2 Day Overview\n" +
		"  The lowest temperature will be -12.8°C, and will occur on Monday 05 July 2021.\n" +
		"  The highest temperature will be -6.7°C, and will occur on Tuesday 06 July 2021.\n" +
		"  The average low this week is -12.4°C.\n" +
		"  The average high this week is -7.0°C.\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("overview mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateOverview_SingleDay(t *testing.T) {
	got, err := GenerateOverview(WeatherTable{{Date: testDateTuesday, MinTempF: 32, MaxTempF: 212}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "1 Day Overview\n"))
	assert.Contains(t, got, "lowest temperature will be 0.0°C, and will occur on Tuesday 06 July 2021.")
	assert.Contains(t, got, "highest temperature will be 100.0°C, and will occur on Tuesday 06 July 2021.")
}

func TestGenerateOverview_ExtremumDateFromSameRow(t *testing.T) {
	// The lowest minimum and the highest maximum sit on different rows, and
	// each row's other field is unremarkable.
	table := WeatherTable{
		{Date: "2021-07-01", MinTempF: 50, MaxTempF: 90},
		{Date: "2021-07-02", MinTempF: 30, MaxTempF: 60},
		{Date: "2021-07-03", MinTempF: 55, MaxTempF: 70},
	}

	got, err := GenerateOverview(table)
	require.NoError(t, err)
	assert.Contains(t, got, "lowest temperature will be -1.1°C, and will occur on Friday 02 July 2021.")
	assert.Contains(t, got, "highest temperature will be 32.2°C, and will occur on Thursday 01 July 2021.")
}

func TestGenerateOverview_EmptyTable(t *testing.T) {
	_, err := GenerateOverview(nil)
	require.ErrorIs(t, err, ErrEmptyTable)

	_, err = GenerateOverview(WeatherTable{})
	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestGenerateOverview_BadDate(t *testing.T) {
	_, err := GenerateOverview(WeatherTable{{Date: "not-a-date", MinTempF: 40, MaxTempF: 50}})
	require.Error(t, err)

	var fe *FormatError
	assert.True(t, errors.As(err, &fe))
}

func TestGenerateDailySummary(t *testing.T) {
	table := WeatherTable{
		{Date: testDateMonday, MinTempF: 9, MaxTempF: 19},
		{Date: testDateTuesday, MinTempF: 10.5, MaxTempF: 20},
	}

	got, err := GenerateDailySummary(table)
	require.NoError(t, err)

	want := "---- Monday 05 July 2021 ----\n" +
		"  Minimum Temperature: -12.8°C\n" +
		"  Maximum Temperature: -7.2°C\n" +
		"\n" +
		"---- Tuesday 06 July 2021 ----\n" +
		"  Minimum Temperature: -11.9°C\n" +
		"  Maximum Temperature: -6.7°C\n" +
		"\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("daily summary mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateDailySummary_SampleBlocks(t *testing.T) {
	got, err := GenerateDailySummary(sampleTable())
	require.NoError(t, err)

	blocks := strings.Split(strings.TrimSuffix(got, "\n\n"), "\n\n")
	require.Len(t, blocks, 6)
	assert.Equal(t, "---- Friday 02 July 2021 ----\n  Minimum Temperature: 9.4°C\n  Maximum Temperature: 19.4°C", blocks[0])
	assert.Equal(t, "---- Wednesday 07 July 2021 ----\n  Minimum Temperature: 9.4°C\n  Maximum Temperature: 17.2°C", blocks[5])
}

func TestGenerateDailySummary_ConvertsOnce(t *testing.T) {
	// 212°F converted twice would be 100 -> 37.8; once is 100.0.
	got, err := GenerateDailySummary(WeatherTable{{Date: testDateTuesday, MinTempF: 32, MaxTempF: 212}})
	require.NoError(t, err)
	assert.Contains(t, got, "  Minimum Temperature: 0.0°C\n")
	assert.Contains(t, got, "  Maximum Temperature: 100.0°C\n")
	assert.Equal(t, 1, strings.Count(got, "100.0°C"))
	assert.NotContains(t, got, "°C°C")
}

func TestGenerateDailySummary_Empty(t *testing.T) {
	got, err := GenerateDailySummary(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerateDailySummary_BadDate(t *testing.T) {
	_, err := GenerateDailySummary(WeatherTable{
		{Date: testDateMonday, MinTempF: 40, MaxTempF: 50},
		{Date: "2021-07-32", MinTempF: 40, MaxTempF: 50},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}

func TestNewReport_UsesClock(t *testing.T) {
	fakeClock := clockwork.NewFakeClockAt(time.Date(2021, time.July, 8, 6, 0, 0, 0, time.UTC))
	SetClock(fakeClock)
	t.Cleanup(func() {
		SetClock(nil)
	})

	r := NewReport(ReportDaily, sampleTable(), "body")
	assert.Equal(t, ReportDaily, r.Kind)
	assert.Equal(t, 6, r.Days)
	assert.Equal(t, "body", r.Body)
	assert.Equal(t, fakeClock.Now(), r.GeneratedAt)
}

func TestParseReportKind(t *testing.T) {
	k, err := ParseReportKind("overview")
	require.NoError(t, err)
	assert.Equal(t, ReportOverview, k)

	k, err = ParseReportKind("daily")
	require.NoError(t, err)
	assert.Equal(t, ReportDaily, k)

	_, err = ParseReportKind("weekly")
	assert.Error(t, err)
}
