package report

import (
	"time"

	"github.com/huangwb/tianqi/internal/models"
)

// Demo returns the canned report shown when every provider endpoint
// fails. The values mirror a real late-February observation for the
// default region so offline output stays plausible; only the city name
// and update time vary per invocation.
func Demo(city string, now time.Time) models.Report {
	return models.Report{
		City:       city,
		UpdateTime: now.Format(timeLayout),
		Current: models.Current{
			Temp:       "14",
			FeelsLike:  "10.8",
			Weather:    "多云",
			Humidity:   "72",
			Wind:       "东北风 2 级",
			AQI:        "63",
			Pressure:   "1010",
			Visibility: "22.86",
		},
		Forecast: []models.DayForecast{
			{Date: "2 月 19 日 (今天)", Weather: "多云", TempLow: "14", TempHigh: "23", Wind: "北风 2 级"},
			{Date: "2 月 20 日 (周五)", Weather: "多云", TempLow: "14", TempHigh: "25", Wind: "北风 2 级"},
			{Date: "2 月 21 日 (周六)", Weather: "多云转阴", TempLow: "17", TempHigh: "26", Wind: "南风 2 级"},
			{Date: "2 月 22 日 (周日)", Weather: "阴", TempLow: "19", TempHigh: "26", Wind: ""},
			{Date: "2 月 23 日 (周一)", Weather: "多云", TempLow: "19", TempHigh: "27", Wind: ""},
			{Date: "2 月 24 日 (周二)", Weather: "多云转小雨", TempLow: "17", TempHigh: "26", Wind: ""},
		},
	}
}
