// Package report builds canonical weather reports from raw provider
// payloads, and carries the demo dataset used when the provider is
// unreachable.
package report

import (
	"time"

	"github.com/tidwall/gjson"

	"github.com/huangwb/tianqi/internal/models"
)

// timeLayout is the human-readable stamp the provider uses for update
// times.
const timeLayout = "2006-01-02 15:04"

// FromProvider normalizes a raw gxweather payload into a Report for city.
// Current-condition values that are missing, null, or empty become
// models.NA; forecast fields default to empty strings; at most
// models.MaxForecastDays forecast entries are kept. The payload is treated
// as untrusted: unexpected shapes degrade to sentinels, never to a panic.
func FromProvider(body []byte, city string, now time.Time) models.Report {
	rep := models.Report{
		City:       city,
		UpdateTime: now.Format(timeLayout),
		Current: models.Current{
			Temp:       currentField(body, "temp"),
			FeelsLike:  currentField(body, "feels_like"),
			Weather:    currentField(body, "weather"),
			Humidity:   currentField(body, "humidity"),
			Wind:       currentField(body, "wind"),
			AQI:        currentField(body, "aqi"),
			Pressure:   currentField(body, "pressure"),
			Visibility: currentField(body, "visibility"),
		},
		Forecast: make([]models.DayForecast, 0, models.MaxForecastDays),
	}

	if fc := gjson.GetBytes(body, "forecast"); fc.IsArray() {
		days := fc.Array()
		if len(days) > models.MaxForecastDays {
			days = days[:models.MaxForecastDays]
		}
		for _, day := range days {
			rep.Forecast = append(rep.Forecast, models.DayForecast{
				Date:     day.Get("date").String(),
				Weather:  day.Get("weather").String(),
				TempLow:  day.Get("temp_low").String(),
				TempHigh: day.Get("temp_high").String(),
				Wind:     day.Get("wind").String(),
			})
		}
	}
	return rep
}

// currentField reads current.<key>, substituting the sentinel for missing,
// null, or empty values. gjson renders numeric values in their canonical
// short form, so a JSON 14 and a JSON "14" normalize identically.
func currentField(body []byte, key string) string {
	v := gjson.GetBytes(body, "current."+key)
	if s := v.String(); v.Exists() && s != "" {
		return s
	}
	return models.NA
}
