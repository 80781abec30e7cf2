package models

// NA is the placeholder substituted for current-condition values the
// provider did not send, so formatters never have to distinguish missing
// from present.
const NA = "N/A"

// MaxForecastDays caps how many forecast days a Report carries.
const MaxForecastDays = 7

// Report is the canonical weather snapshot for one city. It is built once
// per invocation, from live provider data or the demo dataset, and handed
// straight to a formatter.
type Report struct {
	City       string        `json:"city"`
	UpdateTime string        `json:"update_time"`
	Current    Current       `json:"current"`
	Forecast   []DayForecast `json:"forecast"`
}

// Current holds present-moment conditions. Every field is either NA or a
// non-empty provider value; fields are never absent.
type Current struct {
	Temp       string `json:"temp"`
	FeelsLike  string `json:"feels_like"`
	Weather    string `json:"weather"`
	Humidity   string `json:"humidity"`
	Wind       string `json:"wind"`
	AQI        string `json:"aqi"`
	Pressure   string `json:"pressure"`
	Visibility string `json:"visibility"`
}

// DayForecast is a single day in the outlook. Unlike Current, missing
// values stay empty strings.
type DayForecast struct {
	Date     string `json:"date"`
	Weather  string `json:"weather"`
	TempLow  string `json:"temp_low"`
	TempHigh string `json:"temp_high"`
	Wind     string `json:"wind"`
}

// TruncateForecast keeps at most n forecast days. Negative n clears the
// forecast; n at or beyond the current length is a no-op.
func (r *Report) TruncateForecast(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(r.Forecast) {
		r.Forecast = r.Forecast[:n]
	}
}
