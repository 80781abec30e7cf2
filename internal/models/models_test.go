package models

import "testing"

func TestTruncateForecast(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		days int
		n    int
		want int
	}{
		{"negative clamps to zero", 6, -3, 0},
		{"zero drops all", 6, 0, 0},
		{"shorter than forecast", 6, 3, 3},
		{"equal length keeps all", 6, 6, 6},
		{"beyond length keeps all", 6, 10, 6},
		{"empty forecast stays empty", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Report{Forecast: make([]DayForecast, tt.days)}
			r.TruncateForecast(tt.n)
			if len(r.Forecast) != tt.want {
				t.Errorf("len(Forecast) = %d, want %d", len(r.Forecast), tt.want)
			}
		})
	}
}

func TestTruncateForecastKeepsLeadingDays(t *testing.T) {
	t.Parallel()
	r := Report{Forecast: []DayForecast{
		{Date: "2 月 19 日"},
		{Date: "2 月 20 日"},
		{Date: "2 月 21 日"},
	}}
	r.TruncateForecast(2)
	if len(r.Forecast) != 2 {
		t.Fatalf("len(Forecast) = %d, want 2", len(r.Forecast))
	}
	if r.Forecast[0].Date != "2 月 19 日" || r.Forecast[1].Date != "2 月 20 日" {
		t.Errorf("truncation reordered days: %+v", r.Forecast)
	}
}
