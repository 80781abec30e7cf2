// Package render turns a weather report into terminal or JSON output.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/huangwb/tianqi/internal/models"
)

// weatherColumns is the display width the condition column is padded to
// in forecast lines. CJK runes occupy two columns each.
const weatherColumns = 10

// JSON renders the report as indented JSON with CJK text left as-is
// rather than \u-escaped.
func JSON(r models.Report) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Text renders the report for a terminal. When simple is true the
// forecast section is omitted and only current conditions are shown.
func Text(r models.Report, simple bool) string {
	lines := []string{
		"📍 " + r.City,
		"🌡️ 当前温度：" + r.Current.Temp + "°C",
		"🤒 体感温度：" + r.Current.FeelsLike + "°C",
		"☁️ 天气：" + r.Current.Weather,
		"💧 湿度：" + r.Current.Humidity + "%",
		"🌬️ 风向风力：" + r.Current.Wind,
		"📊 AQI: " + r.Current.AQI,
	}

	if !simple && len(r.Forecast) > 0 {
		lines = append(lines, "", "📅 未来 7 天预报:")
		for _, day := range r.Forecast {
			lines = append(lines, forecastLine(day))
		}
	}

	lines = append(lines, "", "⏰ 更新时间："+r.UpdateTime)

	return strings.Join(lines, "\n")
}

func forecastLine(day models.DayForecast) string {
	temp := fmt.Sprintf("%s℃ ~ %s℃", day.TempLow, day.TempHigh)
	warn := ""
	if strings.Contains(day.Weather, "雨") {
		warn = "⚠️"
	}
	weather := runewidth.FillRight(day.Weather, weatherColumns)
	return fmt.Sprintf("  %s  %s %s  %s %s", day.Date, weather, temp, day.Wind, warn)
}
