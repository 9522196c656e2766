package view

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/tj/assert"
	"golang.org/x/net/html"

	"github.com/katiamach/weather-dashboard/internal/dashboard"
	"github.com/katiamach/weather-dashboard/internal/model"
)

const iconBase = "https://icons.test/img/wn"

func readySnapshot(units model.Units, intervals int) dashboard.Snapshot {
	fd := &model.ForecastData{City: model.City{Name: "Berlin", Country: "DE", Timezone: 3600}}
	for i := 0; i < intervals; i++ {
		fd.List = append(fd.List, model.WeatherData{
			Dt:      1700000000 + int64(i)*3*3600,
			Main:    model.Main{Temp: float64(10 + i)},
			Weather: []model.Condition{{Description: "scattered clouds", Icon: "03d"}},
		})
	}

	return dashboard.Snapshot{
		Status: dashboard.StatusReady,
		Units:  units,
		Weather: &model.WeatherData{
			Name:    "Berlin",
			Sys:     model.Sys{Country: "DE"},
			Main:    model.Main{Temp: 21.5, FeelsLike: 20.4, Humidity: 64, Pressure: 1012},
			Wind:    model.Wind{Speed: 3.61, Deg: 240},
			Weather: []model.Condition{{Description: "light rain", Icon: "10d"}},
		},
		Forecast:   fd,
		DistanceKm: 1.26,
	}
}

func render(t *testing.T, p *Page) *html.Node {
	t.Helper()

	assert.Nil(t, LoadTemplates())

	var buf bytes.Buffer
	assert.Nil(t, RenderPage(&buf, p))

	doc, err := html.Parse(&buf)
	assert.Nil(t, err)

	return doc
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func findAll(n *html.Node, class string) []*html.Node {
	var found []*html.Node
	if n.Type == html.ElementNode && hasClass(n, class) {
		found = append(found, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		found = append(found, findAll(c, class)...)
	}
	return found
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func TestFormatTemperature(t *testing.T) {
	cases := []struct {
		temp     float64
		units    model.Units
		expected string
	}{
		{temp: 21.5, units: model.Metric, expected: "22°C"},
		{temp: 21.49, units: model.Metric, expected: "21°C"},
		{temp: 70.9, units: model.Imperial, expected: "71°F"},
		{temp: -0.4, units: model.Metric, expected: "0°C"},
		{temp: -3.5, units: model.Imperial, expected: "-3°F"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatTemperature(tc.temp, tc.units))
	}
}

func TestRenderReady(t *testing.T) {
	doc := render(t, NewPage(readySnapshot(model.Metric, 8), iconBase))

	current := findAll(doc, "current")
	assert.Len(t, current, 1)

	temps := findAll(current[0], "temperature")
	assert.Len(t, temps, 1)
	assert.Equal(t, "22°C", text(temps[0]))

	desc := findAll(current[0], "description")
	assert.Equal(t, "Light Rain", text(desc[0]))

	body := text(current[0])
	assert.Contains(t, body, "Berlin, DE")
	assert.Contains(t, body, "20°C")
	assert.Contains(t, body, "64%")
	assert.Contains(t, body, "1012 hPa")
	assert.Contains(t, body, "3.6 m/s, 240°")
	assert.Contains(t, body, "1.3 km")
}

func TestRenderImperialSuffix(t *testing.T) {
	doc := render(t, NewPage(readySnapshot(model.Imperial, 2), iconBase))

	for _, n := range findAll(doc, "temperature") {
		assert.True(t, strings.HasSuffix(text(n), "°F"), "got %q", text(n))
	}
	assert.Contains(t, text(findAll(doc, "current")[0]), "mph")
}

func TestRenderForecastTiles(t *testing.T) {
	cases := []struct {
		name      string
		intervals int
		expected  int
	}{
		{name: "more than five", intervals: 40, expected: 5},
		{name: "exactly five", intervals: 5, expected: 5},
		{name: "fewer than five", intervals: 3, expected: 3},
		{name: "none", intervals: 0, expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := render(t, NewPage(readySnapshot(model.Metric, tc.intervals), iconBase))

			tiles := findAll(doc, "tile")
			assert.Len(t, tiles, tc.expected)

			for i, tile := range tiles {
				temp := findAll(tile, "temperature")
				assert.Equal(t, FormatTemperature(float64(10+i), model.Metric), text(temp[0]))
			}
		})
	}
}

func TestTilesOrderAndIcons(t *testing.T) {
	p := NewPage(readySnapshot(model.Metric, 6), iconBase)

	assert.Len(t, p.Tiles, ForecastTiles)
	// 1700000000 is Tue 22:13 UTC, Berlin offset is one hour
	assert.Equal(t, "Tue 23:13", p.Tiles[0].Time)
	assert.Equal(t, "Wed 02:13", p.Tiles[1].Time)
	assert.Equal(t, iconBase+"/03d@2x.png", p.Tiles[0].IconURL)
	assert.Equal(t, iconBase+"/10d@4x.png", p.Current.IconURL)
	assert.Equal(t, "Scattered Clouds", p.Tiles[0].Description)
}

func TestRenderStates(t *testing.T) {
	cases := []struct {
		name  string
		snap  dashboard.Snapshot
		class string
		text  string
	}{
		{name: "loading", snap: dashboard.Snapshot{Status: dashboard.StatusLoading}, class: "loading", text: "Loading"},
		{name: "error", snap: dashboard.Snapshot{Status: dashboard.StatusError, Error: "location not found"}, class: "error", text: "location not found"},
		{name: "empty", snap: dashboard.Snapshot{Status: dashboard.StatusEmpty}, class: "empty", text: "Search for a city"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := render(t, NewPage(tc.snap, iconBase))

			nodes := findAll(doc, tc.class)
			assert.Len(t, nodes, 1)
			assert.Contains(t, text(nodes[0]), tc.text)
			assert.Len(t, findAll(doc, "current"), 0)
			assert.Len(t, findAll(doc, "tile"), 0)
		})
	}
}

func TestRenderEscapesSearch(t *testing.T) {
	assert.Nil(t, LoadTemplates())

	var buf bytes.Buffer
	err := RenderPage(&buf, NewPage(dashboard.Snapshot{Status: dashboard.StatusEmpty, Search: `"><script>`}, iconBase))
	assert.Nil(t, err)
	assert.False(t, strings.Contains(buf.String(), `"><script>`))
}

func TestRenderDashboardFragment(t *testing.T) {
	assert.Nil(t, LoadTemplates())

	var buf bytes.Buffer
	err := RenderDashboard(&buf, NewPage(dashboard.Snapshot{Status: dashboard.StatusError, Error: "boom"}, iconBase))
	assert.Nil(t, err)
	assert.Contains(t, buf.String(), "boom")
	assert.False(t, strings.Contains(buf.String(), "<html"))
}

func TestRenderNotLoaded(t *testing.T) {
	prev := pageTmpl
	pageTmpl = nil
	t.Cleanup(func() { pageTmpl = prev })

	var buf bytes.Buffer
	assert.Equal(t, ErrTemplatesNotLoaded, RenderPage(&buf, &Page{}))
	assert.Equal(t, ErrTemplatesNotLoaded, RenderDashboard(&buf, &Page{}))
}

func TestLoadTemplatesFailure(t *testing.T) {
	prev := pageTmpl
	t.Cleanup(func() { pageTmpl = prev })

	err := loadTemplatesFromFS(fstest.MapFS{"templates/page.html": {Data: []byte("{{ .")}}, "templates")
	assert.NotNil(t, err)

	err = loadTemplatesFromFS(fstest.MapFS{}, "templates")
	assert.NotNil(t, err)
}
