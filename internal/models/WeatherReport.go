package models

// WeatherReport is the full forecast payload. Only Currently.Icon is read
// today; the rest is kept so future consumers don't need a second fetch.
type WeatherReport struct {
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Timezone  string            `json:"timezone"`
	Currently CurrentConditions `json:"currently"`
}

// CurrentConditions is the present-moment snapshot keyed by a short icon
// code ("clear-day", "rain", ...).
type CurrentConditions struct {
	Time                int64   `json:"time"`
	Summary             string  `json:"summary"`
	Icon                string  `json:"icon"`
	PrecipIntensity     float64 `json:"precipIntensity"`
	PrecipProbability   float64 `json:"precipProbability"`
	Temperature         float64 `json:"temperature"`
	ApparentTemperature float64 `json:"apparentTemperature"`
	Humidity            float64 `json:"humidity"`
	WindSpeed           float64 `json:"windSpeed"`
	WindBearing         float64 `json:"windBearing"`
	CloudCover          float64 `json:"cloudCover"`
	Pressure            float64 `json:"pressure"`
	Visibility          float64 `json:"visibility"`
}
