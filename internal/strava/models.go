package strava

import "time"

// Activity represents an activity summary from the API
type Activity struct {
	ID                 int64     `json:"id"`
	Athlete            Athlete   `json:"athlete"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	SportType          string    `json:"sport_type"`
	StartDate          time.Time `json:"start_date"`
	Timezone           string    `json:"timezone"`
	Distance           float64   `json:"distance"`             // meters
	MovingTime         int       `json:"moving_time"`          // seconds
	ElapsedTime        int       `json:"elapsed_time"`         // seconds
	TotalElevationGain float64   `json:"total_elevation_gain"` // meters
	AverageHeartrate   float64   `json:"average_heartrate"`    // bpm
	AverageCadence     float64   `json:"average_cadence"`      // spm
	AverageWatts       float64   `json:"average_watts"`
	HasHeartrate       bool      `json:"has_heartrate"`
}

// Athlete represents an athlete (minimal info in activity response)
type Athlete struct {
	ID int64 `json:"id"`
}

// Streams represents activity stream data from the API, keyed by type
// when key_by_type=true.
type Streams struct {
	Time      *StreamData[int]        `json:"time"`
	LatLng    *StreamData[[2]float64] `json:"latlng"`
	Altitude  *StreamData[float64]    `json:"altitude"`
	Heartrate *StreamData[int]        `json:"heartrate"`
	Cadence   *StreamData[int]        `json:"cadence"`
	Watts     *StreamData[int]        `json:"watts"`
	Distance  *StreamData[float64]    `json:"distance"`
}

// StreamData represents a single stream type
type StreamData[T any] struct {
	Data         []T    `json:"data"`
	SeriesType   string `json:"series_type"`
	OriginalSize int    `json:"original_size"`
	Resolution   string `json:"resolution"`
}

// Len returns the number of samples, or 0 if the time stream is absent.
func (s *Streams) Len() int {
	if s == nil || s.Time == nil {
		return 0
	}
	return len(s.Time.Data)
}
