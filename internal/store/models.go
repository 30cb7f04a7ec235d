package store

import "time"

// Auth represents OAuth tokens for provider API access
type Auth struct {
	AthleteID    int64
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Activity represents one recorded run
type Activity struct {
	ID                 int64
	AthleteID          int64
	Name               string
	Type               string
	StartDate          time.Time
	Timezone           string
	Distance           float64 // meters
	MovingTime         int     // seconds
	ElapsedTime        int     // seconds
	TotalElevationGain float64
	AverageHeartrate   *float64 // nullable
	AverageCadence     *float64 // nullable
	AveragePower       *float64 // nullable
	SamplesSynced      bool
}

// SamplePoint represents a single raw sample from an activity stream
type SamplePoint struct {
	ActivityID int64
	TimeOffset int      // elapsed seconds since activity start
	Distance   *float64 // cumulative meters
	Lat        *float64
	Lng        *float64
	Altitude   *float64 // meters
	Heartrate  *int     // bpm
	Cadence    *int     // spm
	Power      *int     // watts
}

// BestEffort is a persisted best-effort segment, keyed by
// (activity, distance label).
type BestEffort struct {
	ID              int64
	ActivityID      int64
	DistanceLabel   string
	TargetMeters    float64
	DurationSeconds int
	CoveredMeters   float64
	StartIndex      int
	EndIndex        int
	StartOffset     int // elapsed seconds into the activity
	EndOffset       int
	StartLat        *float64
	StartLng        *float64
	EndLat          *float64
	EndLng          *float64
	AchievedAt      time.Time // activity start date
}

// BestEffortRecord joins a best effort with the activity metadata
// needed for ranking and display.
type BestEffortRecord struct {
	BestEffort
	ActivityName     string
	RunDistance      float64
	RunDuration      int
	ElevationGain    float64
	AverageHeartrate *float64
	AverageCadence   *float64
	AveragePower     *float64
}
