// Package service orchestrates syncing from the activity provider and
// querying records for display.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"stride/internal/analysis"
	"stride/internal/distances"
	"stride/internal/store"
	"stride/internal/strava"
)

const (
	lastSyncKey       = "last_activity_sync"
	samplesBatchLimit = 200
	effortsScanLimit  = 5000
	minSamplesForScan = 2
)

// SyncService orchestrates pulling data from the provider and
// extracting best-effort segments from it.
type SyncService struct {
	client *strava.Client
	db     *store.DB
	policy analysis.ValidationPolicy
	log    zerolog.Logger
}

// NewSyncService creates a sync service
func NewSyncService(client *strava.Client, db *store.DB, policy analysis.ValidationPolicy, log zerolog.Logger) *SyncService {
	return &SyncService{
		client: client,
		db:     db,
		policy: policy,
		log:    log,
	}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Phase           string // "activities", "samples", "efforts"
	Total           int
	Completed       int
	CurrentActivity string
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	ActivitiesFetched int
	ActivitiesStored  int
	SamplesFetched    int
	EffortsComputed   int
	ActivitiesSkipped int
	Errors            []error
}

// SyncAll performs a full sync: activity summaries, then raw samples,
// then best-effort extraction. Per-activity failures are logged and
// skipped; they never abort the batch.
func (s *SyncService) SyncAll(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}

	if err := s.syncActivities(ctx, progress, result); err != nil {
		return result, fmt.Errorf("syncing activities: %w", err)
	}

	if err := s.syncSamples(ctx, progress, result); err != nil {
		return result, fmt.Errorf("syncing samples: %w", err)
	}

	if err := s.ComputeEfforts(ctx, progress, result); err != nil {
		return result, fmt.Errorf("computing best efforts: %w", err)
	}

	return result, nil
}

// syncActivities fetches new activity summaries since the last sync.
func (s *SyncService) syncActivities(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	var after time.Time
	if v, err := s.db.GetSyncState(lastSyncKey); err == nil && v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			after = t
		}
	}

	activities, err := s.client.GetAllActivities(ctx, after, func(fetched int) {
		if progress != nil {
			progress <- SyncProgress{Phase: "activities", Completed: fetched}
		}
	})
	if err != nil {
		return err
	}
	result.ActivitiesFetched = len(activities)

	for _, a := range activities {
		if a.Type != "Run" {
			continue
		}
		if err := s.db.UpsertActivity(convertActivity(a)); err != nil {
			s.log.Error().Err(err).Int64("activity_id", a.ID).Msg("storing activity")
			result.Errors = append(result.Errors, fmt.Errorf("storing activity %d: %w", a.ID, err))
			continue
		}
		result.ActivitiesStored++
	}

	return s.db.SetSyncState(lastSyncKey, time.Now().UTC().Format(time.RFC3339))
}

// syncSamples fetches raw sample streams for activities that don't
// have them yet.
func (s *SyncService) syncSamples(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	activities, err := s.db.GetActivitiesNeedingSamples(samplesBatchLimit)
	if err != nil {
		return err
	}

	for i, a := range activities {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if progress != nil {
			progress <- SyncProgress{
				Phase:           "samples",
				Total:           len(activities),
				Completed:       i,
				CurrentActivity: a.Name,
			}
		}

		streams, err := s.client.GetActivityStreams(ctx, a.ID)
		if err != nil {
			s.log.Error().Err(err).Int64("activity_id", a.ID).Msg("fetching samples")
			result.Errors = append(result.Errors, fmt.Errorf("fetching samples for %d: %w", a.ID, err))
			continue
		}

		points := convertSamples(a.ID, streams)
		if err := s.db.SaveSamples(a.ID, points); err != nil {
			s.log.Error().Err(err).Int64("activity_id", a.ID).Msg("saving samples")
			result.Errors = append(result.Errors, fmt.Errorf("saving samples for %d: %w", a.ID, err))
			continue
		}
		if err := s.db.MarkSamplesSynced(a.ID); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("marking samples synced for %d: %w", a.ID, err))
			continue
		}
		result.SamplesFetched++
	}

	return nil
}

// ComputeEfforts extracts best-effort segments for every activity that
// has samples but no recorded efforts yet. Insertion is
// insert-if-absent, so re-running never duplicates or overwrites.
func (s *SyncService) ComputeEfforts(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	custom, err := s.db.ListCustomDistances()
	if err != nil {
		return fmt.Errorf("listing custom distances: %w", err)
	}
	targets, err := distances.Merge(custom)
	if err != nil {
		return fmt.Errorf("merging target distances: %w", err)
	}

	activities, err := s.db.ListActivities(effortsScanLimit, 0)
	if err != nil {
		return err
	}

	for i, a := range activities {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if progress != nil {
			progress <- SyncProgress{
				Phase:           "efforts",
				Total:           len(activities),
				Completed:       i,
				CurrentActivity: a.Name,
			}
		}

		if !a.SamplesSynced {
			continue
		}

		done, err := s.db.HasBestEfforts(a.ID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("checking efforts for %d: %w", a.ID, err))
			continue
		}
		if done {
			continue
		}

		n, err := s.extractEfforts(&a, targets)
		if err != nil {
			// Bad data in one activity must not abort the batch.
			s.log.Warn().Err(err).Int64("activity_id", a.ID).Msg("skipping activity")
			result.ActivitiesSkipped++
			if !errors.Is(err, analysis.ErrMissingStreamData) && !errors.Is(err, analysis.ErrMalformedSampleData) {
				result.Errors = append(result.Errors, err)
			}
			continue
		}
		result.EffortsComputed += n
	}

	return nil
}

// extractEfforts runs the segment finder over one activity's samples
// and persists the results. Returns the number of efforts inserted.
func (s *SyncService) extractEfforts(a *store.Activity, targets []distances.TargetDistance) (int, error) {
	points, err := s.db.GetSamples(a.ID)
	if err != nil {
		return 0, fmt.Errorf("getting samples for %d: %w", a.ID, err)
	}
	if len(points) < minSamplesForScan {
		return 0, nil
	}

	stream, err := toSampleStream(a.ID, points).Validate(s.policy)
	if err != nil {
		return 0, err
	}

	segments, err := analysis.FindBestSegments(stream, targets)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, seg := range segments {
		ok, err := s.db.InsertBestEffortIfAbsent(toBestEffort(a, seg))
		if err != nil {
			return inserted, fmt.Errorf("saving effort %q for %d: %w", seg.Label, a.ID, err)
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

// RateLimitStatus returns the current provider rate limit status
func (s *SyncService) RateLimitStatus() (shortRemaining, dailyRemaining int) {
	return s.client.RateLimitStatus()
}

// convertActivity converts a provider activity to a store activity
func convertActivity(a strava.Activity) *store.Activity {
	activity := &store.Activity{
		ID:                 a.ID,
		AthleteID:          a.Athlete.ID,
		Name:               a.Name,
		Type:               a.Type,
		StartDate:          a.StartDate,
		Timezone:           a.Timezone,
		Distance:           a.Distance,
		MovingTime:         a.MovingTime,
		ElapsedTime:        a.ElapsedTime,
		TotalElevationGain: a.TotalElevationGain,
		SamplesSynced:      false,
	}

	if a.AverageHeartrate > 0 {
		hr := a.AverageHeartrate
		activity.AverageHeartrate = &hr
	}
	if a.AverageCadence > 0 {
		cad := a.AverageCadence
		activity.AverageCadence = &cad
	}
	if a.AverageWatts > 0 {
		w := a.AverageWatts
		activity.AveragePower = &w
	}

	return activity
}

// convertSamples converts provider streams to store sample points
func convertSamples(activityID int64, s *strava.Streams) []store.SamplePoint {
	n := s.Len()
	if n == 0 {
		return nil
	}

	points := make([]store.SamplePoint, n)
	for i := 0; i < n; i++ {
		p := store.SamplePoint{
			ActivityID: activityID,
			TimeOffset: s.Time.Data[i],
		}

		if s.Distance != nil && i < len(s.Distance.Data) {
			d := s.Distance.Data[i]
			p.Distance = &d
		}
		if s.LatLng != nil && i < len(s.LatLng.Data) {
			lat := s.LatLng.Data[i][0]
			lng := s.LatLng.Data[i][1]
			p.Lat = &lat
			p.Lng = &lng
		}
		if s.Altitude != nil && i < len(s.Altitude.Data) {
			alt := s.Altitude.Data[i]
			p.Altitude = &alt
		}
		if s.Heartrate != nil && i < len(s.Heartrate.Data) {
			hr := s.Heartrate.Data[i]
			p.Heartrate = &hr
		}
		if s.Cadence != nil && i < len(s.Cadence.Data) {
			cad := s.Cadence.Data[i]
			p.Cadence = &cad
		}
		if s.Watts != nil && i < len(s.Watts.Data) {
			w := s.Watts.Data[i]
			p.Power = &w
		}

		points[i] = p
	}

	return points
}

// toSampleStream builds an analysis stream from stored sample points.
// Points without distance data carry no timing information for segment
// search and are dropped here, before validation.
func toSampleStream(activityID int64, points []store.SamplePoint) *analysis.SampleStream {
	stream := &analysis.SampleStream{
		ActivityID: activityID,
		Time:       make([]int, 0, len(points)),
		Distance:   make([]float64, 0, len(points)),
		Position:   make([]*analysis.Position, 0, len(points)),
	}

	for _, p := range points {
		if p.Distance == nil {
			continue
		}
		var pos *analysis.Position
		if p.Lat != nil && p.Lng != nil {
			pos = &analysis.Position{Lat: *p.Lat, Lng: *p.Lng}
		}
		stream.Time = append(stream.Time, p.TimeOffset)
		stream.Distance = append(stream.Distance, *p.Distance)
		stream.Position = append(stream.Position, pos)
	}

	return stream
}

// toBestEffort converts a found segment into its persisted form.
func toBestEffort(a *store.Activity, seg analysis.Segment) *store.BestEffort {
	be := &store.BestEffort{
		ActivityID:      a.ID,
		DistanceLabel:   seg.Label,
		TargetMeters:    seg.TargetMeters,
		DurationSeconds: seg.Duration,
		CoveredMeters:   seg.Covered(),
		StartIndex:      seg.StartIndex,
		EndIndex:        seg.EndIndex,
		StartOffset:     seg.StartTime,
		EndOffset:       seg.EndTime,
		AchievedAt:      a.StartDate,
	}
	if seg.StartPosition != nil {
		be.StartLat = &seg.StartPosition.Lat
		be.StartLng = &seg.StartPosition.Lng
	}
	if seg.EndPosition != nil {
		be.EndLat = &seg.EndPosition.Lat
		be.EndLng = &seg.EndPosition.Lng
	}
	return be
}
