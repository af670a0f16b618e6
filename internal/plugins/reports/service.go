package reports

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/keyxmakerx/moodwell/internal/plugins/moods"
)

// ReportService builds mood reports.
type ReportService interface {
	Weekly(ctx context.Context, userID int64) (*WeeklyReport, error)
}

type reportService struct {
	source MoodSource
	now    func() time.Time
}

// NewReportService creates a new report service.
func NewReportService(source MoodSource) ReportService {
	return &reportService{source: source, now: time.Now}
}

// Weekly summarises the entries logged in the seven days up to now.
func (s *reportService) Weekly(ctx context.Context, userID int64) (*WeeklyReport, error) {
	to := s.now().UTC().Truncate(time.Second)
	from := to.Add(-weekWindow)

	obs, err := s.source.ObservationsSince(ctx, userID, from)
	if err != nil {
		return nil, err
	}

	report := summarise(obs)
	report.UserID = userID
	report.From = from
	report.To = to
	return report, nil
}

// summarise fills the aggregate fields of a report.
func summarise(obs []Observation) *WeeklyReport {
	r := &WeeklyReport{Entries: len(obs)}
	if len(obs) == 0 {
		r.Summary = "No moods logged in the last 7 days."
		return r
	}

	var scoreSum, intensitySum int
	counts := make(map[moods.Mood]int)
	lastSeen := make(map[moods.Mood]time.Time)
	for _, o := range obs {
		scoreSum += moods.Score(o.Mood)
		intensitySum += o.Intensity
		counts[o.Mood]++
		if o.At.After(lastSeen[o.Mood]) {
			lastSeen[o.Mood] = o.At
		}
	}

	for m := range counts {
		if r.MostFrequentMood == "" || beats(m, r.MostFrequentMood, counts, lastSeen) {
			r.MostFrequentMood = m
		}
	}

	r.AverageScore = round1(float64(scoreSum) / float64(len(obs)))
	r.AverageIntensity = round1(float64(intensitySum) / float64(len(obs)))
	r.Summary = fmt.Sprintf("Mostly %s across %s this week, average score %.1f/10 (%s).",
		r.MostFrequentMood, plural(len(obs), "entry", "entries"),
		r.AverageScore, outlook(r.AverageScore))
	return r
}

// beats reports whether a is more frequent than b. Ties go to the mood
// logged most recently, then to the higher score.
func beats(a, b moods.Mood, counts map[moods.Mood]int, lastSeen map[moods.Mood]time.Time) bool {
	if counts[a] != counts[b] {
		return counts[a] > counts[b]
	}
	if !lastSeen[a].Equal(lastSeen[b]) {
		return lastSeen[a].After(lastSeen[b])
	}
	return moods.Score(a) > moods.Score(b)
}

func outlook(avg float64) string {
	switch {
	case avg >= 8:
		return "a good week"
	case avg >= 5:
		return "a mixed week"
	default:
		return "a tough week"
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
