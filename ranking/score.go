package ranking

import "github.com/amonks/songs/data"

// Penalty is the multiplier applied to an artist's danceability term. It
// shrinks with the share of explicit songs, and by a flat amount when the
// average song is too short or too long.
func (w Weights) Penalty(stat data.ArtistYearStat) float64 {
	explicit := 1.0
	if stat.SongCount > 0 {
		explicit = 1 - float64(stat.ExplicitCount)/float64(stat.SongCount)*w.Explicit
	}
	duration := 1.0
	if stat.AvgDuration < w.MinDuration || stat.AvgDuration > w.MaxDuration {
		duration = 1 - w.Duration
	}
	return explicit * duration
}

// Score rates an artist's year. Popularity counts as-is; danceability is
// scaled to the same 0-100 range, penalized, and boosted by the number of
// songs released.
func (w Weights) Score(stat data.ArtistYearStat) float64 {
	songMultiplier := 1 + float64(stat.SongCount)*w.Song
	return stat.AvgPopularity*w.Popularity +
		stat.AvgDanceability*100*w.Danceability*w.Penalty(stat)*songMultiplier
}
