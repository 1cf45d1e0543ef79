package api

import (
	"fmt"
	"maps"

	"github.com/edalrymple/horizon/internal/models"
)

// The catalog methods below each compose one endpoint path, merge their
// required query parameters with the caller's extras, and delegate to get.
// None of them validate inputs locally; invalid rovers, cameras, dates and
// ids are rejected by the API itself.

// merge overlays required parameters onto the caller-supplied extras. The
// required entries win on key collision.
func merge(extra Params, required Params) Params {
	out := Params{}
	maps.Copy(out, extra)
	maps.Copy(out, required)
	return out
}

// APOD retrieves NASA's astronomy picture of the day.
// Optional extras: date, hd.
func (c *Client) APOD(extra Params) (*Response, error) {
	return c.get(models.PathAPOD, extra)
}

// MartianSol retrieves Mars rover photos taken on the given martian sol.
// Optional extras: camera, page.
func (c *Client) MartianSol(rover string, sol int, extra Params) (*Response, error) {
	path := fmt.Sprintf(models.PathRoverPhotos, rover)
	return c.get(path, merge(extra, Params{"sol": sol}))
}

// EarthDate retrieves Mars rover photos taken on the given earth date
// (YYYY-MM-DD). Optional extras: camera, page.
func (c *Client) EarthDate(rover string, date string, extra Params) (*Response, error) {
	path := fmt.Sprintf(models.PathRoverPhotos, rover)
	return c.get(path, merge(extra, Params{"earth_date": date}))
}

// Imagery retrieves the Landsat 8 image for a location and date.
// Optional extras: lat, lon, dim, date, cloud_score.
func (c *Client) Imagery(extra Params) (*Response, error) {
	return c.get(models.PathImagery, extra)
}

// Assets retrieves the dates and asset names of available Landsat 8 imagery
// for a location. Optional extras: lat, lon, begin, end.
func (c *Client) Assets(extra Params) (*Response, error) {
	return c.get(models.PathAssets, extra)
}

// NeoFeed retrieves asteroids by closest approach date within the given
// range (YYYY-MM-DD).
func (c *Client) NeoFeed(startDate, endDate string) (*Response, error) {
	return c.get(models.PathNeoFeed, Params{"start_date": startDate, "end_date": endDate})
}

// NeoFeedToday retrieves asteroids approaching Earth today.
func (c *Client) NeoFeedToday() (*Response, error) {
	return c.get(models.PathNeoToday, nil)
}

// NeoLookup retrieves a specific asteroid by its id.
func (c *Client) NeoLookup(asteroidID string) (*Response, error) {
	path := fmt.Sprintf(models.PathNeoLookup, asteroidID)
	return c.get(path, nil)
}

// NeoBrowse pages through the overall asteroid data set.
// Optional extras: page, size.
func (c *Client) NeoBrowse(extra Params) (*Response, error) {
	return c.get(models.PathNeoBrowse, extra)
}

// NeoStats retrieves near-earth-object data set statistics.
func (c *Client) NeoStats() (*Response, error) {
	return c.get(models.PathNeoStats, nil)
}

// Patents retrieves NASA patents. Optional extras: query, concept_tags,
// limit.
func (c *Client) Patents(extra Params) (*Response, error) {
	return c.get(models.PathPatents, extra)
}

// Sounds retrieves space sounds hosted on SoundCloud. Optional extras: q,
// limit.
func (c *Client) Sounds(extra Params) (*Response, error) {
	return c.get(models.PathSounds, extra)
}
