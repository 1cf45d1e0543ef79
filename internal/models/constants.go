// Package models contains endpoint constants and static reference data for
// the NASA Open APIs.
package models

// BaseURL is the host every request is issued against.
const BaseURL = "https://api.nasa.gov"

// DemoKey is the shared public API key NASA hands out for evaluation. It is
// heavily rate limited; real usage should configure a personal key.
const DemoKey = "DEMO_KEY"

// API versions baked into the endpoint paths.
const (
	NeoWSVersion           = "1"
	MarsRoverPhotosVersion = "1"
)

// Endpoint path templates. Templates with a %s placeholder are completed by
// the catalog methods before the request is built.
const (
	PathAPOD        = "planetary/apod"
	PathRoverPhotos = "mars-photos/api/v" + MarsRoverPhotosVersion + "/rovers/%s/photos"
	PathImagery     = "planetary/earth/imagery"
	PathAssets      = "planetary/earth/assets"
	PathNeoFeed     = "neo/rest/v" + NeoWSVersion + "/feed"
	PathNeoToday    = "neo/rest/v" + NeoWSVersion + "/feed/today"
	PathNeoLookup   = "neo/rest/v" + NeoWSVersion + "/neo/%s"
	PathNeoBrowse   = "neo/rest/v" + NeoWSVersion + "/neo/browse/"
	PathNeoStats    = "neo/rest/v" + NeoWSVersion + "/stats"
	PathPatents     = "patents/content"
	PathSounds      = "planetary/sounds"
)

// RateLimitHeader is the response header carrying the remaining request quota.
const RateLimitHeader = "X-RateLimit-Remaining"

// RateLimitUnknown is the client's rate-limit value before any call succeeds.
const RateLimitUnknown = "Unknown"
