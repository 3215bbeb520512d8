package constants

// Centralized constants for headers, env keys, routes and log fields.
const (
	// Environment variable keys
	EnvConfigPath = "JOUST_CONFIG"
	EnvDBPath     = "JOUST_DB"
	EnvAddr       = "JOUST_ADDR"
	EnvLogLevel   = "JOUST_LOG_LEVEL"
	EnvMemory     = "JOUST_MEMORY"

	DefaultConfigPath = "./joust_config.yaml"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"
	ContentTypePNG  = "image/png"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
)

// Routes used by the backend router
const (
	RouteAPIPrefix       = "/api"
	RouteState           = "/state"
	RouteActions         = "/actions"
	RoutePreview         = "/preview"
	RouteTournaments     = "/tournaments"
	RouteCombatStart     = "/combat/start"
	RouteCombatAttack    = "/combat/attack"
	RouteCombatSkill     = "/combat/skill"
	RouteCombatDefend    = "/combat/defend"
	RouteCombatContinue  = "/combat/continue"
	RouteCombatCard      = "/combat/card.png"
	RouteRosterSelect    = "/roster/select"
	RouteRosterRest      = "/roster/rest"
	RouteReset           = "/reset"
	RouteWebsocket       = "/ws"
	RouteVersion         = "/version"
	RouteHealth          = "/healthz"
	QueryParamSkillID    = "skill_id"
	QueryParamSize       = "size"
	DefaultCardSize      = 512
	MaxCardSize          = 1024
	MinCardSize          = 64
	WebsocketWriteWaitMS = 5000
)

// Common JSON response keys
const (
	JSONKeyError      = "error"
	JSONKeyDetails    = "details"
	JSONKeyStatus     = "status"
	JSONKeyState      = "state"
	JSONKeyActions    = "actions"
	JSONKeyDamage     = "damage"
	JSONKeyMultiplier = "multiplier"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest       = "Invalid request"
	ErrInvalidSkillID       = "skill_id is required"
	ErrInvalidCardSize      = "size must be between 64 and 1024"
	ErrFailedRenderCard     = "Failed to render battle card"
	ErrFailedResetGame      = "Failed to reset game"
	ErrServiceUnavailable   = "Game session is closed"
	ErrTooManySubscribers   = "Too many live viewers"
	ErrFailedProcessCommand = "Failed to process command"
)

// Logging field names
const (
	LogFieldKey        = "key"
	LogFieldAddr       = "addr"
	LogFieldBytes      = "bytes"
	LogFieldCommand    = "command"
	LogFieldReason     = "reason"
	LogFieldTournament = "tournament_id"
	LogFieldPath       = "path"
	LogFieldRemote     = "remote"
	LogFieldSize       = "size"
	LogFieldDuration   = "duration_ms"
	LogFieldVersion    = "version"
)
