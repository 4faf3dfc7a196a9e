package config

// EnvPrefix is passed to envconfig; individual fields carry fully-qualified
// envconfig tags so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "STOCKTRAK_APP_ENV"
	EnvPort     = "STOCKTRAK_APP_PORT"
	EnvDBDSN    = "STOCKTRAK_DB_DSN"
	EnvDBHost   = "STOCKTRAK_DB_HOST"
	EnvDBUser   = "STOCKTRAK_DB_USER"
	EnvDBName   = "STOCKTRAK_DB_NAME"
	EnvRedisURL = "STOCKTRAK_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
