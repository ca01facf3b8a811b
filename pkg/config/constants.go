package config

const (
	// EnvPrefix namespaces every environment variable the app reads.
	EnvPrefix = "MPR"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	EnvDBDSN  = "MPR_DB_DSN"
	EnvDBHost = "MPR_DB_HOST"
	EnvDBUser = "MPR_DB_USER"
	EnvDBName = "MPR_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
