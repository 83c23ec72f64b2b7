package cmd

// Config carries everything the engine reads from the environment.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	GeofenceRadiusMeters float64
	SweepSchedule        string
}
