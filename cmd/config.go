package cmd

import "fmt"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AMQPURL is optional. Without it domain events are only logged.
	AMQPURL      string
	AMQPExchange string

	OccupancyReportSchedule string
	MenuCacheSize           int
	LogLevel                string
}

// DSN returns the PostgreSQL connection string for the gorm postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
