package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBroker = "localhost:9092"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/weather.csv", cfg.InputPath)
	assert.Equal(t, ',', cfg.CSVDelimiter)
	assert.False(t, cfg.HTTPEnabled)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "weather-reports", cfg.KafkaReportTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("WEATHER_INPUT_PATH", "/srv/weather/july.csv")
	t.Setenv("CSV_DELIMITER", ";")
	t.Setenv("HTTP_ENABLED", "true")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_REPORT_TOPIC", "custom-reports")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/weather/july.csv", cfg.InputPath)
	assert.Equal(t, ';', cfg.CSVDelimiter)
	assert.True(t, cfg.HTTPEnabled)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-reports", cfg.KafkaReportTopic)
}

func TestLoad_TabDelimiter(t *testing.T) {
	t.Setenv("CSV_DELIMITER", `\t`)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, '\t', cfg.CSVDelimiter)
}

func TestLoad_InvalidDelimiter(t *testing.T) {
	for _, v := range []string{";;", `"`, "ab", "\n", "\r"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("CSV_DELIMITER", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "CSV_DELIMITER")
		})
	}
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidHTTPEnabled(t *testing.T) {
	t.Setenv("HTTP_ENABLED", "yes please")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_ENABLED")
}

func TestLoad_KafkaBrokersImplyEnabled(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.KafkaEnabled)
}

func TestLoad_KafkaExplicitlyDisabled(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092")
	t.Setenv("KAFKA_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaEnabled)
}

func TestLoad_KafkaEnabledUsesDefaultBroker(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WEATHER_INPUT_PATH=from-dotenv.csv\nLOG_FORMAT=text\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("LOG_FORMAT", "json")
	// godotenv sets variables process-wide; restore the path after the test.
	t.Setenv("WEATHER_INPUT_PATH", "")
	require.NoError(t, os.Unsetenv("WEATHER_INPUT_PATH"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.csv", cfg.InputPath)
	assert.Equal(t, "json", cfg.LogFormat, "environment wins over .env")
}
