package main

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port            string
	Mode            string
	ContentFile     string
	Assets          Assets
	ShutdownTimeout time.Duration
}

// LoadConfig reads settings from the environment, after loading .env when
// one is present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env")
	}

	mode := getEnv(gin.EnvGinMode, gin.DebugMode)
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		log.Warn().Str("mode", mode).Msg("unknown gin mode, using debug")
		mode = gin.DebugMode
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Mode:        mode,
		ContentFile: getEnv("CONTENT_FILE", ""),
		Assets: Assets{
			Dir:        getEnv("ASSET_DIR", "."),
			Stylesheet: getEnv("STYLESHEET_PATH", "styles/main.css"),
			Portrait:   getEnv("PORTRAIT_PATH", "assets/profile-pic.png"),
			Resume:     getEnv("RESUME_PATH", "assets/Resume Shayan Darabi.pdf"),
		},
		ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

// Release reports whether the server runs in gin's release mode, where
// error pages hide details.
func (c *Config) Release() bool {
	return c.Mode == gin.ReleaseMode
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Warn().Str("key", key).Str("value", value).Msg("ignoring non-integer setting")
	}
	return defaultValue
}
