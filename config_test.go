package main

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", gin.EnvGinMode, "CONTENT_FILE", "ASSET_DIR", "STYLESHEET_PATH", "PORTRAIT_PATH", "RESUME_PATH", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	if cfg.Port != "8080" || cfg.Mode != gin.DebugMode || cfg.ContentFile != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	want := Assets{Dir: ".", Stylesheet: "styles/main.css", Portrait: "assets/profile-pic.png", Resume: "assets/Resume Shayan Darabi.pdf"}
	if cfg.Assets != want {
		t.Errorf("assets = %+v", cfg.Assets)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.Release() {
		t.Error("debug config reports release")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv(gin.EnvGinMode, gin.ReleaseMode)
	t.Setenv("ASSET_DIR", "/srv/cv")
	t.Setenv("RESUME_PATH", "cv.pdf")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")

	cfg := LoadConfig()
	if cfg.Port != "9000" || !cfg.Release() {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Assets.ResumePath() != "/srv/cv/cv.pdf" {
		t.Errorf("resume path = %q", cfg.Assets.ResumePath())
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.ShutdownTimeout)
	}
}

func TestLoadConfigBadValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(gin.EnvGinMode, "turbo")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")

	cfg := LoadConfig()
	if cfg.Mode != gin.DebugMode {
		t.Errorf("mode = %q", cfg.Mode)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.ShutdownTimeout)
	}
}
