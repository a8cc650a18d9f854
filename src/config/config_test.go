package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("MONTHWISE_TEST_KEY", "value")
	if got := getEnv("MONTHWISE_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("getEnv = %q, want %q", got, "value")
	}
	if got := getEnv("MONTHWISE_MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("getEnv fallback = %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("MONTHWISE_TEST_INT", "25")
	if got := getEnvInt("MONTHWISE_TEST_INT", 10); got != 25 {
		t.Errorf("getEnvInt = %d, want 25", got)
	}

	t.Setenv("MONTHWISE_TEST_INT", "not-a-number")
	if got := getEnvInt("MONTHWISE_TEST_INT", 10); got != 10 {
		t.Errorf("getEnvInt with invalid value = %d, want fallback 10", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("MONTHWISE_TEST_DUR", "30m")
	if got := getEnvDuration("MONTHWISE_TEST_DUR", time.Hour); got != 30*time.Minute {
		t.Errorf("getEnvDuration = %s, want 30m", got)
	}

	t.Setenv("MONTHWISE_TEST_DUR", "soon")
	if got := getEnvDuration("MONTHWISE_TEST_DUR", time.Hour); got != time.Hour {
		t.Errorf("getEnvDuration with invalid value = %s, want fallback 1h", got)
	}
}
