package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("REPLY_DELAY", "10ms")
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPoliciesCommand(t *testing.T) {
	req := require.New(t)

	out, err := execute(t, "policies")

	req.NoError(err)
	req.Contains(out, "Government Policies & Schemes")
	req.Contains(out, "PM-KISAN Direct Benefit Transfer")
	req.Contains(out, "Organic Farming Promotion")
}

func TestWeatherCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantIcon  string
		wantMatch string
	}{
		{
			name:      "Default conditions are cloudy",
			args:      []string{"weather", "--location", "Springfield"},
			wantIcon:  "☁",
			wantMatch: "Partly Cloudy",
		},
		{
			name:      "Clear sky shows the sun",
			args:      []string{"weather", "--location", "Springfield", "--condition", "Clear Sky"},
			wantIcon:  "☀",
			wantMatch: "Clear Sky",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			out, err := execute(t, tt.args...)
			req.NoError(err)
			req.Contains(out, "Springfield")
			req.Contains(out, tt.wantIcon)
			req.Contains(out, tt.wantMatch)
			req.Contains(out, "Monitor soil moisture levels.")
		})
	}
}

func TestWeatherCommand_LocationIsRequired(t *testing.T) {
	req := require.New(t)

	_, err := execute(t, "weather")

	req.Error(err)
}

func TestAskCommand(t *testing.T) {
	req := require.New(t)

	// Given a full profile and a fertilizer question
	out, err := execute(t, "ask",
		"--plot", "10", "--soil", "Clay", "--location", "Springfield", "--crop", "Wheat",
		"Which fertilizer should I use?")

	// Then the greeting, the question and the reply are printed in order
	req.NoError(err)
	greeting := bytes.Index([]byte(out), []byte("Welcome! I see you have a 10 acre clay soil farm"))
	question := bytes.Index([]byte(out), []byte("Which fertilizer should I use?"))
	reply := bytes.Index([]byte(out), []byte("NPK"))
	req.GreaterOrEqual(greeting, 0)
	req.Greater(question, greeting)
	req.Greater(reply, question)
}

func TestAskCommand_InvalidProfile(t *testing.T) {
	req := require.New(t)

	_, err := execute(t, "ask", "--plot", "10", "--soil", "Lava", "--location", "X", "--crop", "Wheat", "hello")

	req.Error(err)
}

func TestAskCommand_BlankQuestionPrintsGreetingOnly(t *testing.T) {
	req := require.New(t)
	start := time.Now()

	// Given a whitespace-only question
	out, err := execute(t, "ask",
		"--plot", "10", "--soil", "Clay", "--location", "Springfield", "--crop", "Wheat", "   ")

	// Then nothing is asked, the greeting is printed and the command returns at once
	req.NoError(err)
	req.Contains(out, "Welcome! I see you have a 10 acre clay soil farm")
	req.NotContains(out, "You")
	req.Less(time.Since(start), 2*time.Second)
}

func TestRootFlags_OverrideEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("REPLY_DELAY", "30s")
	start := time.Now()

	// Given a long delay from the environment and a short one from the flag
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--reply-delay", "5ms", "--log-level", "ERROR", "ask",
		"--plot", "10", "--soil", "Clay", "--location", "Springfield", "--crop", "Wheat",
		"How to improve yield?"})

	// Then the flag wins
	req.NoError(cmd.Execute())
	req.Contains(out.String(), "10 acre wheat plot")
	req.Less(time.Since(start), 5*time.Second)
}

func TestFileLogger(t *testing.T) {
	t.Run("Honours the configured level", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "advisor.log")

		log, closeLog, err := fileLogger(Config{LogFile: path, LogLevel: "WARN"})
		req.NoError(err)
		log.Info("below level")
		log.Warn("at level")
		closeLog()

		content, err := os.ReadFile(path)
		req.NoError(err)
		req.Contains(string(content), "at level")
		req.NotContains(string(content), "below level")
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "advisor.log")

		log, closeLog, err := fileLogger(Config{LogFile: path, LogLevel: "chatty"})
		req.NoError(err)
		log.Debug("debug line")
		log.Info("info line")
		closeLog()

		content, err := os.ReadFile(path)
		req.NoError(err)
		req.Contains(string(content), "info line")
		req.NotContains(string(content), "debug line")
	})

	t.Run("Without a file nothing is written", func(t *testing.T) {
		req := require.New(t)

		log, closeLog, err := fileLogger(Config{})
		req.NoError(err)
		defer closeLog()
		req.False(log.Enabled(context.Background(), slog.LevelError))
	})
}
