package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/tuiermo/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"TUIERMO_CONFIG",
	"TUIERMO_LOG_LEVEL",
	"TUIERMO_LOG_FILE",
	"TUIERMO_WORD_LENGTH",
	"TUIERMO_WORD",
	"TUIERMO_WORDS_FILE",
	"TUIERMO_METRICS_ADDR",
	"TUIERMO_TRACK_REPEATS",
	"TUIERMO_REPEAT_WINDOW",
}

func clearConfigEnvVars() {
	for _, k := range configEnvVars {
		_ = os.Unsetenv(k)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "tuiermo.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("TUIERMO_WORD_LENGTH", "6")
			_ = os.Setenv("TUIERMO_WORD", "árvore")
			_ = os.Setenv("TUIERMO_METRICS_ADDR", ":9090")
			_ = os.Setenv("TUIERMO_TRACK_REPEATS", "false")
			_ = os.Setenv("TUIERMO_LOG_LEVEL", "debug")
			_ = os.Setenv("TUIERMO_REPEAT_WINDOW", "8")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.WordLength, convey.ShouldEqual, 6)
				convey.So(cfg.Word, convey.ShouldEqual, "árvore")
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9090")
				convey.So(cfg.TrackRepeats, convey.ShouldBeFalse)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.RepeatWindow, convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			path := createTempConfigFile(t, `
word_length: 4
word: casa
log_file: /tmp/tuiermo.log
track_repeats: false
`)
			_ = os.Setenv("TUIERMO_CONFIG", path)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.WordLength, convey.ShouldEqual, 4)
				convey.So(cfg.Word, convey.ShouldEqual, "casa")
				convey.So(cfg.LogFile, convey.ShouldEqual, "/tmp/tuiermo.log")
				convey.So(cfg.TrackRepeats, convey.ShouldBeFalse)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			path := createTempConfigFile(t, `
word_length: 4
word: casa
`)
			_ = os.Setenv("TUIERMO_WORD", "sapo")

			cfg, err := config.LoadFrom(ctx, path)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.WordLength, convey.ShouldEqual, 4) // From file
				convey.So(cfg.Word, convey.ShouldEqual, "sapo")  // Overridden by env
			})
		})

		convey.Convey("When loading config with an invalid YAML file", func() {
			path := createTempConfigFile(t, `invalid: yaml: content: [`)

			cfg, err := config.LoadFrom(ctx, path)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a non-existent file", func() {
			cfg, err := config.LoadFrom(ctx, "/non/existent/file.yaml")

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the word length is not a number", func() {
			_ = os.Setenv("TUIERMO_WORD_LENGTH", "five")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the word length is zero", func() {
			_ = os.Setenv("TUIERMO_WORD_LENGTH", "0")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "word_length")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the log level is unknown", func() {
			_ = os.Setenv("TUIERMO_LOG_LEVEL", "chatty")

			_, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the repeat window is negative", func() {
			_ = os.Setenv("TUIERMO_REPEAT_WINDOW", "-1")

			_, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "repeat_window")
			})
		})

		convey.Convey("When the log level is unknown and only read", func() {
			_ = os.Setenv("TUIERMO_LOG_LEVEL", "chatty")

			cfg, err := config.Read(ctx, "")

			convey.Convey("Then validation is left to the caller", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "chatty")
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)

				cfg.LogLevel = "debug"
				convey.So(cfg.Validate(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When neither word nor word list is set", func() {
			_ = os.Setenv("TUIERMO_WORD", " ")

			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
