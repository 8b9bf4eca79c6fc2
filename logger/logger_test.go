package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	. "github.com/fulldump/biff"
)

func TestParseLevel(t *testing.T) {

	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for input, expected := range cases {
		level, err := ParseLevel(input)
		AssertNil(err)
		AssertEqual(level, expected)
	}

	_, err := ParseLevel("loud")
	AssertNotNil(err)
}

func TestNew_Json(t *testing.T) {

	out := &bytes.Buffer{}
	l, err := New(out, Config{Version: "test", Level: "debug", Json: true})
	AssertNil(err)

	l.Debug("hello", "slots", 3)

	line := map[string]any{}
	AssertNil(json.Unmarshal(out.Bytes(), &line))
	AssertEqual(line["msg"], "hello")
	AssertEqual(line["version"], "test")
	AssertEqual(line["slots"], float64(3))
}

func TestNew_TextFiltersLevel(t *testing.T) {

	out := &bytes.Buffer{}
	l, err := New(out, Config{Level: "warn"})
	AssertNil(err)

	l.Info("quiet")
	l.Warn("loud")

	AssertFalse(strings.Contains(out.String(), "quiet"))
	AssertTrue(strings.Contains(out.String(), "msg=loud"))
}
