package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"action": "tibco:create-yaml", "task_id": "abc"})
	log.Info("Output File name: catalog-info.yaml")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "Output File name: catalog-info.yaml", entry["message"])
	require.Equal(t, "tibco:create-yaml", entry["action"])
	require.Equal(t, "abc", entry["task_id"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerForTaskTagsEveryEntry(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	base, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log := base.ForTask("tibco:create-yaml", "task-42")
	log.Info("Fail on error: False")
	log.Error(errors.New("disk full"), "Error while creating Yaml file")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		require.Equal(t, "tibco:create-yaml", entry[FieldAction])
		require.Equal(t, "task-42", entry[FieldTaskID])
	}

	base.Info("untagged")
	require.NotContains(t, buf.String()[strings.LastIndex(strings.TrimSpace(buf.String()), "\n")+1:], FieldTaskID)

	var nilLogger *Logger
	require.Nil(t, nilLogger.ForTask("a", "b"))
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"action": "tibco:create-yaml"})
	log.Error(errors.New("boom"), "Error while creating Yaml file")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "Error while creating Yaml file", entry["message"])
	require.Equal(t, "tibco:create-yaml", entry["action"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "error", entry["level"])
}

func TestLoggerHumanReadableWritesConsoleFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("Created Yaml file with name: catalog-info.yaml")
	require.Contains(t, buf.String(), "Created Yaml file with name: catalog-info.yaml")
	require.Contains(t, buf.String(), "INF")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Error(errors.New("x"), "ignored")
		require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	})

	require.NotPanics(t, func() {
		Nop().Info("ignored")
		Nop().Debug("ignored")
	})
}
