package diligent

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	decoder := json.NewDecoder(buf)
	for decoder.More() {
		var record map[string]any
		require.NoError(t, decoder.Decode(&record))
		records = append(records, record)
	}
	return records
}

func TestSlogMessageCallback(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.HandlerOptions{Level: slog.LevelDebug}.NewJSONHandler(&buf))
	callback := SlogMessageCallback(logger)

	callback(DebugMessageSeverityInfo, "device created", "", "", 0)
	callback(DebugMessageSeverityWarning, "format not supported", "CreateTexture", "RenderDeviceBase.hpp", 412)
	callback(DebugMessageSeverityFatalError, "out of descriptors", "Allocate", "DescriptorPool.cpp", 88)

	records := decodeRecords(t, &buf)
	require.Len(t, records, 3)

	require.Equal(t, "INFO", records[0]["level"])
	require.Equal(t, "device created", records[0]["msg"])
	require.NotContains(t, records[0], "function")
	require.NotContains(t, records[0], "file")

	require.Equal(t, "WARN", records[1]["level"])
	require.Equal(t, "CreateTexture", records[1]["function"])
	require.Equal(t, "RenderDeviceBase.hpp", records[1]["file"])
	require.Equal(t, float64(412), records[1]["line"])
	require.NotContains(t, records[1], "fatal")

	require.Equal(t, "ERROR", records[2]["level"])
	require.Equal(t, true, records[2]["fatal"])
}

func TestMessageCallbackNilIsNil(t *testing.T) {
	var callback MessageCallback
	require.Nil(t, callback.native())
}

func TestMessageCallbackConvertsSeverity(t *testing.T) {
	var got DebugMessageSeverity
	var gotMessage string
	callback := MessageCallback(func(severity DebugMessageSeverity, message, function, file string, line int) {
		got = severity
		gotMessage = message
	})

	callback.native()(DebugMessageSeverityError.native(), "pipeline creation failed", "", "", 0)
	require.Equal(t, DebugMessageSeverityError, got)
	require.Equal(t, "pipeline creation failed", gotMessage)
}
