// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/certtool/src/logger"
)

func TestCLILogger(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	log.Printf("wrote %d files", 3)
	log.Println("done")

	out := buf.String()
	assert.Contains(t, out, "wrote 3 files")
	assert.Contains(t, out, "done")
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewJSONLogger(&buf)
	log.Printf("processed %s", "web01.json")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "processed web01.json", entry["message"])
}

func TestJSONLogger_OneLinePerMessage(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewJSONLogger(&buf)
	log.Println("first")
	log.Println("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
	}
}

func TestJSONLogger_NilWriter(t *testing.T) {
	log := logger.NewJSONLogger(nil)

	// Must not panic.
	log.Printf("discarded")
	log.SetOutput(nil)
	log.Println("still discarded")
}
