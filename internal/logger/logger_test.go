package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithWriterLevels(t *testing.T) {
	var dev bytes.Buffer
	NewWithWriter(&dev, "dev").Debug("detalle", "flow", "generate_estimates")

	var entry map[string]any
	if err := json.Unmarshal(dev.Bytes(), &entry); err != nil {
		t.Fatalf("dev output is not JSON: %v (%q)", err, dev.String())
	}
	if entry["msg"] != "detalle" || entry["flow"] != "generate_estimates" {
		t.Fatalf("unexpected entry: %v", entry)
	}

	var prod bytes.Buffer
	log := NewWithWriter(&prod, "prod")
	log.Debug("oculto")
	log.Info("visible")
	if strings.Contains(prod.String(), "oculto") || !strings.Contains(prod.String(), "visible") {
		t.Fatalf("unexpected prod output: %q", prod.String())
	}
}
