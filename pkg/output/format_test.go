package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/solar-quote/internal/config"
	"github.com/iwvelando/solar-quote/internal/proposal"
	"github.com/iwvelando/solar-quote/pkg/advice"
)

const goldenConfig = `
company:
  name: Sol Andino Energia SAS
customer:
  name: Test Customer
  city: Envigado
system:
  monthlyConsumption: 350
  peakSunHours: 4.5
  panelWattage: 450
  systemVoltage: 24
  autonomyDays: 1
  depthOfDischarge: 0.8
  systemEfficiency: 0.8
  inverterTopology: hybrid
  batteryChemistry: lithium
`

func goldenProposal(t *testing.T) *proposal.Proposal {
	t.Helper()
	conf, err := config.LoadConfigurationFromReader(strings.NewReader(goldenConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	issued := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	p, err := proposal.GenerateAt(context.Background(), nil, conf, advice.Summary{}, issued)
	if err != nil {
		t.Fatalf("GenerateAt() error = %v", err)
	}
	return p
}

func TestWritePretty(t *testing.T) {
	p := goldenProposal(t)

	var buf bytes.Buffer
	if err := WritePretty(&buf, p); err != nil {
		t.Fatalf("WritePretty() error = %v", err)
	}
	output := buf.String()

	expected := []string{
		"=== Solar proposal " + p.ID + " ===",
		"Issued:    2026-01-05 (valid until 2026-02-04)",
		"Customer:  Test Customer, Envigado",
		"HYBRID",
		"--- Analysis ---",
		"Recommended inverters:",
		"MUST PH1800 2KVA (1.6 kW)",
		"Solar Panel 450W Mono PERC",
		"$520.000",
		"$16.700.000",
		"VAT 19%",
		"$3.173.000",
		"$19.873.000",
		"--- Advice ---",
		"Warnings:",
		"preliminary quote",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("WritePretty output missing %q", want)
		}
	}
	if strings.Contains(output, "--- Load census ---") {
		t.Error("WritePretty printed a census section without appliances")
	}
}

func TestPrettyFormat(t *testing.T) {
	p := goldenProposal(t)

	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	PrettyFormat(p)

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	if !strings.Contains(buf.String(), "--- Quote ---") {
		t.Errorf("PrettyFormat missing quote section")
	}
}

func TestCsvString(t *testing.T) {
	p := goldenProposal(t)

	records, err := csv.NewReader(strings.NewReader(CsvString(p))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	if len(records) != 10 {
		t.Fatalf("expected header, 6 items and 3 totals, got %d rows", len(records))
	}

	tests := []struct {
		row      int
		column   int
		expected string
	}{
		{0, 0, "id"},
		{1, 0, "p1"},
		{1, 1, "Solar Panel 450W Mono PERC"},
		{1, 3, "10"},
		{1, 5, "5200000"},
		{5, 2, "protection"},
		{7, 1, "subtotal"},
		{7, 5, "16700000"},
		{8, 5, "3173000"},
		{9, 1, "total"},
		{9, 5, "19873000"},
	}
	for _, tt := range tests {
		if got := records[tt.row][tt.column]; got != tt.expected {
			t.Errorf("csv[%d][%d] = %q, expected %q", tt.row, tt.column, got, tt.expected)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	p := goldenProposal(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, p); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var doc struct {
		ID     string `json:"id"`
		Sizing struct {
			NumberOfPanels int `json:"numberOfPanels"`
		} `json:"sizing"`
		Quote struct {
			Total int64 `json:"total"`
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
		} `json:"quote"`
		Analysis struct {
			RequiresBatteries bool `json:"requiresBatteries"`
		} `json:"analysis"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("failed to decode json: %v", err)
	}
	if doc.ID != p.ID {
		t.Errorf("id = %q, expected %q", doc.ID, p.ID)
	}
	if doc.Sizing.NumberOfPanels != 10 {
		t.Errorf("numberOfPanels = %d, expected 10", doc.Sizing.NumberOfPanels)
	}
	if doc.Quote.Total != 19873000 {
		t.Errorf("total = %d, expected 19873000", doc.Quote.Total)
	}
	if len(doc.Quote.Items) != 6 {
		t.Errorf("expected 6 items, got %d", len(doc.Quote.Items))
	}
	if !doc.Analysis.RequiresBatteries {
		t.Error("expected hybrid analysis to require batteries")
	}
}

func TestWrite(t *testing.T) {
	p := goldenProposal(t)

	tests := []struct {
		format    string
		expectErr bool
	}{
		{"pretty", false},
		{"csv", false},
		{"json", false},
		{"pdf", true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, tt.format, p)
			if tt.expectErr {
				if err == nil {
					t.Error("Write() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("Write() error = %v", err)
			}
			if buf.Len() == 0 {
				t.Error("Write() produced no output")
			}
		})
	}
}
