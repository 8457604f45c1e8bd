// Package output provides utilities for formatting and displaying proposals.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/solar-quote/internal/proposal"
	"github.com/iwvelando/solar-quote/pkg/constants"
	"github.com/iwvelando/solar-quote/pkg/format"
	"github.com/iwvelando/solar-quote/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale used for engineering figures in the human-readable output.
var Locale = language.MustParse("es-CO")

// PrettyFormat outputs a human-readable rather than machine-readable proposal.
func PrettyFormat(p *proposal.Proposal) {
	_ = WritePretty(os.Stdout, p)
}

// WritePretty writes the human-readable proposal to w.
func WritePretty(w io.Writer, p *proposal.Proposal) error {
	pr := message.NewPrinter(Locale)
	var b bytes.Buffer

	fmt.Fprintf(&b, "=== Solar proposal %s ===\n", p.ID)
	fmt.Fprintf(&b, "Issued:    %s (valid until %s)\n", p.IssueDate, p.ValidUntil)
	fmt.Fprintf(&b, "Installer: %s\n", partyLine(p.Company.Name, p.Company.TaxID, p.Company.Phone, p.Company.Email))
	fmt.Fprintf(&b, "Customer:  %s\n", partyLine(p.Customer.Name, p.Customer.Address, p.Customer.City, p.Customer.Phone))

	in, res := p.Inputs, p.Sizing
	fmt.Fprintf(&b, "\n--- System ---\n")
	fmt.Fprintf(&b, "%-16s | %s\n", "Topology", strings.ToUpper(string(in.InverterTopology)))
	_, _ = pr.Fprintf(&b, "%-16s | %d x %dW (%.2f kWp)\n", "Panels", res.NumberOfPanels, in.PanelWattage, p.ArrayPowerKwp)
	if mathutil.IsZero(res.BatteryCapacityAh) {
		fmt.Fprintf(&b, "%-16s | none\n", "Battery bank")
	} else {
		_, _ = pr.Fprintf(&b, "%-16s | %dV %s %d Ah\n", "Battery bank", in.SystemVoltage,
			strings.ToUpper(string(in.BatteryChemistry)), mathutil.RoundWhole(res.BatteryCapacityAh))
	}
	_, _ = pr.Fprintf(&b, "%-16s | %.0f W required, %s tier\n", "Inverter", res.InverterSizeWatts, format.Watts(p.Quote.InverterPowerWatts))
	_, _ = pr.Fprintf(&b, "%-16s | %.0f kWh (demand %.0f kWh)\n", "Monthly yield", res.MonthlyProductionKwh, in.MonthlyConsumption)

	if p.Load != nil {
		fmt.Fprintf(&b, "\n--- Load census ---\n")
		fmt.Fprintf(&b, "%-20s | %8s | %5s | %3s\n", "Appliance", "Power", "Hours", "Qty")
		for _, a := range p.Appliances {
			_, _ = pr.Fprintf(&b, "%-20s | %6.0f W | %5.1f | %3d\n", a.Name, a.Power, a.Hours, a.Quantity)
		}
		_, _ = pr.Fprintf(&b, "Peak %.0f W, %.0f Wh/day, %.1f kWh/month\n", p.Load.PeakWatts, p.Load.DailyWh, p.Load.MonthlyKwh)
	}

	a := p.Analysis
	fmt.Fprintf(&b, "\n--- Analysis ---\n")
	fmt.Fprintf(&b, "Grid connection: %s\n", requirement(a.RequiresGridConnection))
	fmt.Fprintf(&b, "Batteries:       %s\n", requirement(a.RequiresBatteries))
	fmt.Fprintf(&b, "Efficiency:      %d%%\n", mathutil.Percent(a.EstimatedEfficiency))
	writeList(&b, "Pros", a.Pros)
	writeList(&b, "Cons", a.Cons)
	writeList(&b, "Ideal for", a.IdealFor)
	if len(a.InverterRecommendations) == 0 {
		fmt.Fprintf(&b, "Recommended inverters: no catalog match for %s\n", in.InverterTopology)
	} else {
		fmt.Fprintf(&b, "Recommended inverters:\n")
		for _, r := range a.InverterRecommendations {
			fmt.Fprintf(&b, "  %s %s (%s) %s\n", r.Brand, r.Model, format.Watts(r.PowerWatts), r.PriceRangeLabel)
		}
	}

	q := p.Quote
	fmt.Fprintf(&b, "\n--- Quote ---\n")
	fmt.Fprintf(&b, "%-3s | %-36s | %4s | %13s | %13s\n", "ID", "Description", "Qty", "Unit", "Total")
	fmt.Fprintf(&b, "%-3s | %-36s | %4s | %13s | %13s\n", "__", "___________", "___", "____", "_____")
	for _, item := range q.Items {
		fmt.Fprintf(&b, "%-3s | %-36s | %4d | %13s | %13s\n", item.ID, item.Description, item.Quantity,
			format.Pesos(item.UnitPrice), format.Pesos(item.LineTotal()))
	}
	fmt.Fprintf(&b, "%-55s | %13s\n", "Subtotal", format.Pesos(q.Subtotal))
	fmt.Fprintf(&b, "%-55s | %13s\n", "VAT "+taxPercent(), format.Pesos(q.Tax))
	fmt.Fprintf(&b, "%-55s | %13s\n", "Total", format.Pesos(q.Total))

	if p.Advice.Text != "" {
		fmt.Fprintf(&b, "\n--- Advice ---\n%s\n", p.Advice.Text)
	}
	if len(p.Warnings) > 0 {
		writeList(&b, "\nWarnings", p.Warnings)
	}
	fmt.Fprintf(&b, "\n%s\n", constants.QuoteDisclaimer)

	_, err := w.Write(b.Bytes())
	return err
}

// CsvFormat outputs the quote in comma-separated value format.
func CsvFormat(p *proposal.Proposal) {
	fmt.Print(CsvString(p))
}

// CsvString renders the quote lines followed by the totals as CSV.
func CsvString(p *proposal.Proposal) string {
	var b bytes.Buffer
	_ = WriteCSV(&b, p)
	return b.String()
}

// WriteCSV writes the quote as CSV to w. Money columns are whole pesos.
func WriteCSV(w io.Writer, p *proposal.Proposal) error {
	cw := csv.NewWriter(w)
	records := [][]string{{"id", "description", "category", "quantity", "unitPrice", "lineTotal"}}
	for _, item := range p.Quote.Items {
		records = append(records, []string{
			item.ID,
			item.Description,
			string(item.Category),
			strconv.Itoa(item.Quantity),
			strconv.FormatInt(item.UnitPrice, 10),
			strconv.FormatInt(item.LineTotal(), 10),
		})
	}
	records = append(records,
		[]string{"", "subtotal", "", "", "", strconv.FormatInt(p.Quote.Subtotal, 10)},
		[]string{"", "tax", "", "", "", strconv.FormatInt(p.Quote.Tax, 10)},
		[]string{"", "total", "", "", "", strconv.FormatInt(p.Quote.Total, 10)},
	)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// JSONFormat outputs the full proposal document as indented JSON.
func JSONFormat(p *proposal.Proposal) {
	_ = WriteJSON(os.Stdout, p)
}

// WriteJSON writes the proposal document as indented JSON to w.
func WriteJSON(w io.Writer, p *proposal.Proposal) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Write dispatches on one of the supported output formats.
func Write(w io.Writer, outputFormat string, p *proposal.Proposal) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return WritePretty(w, p)
	case constants.OutputFormatCSV:
		return WriteCSV(w, p)
	case constants.OutputFormatJSON:
		return WriteJSON(w, p)
	}
	return fmt.Errorf("unsupported output format %q", outputFormat)
}

func partyLine(fields ...string) string {
	var parts []string
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func requirement(required bool) string {
	if required {
		return "required"
	}
	return "not required"
}

func writeList(b *bytes.Buffer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

func taxPercent() string {
	rate, err := strconv.ParseFloat(constants.TaxRate, 64)
	if err != nil {
		return ""
	}
	return strconv.Itoa(mathutil.Percent(rate)) + "%"
}
