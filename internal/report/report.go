// Package report renders simulation results as tables, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/me/cpusched/internal/kernel"
)

// Format selects how results are rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts table, json or yaml in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

// Render writes results in the requested format.
func Render(w io.Writer, f Format, results []*kernel.Result) error {
	switch f {
	case FormatJSON:
		return JSON(w, results)
	case FormatYAML:
		return YAML(w, results)
	default:
		for i, res := range results {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			Table(w, res)
		}
		return nil
	}
}

// Table writes the title, the Gantt table and the statistics of one run.
func Table(w io.Writer, res *kernel.Result) {
	title := fmt.Sprintf("%s (%s)", res.Discipline.Title(), res.Discipline)
	if res.Quantum > 0 {
		title += fmt.Sprintf(", quantum %d", res.Quantum)
	}
	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", len(title)))
	Gantt(w, res)
	_, _ = fmt.Fprintln(w)
	Stats(w, res)
}

// Gantt writes one row per executed tick: "t-t+1" followed by a mnemonic
// per process.
func Gantt(w io.Writer, res *kernel.Result) {
	header := make([]string, 0, len(res.Processes)+1)
	header = append(header, "tempo")
	for _, p := range res.Processes {
		header = append(header, "P"+strconv.Itoa(p.PID))
	}

	rows := make([][]string, 0, len(res.Schedule))
	for _, row := range res.Schedule {
		cells := make([]string, 0, len(row.Slots)+1)
		cells = append(cells, fmt.Sprintf("%d-%d", row.Tick, row.Tick+1))
		for _, s := range row.Slots {
			cells = append(cells, s.String())
		}
		rows = append(rows, cells)
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

// Stats writes per-process turnaround, waiting time and context changes with
// their averages and the total number of context changes.
func Stats(w io.Writer, res *kernel.Result) {
	s := res.Stats
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Process", "Turnaround", "Waiting", "Context changes"})
	for _, ps := range s.Processes {
		table.Append([]string{
			"P" + strconv.Itoa(ps.PID),
			strconv.Itoa(ps.Turnaround),
			strconv.Itoa(ps.Waiting),
			strconv.Itoa(ps.ContextChanges),
		})
	}
	table.SetFooter([]string{
		"Average",
		fmt.Sprintf("%.2f", s.AverageTurnaround),
		fmt.Sprintf("%.2f", s.AverageWaiting),
		fmt.Sprintf("Total %d", s.TotalContextChanges),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "makespan %d, busy %d, idle %d, throughput %.3f/tick, preemptions %d\n",
		s.Makespan, s.BusyTicks, s.IdleTicks, s.Throughput, res.Preemptions)
}

// JSON writes results as an indented JSON array.
func JSON(w io.Writer, results []*kernel.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}

// YAML writes results as a YAML sequence.
func YAML(w io.Writer, results []*kernel.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return enc.Close()
}
