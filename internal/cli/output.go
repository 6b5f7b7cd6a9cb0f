package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// Printer renders command results to stdout in the configured output mode.
type Printer struct {
	output string
	writer io.Writer
}

func NewPrinter(output string, writer io.Writer) *Printer {
	return &Printer{
		output: output,
		writer: writer,
	}
}

// PrintShares prints encoded shares, one per line in text mode.
func (p *Printer) PrintShares(shares []string) error {
	switch p.output {
	case outputJSON:
		return p.printJSON(map[string]any{"shares": shares})

	default:
		for _, share := range shares {
			fmt.Fprintln(p.writer, share)
		}

		return nil
	}
}

// PrintSecret prints an encoded secret.
func (p *Printer) PrintSecret(secret string) error {
	switch p.output {
	case outputJSON:
		return p.printJSON(map[string]any{"secret": secret})

	default:
		fmt.Fprintln(p.writer, secret)
		return nil
	}
}

// InspectReport describes one share or secret for the inspect command.
type InspectReport struct {
	Kind    string  `json:"kind"`
	Point   int     `json:"point,omitempty"`
	Bits    int     `json:"bits"`
	Size    int     `json:"bytes"`
	Level   int     `json:"level"`
	Entropy float64 `json:"entropy"`
	Weak    bool    `json:"weak,omitempty"`
}

// PrintReport prints an inspect report.
func (p *Printer) PrintReport(report InspectReport) error {
	switch p.output {
	case outputJSON:
		return p.printJSON(report)

	default:
		fmt.Fprintf(p.writer, "Kind:    %s\n", report.Kind)
		if report.Kind == "share" {
			fmt.Fprintf(p.writer, "Point:   %d\n", report.Point)
		}
		fmt.Fprintf(p.writer, "Bits:    %d\n", report.Bits)
		fmt.Fprintf(p.writer, "Bytes:   %d\n", report.Size)
		fmt.Fprintf(p.writer, "Level:   %d\n", report.Level)
		fmt.Fprintf(p.writer, "Entropy: %.2f bits per byte\n", report.Entropy)
		if report.Weak {
			fmt.Fprintln(p.writer, "Warning: value looks predictable")
		}

		return nil
	}
}

// VersionReport describes the build for the version command.
type VersionReport struct {
	Version   string `json:"version"`
	GitCommit string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// PrintVersion prints the build description.
func (p *Printer) PrintVersion(report VersionReport) error {
	switch p.output {
	case outputJSON:
		return p.printJSON(report)

	default:
		fmt.Fprintf(p.writer, "secretshare version %s\n", report.Version)
		fmt.Fprintf(p.writer, "Git commit: %s\n", report.GitCommit)
		fmt.Fprintf(p.writer, "Build date: %s\n", report.BuildDate)
		fmt.Fprintf(p.writer, "Go version: %s\n", report.GoVersion)
		fmt.Fprintf(p.writer, "Platform:   %s\n", report.Platform)

		return nil
	}
}

func (p *Printer) printJSON(payload any) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(payload)
}
