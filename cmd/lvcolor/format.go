package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	formatJSONName  = "json"
	formatTableName = "table"
	formatQuietName = "quiet"
)

var formatters = map[string]func(io.Writer, report) error{
	formatJSONName:  formatJSON,
	formatTableName: formatTable,
	formatQuietName: formatQuiet,
}

func formatJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func formatTable(w io.Writer, r report) error {
	fmt.Fprintf(w, "%s: vertices=%d edges=%d chromatic=%d (max %d)\n",
		r.Fixture, r.Vertices, r.Edges, r.Chromatic, r.MaxColors)

	headers := []string{"VERTEX", "COLOR"}
	rows := make([][]string, 0, len(r.Coloring))
	for _, vc := range r.Coloring {
		rows = append(rows, []string{vc.Vertex, strconv.Itoa(vc.Color)})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, wd := range widths {
		seps[i] = strings.Repeat("-", wd)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
	return nil
}

func formatQuiet(w io.Writer, r report) error {
	_, err := fmt.Fprintln(w, r.Chromatic)
	return err
}
