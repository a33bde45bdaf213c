package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	logFieldHeaders = "headers"
	logFieldData    = "data"
)

// set of exported spacing options
const (
	Indent = "  "
	Gutter = "  "
)

var (
	tableFields = []string{logFieldMessage, logFieldData, logFieldHeaders}

	boldify = color.New(color.Bold).SprintFunc()
)

// table renders a message followed by rows of cells padded
// to the widest value seen in each column
type table struct {
	message string
	headers []string
	rows    []map[string]string
	widths  map[string]int
}

func newTable(message string, headers []string, data []map[string]interface{}) table {
	var t table

	if len(headers) == 0 {
		return t
	}

	t.message = message
	t.headers = headers
	t.rows = make([]map[string]string, 0, len(data))

	t.widths = make(map[string]int, len(headers))
	for _, header := range headers {
		t.widths[header] = len(header)
	}

	for _, datum := range data {
		if len(datum) == 0 {
			continue
		}
		row := make(map[string]string, len(headers))
		for _, header := range headers {
			cell := parseValue(datum[header])
			if len(cell) > t.widths[header] {
				t.widths[header] = len(cell)
			}
			row[header] = cell
		}
		t.rows = append(t.rows, row)
	}
	return t
}

func (t table) Message() (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}

	lines := make([]string, 0, len(t.rows)+3)
	lines = append(lines, t.message, t.headerLine(), t.dividerLine())
	for _, row := range t.rows {
		lines = append(lines, t.rowLine(row))
	}
	return strings.Join(lines, "\n"), nil
}

func (t table) Payload() ([]string, map[string]interface{}, error) {
	if err := t.validate(); err != nil {
		return nil, nil, err
	}
	return tableFields, map[string]interface{}{
		logFieldMessage: t.message,
		logFieldHeaders: t.headers,
		logFieldData:    t.rows,
	}, nil
}

func (t table) validate() error {
	if len(t.headers) == 0 {
		return errors.New("cannot create a table without headers")
	}
	return nil
}

func (t table) headerLine() string {
	cells := make([]string, len(t.headers))
	for i, header := range t.headers {
		cells[i] = boldify(header) + pad(t.widths[header]-len(header))
	}
	return Indent + strings.Join(cells, Gutter)
}

func (t table) dividerLine() string {
	cells := make([]string, len(t.headers))
	for i, header := range t.headers {
		cells[i] = strings.Repeat("-", t.widths[header])
	}
	return Indent + strings.Join(cells, Gutter)
}

func (t table) rowLine(row map[string]string) string {
	cells := make([]string, len(t.headers))
	for i, header := range t.headers {
		cells[i] = row[header] + pad(t.widths[header]-len(row[header]))
	}
	return Indent + strings.Join(cells, Gutter)
}

func pad(width int) string {
	return strings.Repeat(" ", width)
}

func parseValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%+v", v)
	}
}
