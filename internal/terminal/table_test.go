package terminal

import (
	"testing"

	"github.com/smartshark/sharkdb-cli/internal/utils/test/assert"

	"github.com/fatih/color"
)

func TestNewTable(t *testing.T) {
	for _, tc := range []struct {
		description    string
		headers        []string
		data           []map[string]interface{}
		expectedData   []map[string]string
		expectedWidths map[string]int
	}{
		{
			description: "should return an empty table without headers",
			headers:     nil,
		},
		{
			description:    "should size columns to their headers without data",
			headers:        []string{"Database", "Status"},
			expectedData:   make([]map[string]string, 0),
			expectedWidths: map[string]int{"Database": 8, "Status": 6},
		},
		{
			description: "should widen columns to their longest value and skip empty rows",
			headers:     []string{"Database", "Status"},
			data: []map[string]interface{}{
				{"Database": "testRun", "Status": "OK", "extra": "should not show up"},
				{},
				{"Database": "authentication", "Status": nil},
			},
			expectedData: []map[string]string{
				{"Database": "testRun", "Status": "OK"},
				{"Database": "authentication", "Status": ""},
			},
			expectedWidths: map[string]int{"Database": 14, "Status": 6},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			table := newTable("a message", tc.headers, tc.data)
			assert.Equal(t, tc.expectedWidths, table.widths)
			assert.Equal(t, tc.expectedData, table.rows)
		})
	}
}

func TestTableMessage(t *testing.T) {
	t.Run("should return an error without headers", func(t *testing.T) {
		table := newTable("a message", nil, nil)
		message, err := table.Message()
		assert.Equal(t, "", message)
		assert.Equal(t, "cannot create a table without headers", err.Error())
	})

	t.Run("should lay out the message, headers, divider and rows", func(t *testing.T) {
		color.NoColor = true
		defer func() { color.NoColor = false }()

		table := newTable(
			"Greetings",
			[]string{"name", "status"},
			[]map[string]interface{}{
				{"name": "alice", "status": "OK"},
				{"name": "bob"},
			},
		)

		message, err := table.Message()
		assert.Nil(t, err)
		assert.Equal(t, `Greetings
  name   status
  -----  ------
  alice  OK
  bob          `, message)
	})
}

func TestTablePayload(t *testing.T) {
	table := newTable(
		"Greetings",
		[]string{"name", "status"},
		[]map[string]interface{}{{"name": "alice", "status": "OK"}},
	)

	payloadKeys, payloadData, err := table.Payload()
	assert.Nil(t, err)
	assert.Equal(t, []string{logFieldMessage, logFieldData, logFieldHeaders}, payloadKeys)
	assert.Equal(t, "Greetings", payloadData[logFieldMessage])
	assert.Equal(t, []string{"name", "status"}, payloadData[logFieldHeaders])
	assert.Equal(t, []map[string]string{{"name": "alice", "status": "OK"}}, payloadData[logFieldData])
}
