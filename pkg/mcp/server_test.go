package mcp

import (
	"context"
	"testing"

	"numinterp/internal/model/number"
	"numinterp/internal/service"
	"numinterp/internal/service/ambiguity"
	"numinterp/internal/service/phone"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer() *InterpretServer {
	logger := zap.NewNop()
	svc := service.NewInterpretService(
		ambiguity.NewGenerator(ambiguity.Limits{MaxTokens: 6}, logger),
		phone.NewPrefixValidator(nil, logger),
		"GR",
		1,
		logger,
	)
	return NewInterpretServer(svc, "test", logger)
}

func toolText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return text.Text
}

func TestFormatResult(t *testing.T) {
	result := &service.InterpretResult{
		Input: "69 12 34 56 78",
		Interpretations: []number.Interpretation{
			{Digits: "60912345678"},
			{Digits: "6912345678", Valid: true, E164: "+306912345678"},
		},
		ValidCount: 1,
	}

	assert.Equal(t,
		"Input: 69 12 34 56 78\n"+
			"Readings: 2, valid phone numbers: 1\n"+
			"1. 60912345678 [phone number: INVALID]\n"+
			"2. 6912345678 [phone number: VALID +306912345678]\n",
		FormatResult(result, false))

	assert.Equal(t,
		"Input: 69 12 34 56 78\n"+
			"Readings: 2, valid phone numbers: 1\n"+
			"1. 6912345678 [phone number: VALID +306912345678]\n",
		FormatResult(result, true))
}

func TestHandleInterpret(t *testing.T) {
	s := newTestServer()

	res, _, err := s.handleInterpret(context.Background(), nil, InterpretParams{Input: "20 5"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t,
		"Input: 20 5\n"+
			"Readings: 2, valid phone numbers: 0\n"+
			"1. 25 [phone number: INVALID]\n"+
			"2. 205 [phone number: INVALID]\n",
		toolText(t, res))
}

func TestHandleInterpret_ValidOnly(t *testing.T) {
	s := newTestServer()

	res, _, err := s.handleInterpret(context.Background(), nil,
		InterpretParams{Input: "210 123 45 67", ValidOnly: true})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := toolText(t, res)
	assert.Contains(t, text, "Input: 210 123 45 67\n")
	assert.Contains(t, text, "2101234567 [phone number: VALID +302101234567]")
	assert.NotContains(t, text, "INVALID")
}

func TestHandleInterpret_BadInput(t *testing.T) {
	s := newTestServer()

	for _, input := range []string{"12x", "1 2 3 4 5 6 7"} {
		res, _, err := s.handleInterpret(context.Background(), nil, InterpretParams{Input: input})
		require.NoError(t, err, input)
		assert.True(t, res.IsError, input)
		assert.Contains(t, toolText(t, res), "Failed to interpret input", input)
	}
}
