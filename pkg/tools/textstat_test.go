package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openagentic/textstat/pkg/textstat"
	. "github.com/smartystreets/goconvey/convey"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "analyze_statistics"
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestStatisticsToolHandle(t *testing.T) {
	tool := NewStatisticsTool(textstat.Config{})

	Convey("Given a call with text", t, func() {
		res, err := tool.Handle(context.Background(), callRequest(map[string]any{
			"text": "Hello world. This is a test.",
		}))

		Convey("It should return the metrics as JSON text", func() {
			So(err, ShouldBeNil)
			So(res.IsError, ShouldBeFalse)

			var m textstat.Metrics
			So(json.Unmarshal([]byte(resultText(t, res)), &m), ShouldBeNil)
			So(m.WordCount, ShouldEqual, 6)
			So(m.SentenceCount, ShouldEqual, 2)
		})
	})

	Convey("Given a call without text", t, func() {
		res, err := tool.Handle(context.Background(), callRequest(map[string]any{}))

		Convey("It should return a tool error, not a transport error", func() {
			So(err, ShouldBeNil)
			So(res.IsError, ShouldBeTrue)
		})
	})

	Convey("Given a call with empty text", t, func() {
		res, err := tool.Handle(context.Background(), callRequest(map[string]any{
			"text": "",
		}))

		Convey("It should succeed with zero metrics", func() {
			So(err, ShouldBeNil)
			So(res.IsError, ShouldBeFalse)

			var m textstat.Metrics
			So(json.Unmarshal([]byte(resultText(t, res)), &m), ShouldBeNil)
			So(m, ShouldResemble, textstat.Metrics{})
		})
	})

	Convey("Given a call with a custom reading rate", t, func() {
		res, err := tool.Handle(context.Background(), callRequest(map[string]any{
			"text":             "one two three",
			"words_per_minute": 60,
		}))

		Convey("The reading time should use the rate", func() {
			So(err, ShouldBeNil)

			var m textstat.Metrics
			So(json.Unmarshal([]byte(resultText(t, res)), &m), ShouldBeNil)
			So(m.EstimatedReadingTimeSeconds, ShouldAlmostEqual, 3.0, 1e-9)
		})
	})
}

func TestStatisticsToolDefinition(t *testing.T) {
	Convey("Given the tool definition", t, func() {
		def := NewStatisticsTool(textstat.Config{}).Definition()

		Convey("It should advertise the analyze_statistics tool", func() {
			So(def.Name, ShouldEqual, "analyze_statistics")
			So(def.InputSchema.Required, ShouldContain, "text")
			So(def.InputSchema.Properties, ShouldContainKey, "words_per_minute")
		})
	})
}
