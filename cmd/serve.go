package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/openagentic/textstat/pkg/a2a"
	"github.com/openagentic/textstat/pkg/service"
	"github.com/openagentic/textstat/pkg/textstat"
	"github.com/openagentic/textstat/pkg/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	portFlag int
	hostFlag string
	cardFlag string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the agent services",
		Long:  longServe,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	agentCmd = &cobra.Command{
		Use:   "agent",
		Short: "Serve the A2A agent over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetReportCaller(true)
			log.SetLevel(log.InfoLevel)

			v := viper.GetViper()

			srv := service.NewAgentServer(
				a2a.NewAgentCardFromConfig(cardFlag),
				service.WithAnalyzerConfig(analyzerConfig()),
				service.WithMaxInputBytes(v.GetInt("server.max_input_bytes")),
			)

			host := hostFlag
			if host == "" {
				host = v.GetString("server.host")
			}
			port := portFlag
			if port == 0 {
				port = v.GetInt("server.port")
			}

			return srv.Start(fmt.Sprintf("%s:%d", host, port))
		},
	}

	mcpCmd = &cobra.Command{
		Use:   "mcp",
		Short: "Serve the analyzer as an MCP tool on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			s := server.NewMCPServer(
				v.GetString(fmt.Sprintf("agent.%s.name", cardFlag)),
				v.GetString(fmt.Sprintf("agent.%s.version", cardFlag)),
				server.WithLogging(),
			)

			tools.RegisterStatisticsTool(s, analyzerConfig())
			return server.ServeStdio(s)
		},
	}
)

func analyzerConfig() textstat.Config {
	return textstat.Config{
		WordsPerMinute: viper.GetInt("analyzer.words_per_minute"),
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.AddCommand(agentCmd)
	serveCmd.AddCommand(mcpCmd)

	serveCmd.PersistentFlags().IntVarP(&portFlag, "port", "p", 0, "Port to serve on (default from config)")
	serveCmd.PersistentFlags().StringVarP(&hostFlag, "host", "H", "", "Host address to bind to (default from config)")
	serveCmd.PersistentFlags().StringVarP(&cardFlag, "card", "c", "textstat", "Agent card key in the config")
}

var longServe = `
Serve the text-statistics agent.

Examples:
  # Serve the A2A agent on port 8080
  textstat serve agent --port 8080

  # Serve the analyzer as an MCP tool on stdio
  textstat serve mcp
`
