package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/hugoduncan/mcp-tasks/mcp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server so AI tools can manage tasks.

The server exposes the task store as tools (add-task, list-tasks,
select-tasks, get-task, update-task, complete-task, reopen-task,
delete-task) and the category/workflow prompts.

The server runs over stdio until the client disconnects.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unknown command %q for %q\nRun '%s --help' for usage", args[0], cmd.CommandPath(), cmd.Root().Name())
		}
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServer(ctx context.Context) error {
	// MCP uses stdio transport. stdout MUST be pure JSON-RPC; all
	// status/debug output goes to stderr only.
	fmt.Fprintln(os.Stderr, "mcp-tasks MCP server starting...")

	taskStore := GetStore()
	config := GetConfig()

	impl := &mcpsdk.Implementation{
		Name:    "mcp-tasks",
		Version: version,
	}
	serverOpts := &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			fmt.Fprintln(os.Stderr, "MCP connection established")
		},
	}

	server := mcpsdk.NewServer(impl, serverOpts)
	mcp.RegisterTools(server, taskStore)
	mcp.RegisterPrompts(server, config.Project.TemplatesDir)

	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
