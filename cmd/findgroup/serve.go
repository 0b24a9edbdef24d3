package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/dshills/findgroup/internal/mcp"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			// Log startup info to stderr (stdout reserved for MCP protocol)
			log.Printf("findgroup MCP server v%s starting...", version)

			server, err := mcp.NewServer(cfg)
			if err != nil {
				log.Printf("Failed to create MCP server: %v", err)
				return err
			}

			ctx := cmd.Context()
			errChan := make(chan error, 1)
			go func() {
				log.Println("MCP server ready, listening on stdio...")
				errChan <- server.Serve(ctx)
			}()

			// Wait for shutdown signal or error
			select {
			case <-ctx.Done():
				log.Println("Shutting down gracefully...")
			case err := <-errChan:
				if err != nil {
					log.Printf("Server error: %v", err)
					return err
				}
			}

			log.Println("Server stopped")
			return nil
		},
	}
}
