package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-effects-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-effects-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-effects-mcp - MCP server for raster image effects")
			fmt.Println()
			fmt.Println("Usage: image-effects-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_EFFECTS_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  IMAGE_EFFECTS_PREVIEW_MAX=512    Longest side of effect previews")
			fmt.Println()
			fmt.Println("Effects are applied to in-memory working copies; use image_save")
			fmt.Println("to write a result. The server speaks MCP over stdin/stdout.")
			return
		}
	}

	// stdout carries the protocol
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	server.Version = Version
	cfg := server.ConfigFromEnv()
	if cfg.Debug {
		log.Printf("Image Effects MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
