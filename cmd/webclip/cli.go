package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Documents webclip.DocumentService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve  ServeCmd  `cmd:"" help:"Run the capture ingestion server"`
	List   ListCmd   `cmd:"" help:"List stored documents, newest first"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored document"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int  `short:"n" default:"20" help:"Maximum documents to show"`
	Full  bool `help:"Show document summaries"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string  `default:":3001" env:"WEBCLIP_ADDR" help:"HTTP listen address"`
	NLPURL string  `name:"nlp-url" env:"WEBCLIP_NLP_URL" help:"Base URL of the NLP analysis service (empty disables the NLP stage)"`
	Model  string  `env:"WEBCLIP_MODEL" help:"Preferred Gemini model (probed first)"`
	NoAI   bool    `name:"no-ai" env:"WEBCLIP_NO_AI" help:"Disable generative enrichment"`
	RPS    float64 `default:"0.34" help:"Ingestion rate limit in requests per second"`
	Burst  int     `default:"10" help:"Ingestion rate limit burst size"`
}
