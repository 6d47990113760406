package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hidenorly/aws-bedrock-playground/internal/llm"
	"github.com/hidenorly/aws-bedrock-playground/internal/setup"
)

const reviewSystemPrompt = "You're the world class best programmer and you're doing pair programming. " +
	"You're requeted to code-review. You need pointed out what's problem, the potential risk and the future expansion. " +
	"And you need to explain how to solve with expected examples. " +
	"Example code is expected as diff output manner as -:original code +:modified code"

const reviewUserPrompt = "Please review the following code and please explain the problem and please show the better code about the problematic part.\n"

// Review is the code-review entrypoint. It sends the supplied sources with
// fixed review instructions and returns the process exit code.
func Review(args []string) int {
	app, cfg, err := bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		return 1
	}

	if err := app.reviewFromArgs(args, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parsing args: %v\n", err)
		return 2
	}

	return app.runReview(context.Background())
}

func (app *env) reviewFromArgs(args []string, cfg *setup.Config) error {
	fl := flag.NewFlagSet("review", flag.ContinueOnError)

	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	fl.StringVar(&app.accessKey, "k", accessKey, "access key id, or set AWS_ACCESS_KEY_ID / .aws/credentials")
	fl.StringVar(&app.accessKey, "accessKey", accessKey, "access key id, or set AWS_ACCESS_KEY_ID / .aws/credentials")

	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	fl.StringVar(&app.secretKey, "s", secretKey, "secret key, or set AWS_SECRET_ACCESS_KEY / .aws/credentials")
	fl.StringVar(&app.secretKey, "secretKey", secretKey, "secret key, or set AWS_SECRET_ACCESS_KEY / .aws/credentials")

	fl.StringVar(&app.region, "r", cfg.Region, "service region")
	fl.StringVar(&app.region, "region", cfg.Region, "service region")

	fl.StringVar(&app.model, "m", cfg.ModelID, "model id")
	fl.StringVar(&app.model, "model", cfg.ModelID, "model id")

	if err := fl.Parse(args); err != nil {
		return err
	}

	app.files = fl.Args()
	app.maxTokens = cfg.MaxTokens

	return nil
}

func (app *env) runReview(ctx context.Context) int {
	codes, err := app.readContent()
	if err != nil {
		app.logger.Error().Err(err).Msg("Failed to read input")
		return 1
	}

	return app.invoke(ctx, llm.Request{
		System:    reviewSystemPrompt,
		Prompt:    reviewUserPrompt + codes,
		MaxTokens: app.maxTokens,
	})
}
