package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"github.com/joho/godotenv"

	"alabaztrum_echo/internal/config"
	"alabaztrum_echo/internal/logging"
	"alabaztrum_echo/internal/services"
)

func main() {
	// Load envs
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found")
	}

	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("setup_cors: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.LoadTool()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := flag.NewFlagSet("setup_cors", flag.ContinueOnError)
	flags.SetOutput(stderr)
	bucketName := flags.String("bucket", cfg.Firebase.StorageBucket, "Storage bucket to configure")
	credPath := flags.String("credentials", cfg.Firebase.CredentialsPath, "Firebase service account file")
	dryRun := flags.Bool("dry-run", false, "Print the CORS policy without applying it")
	timeout := flags.Duration("timeout", 30*time.Second, "Timeout for the storage API call")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *dryRun {
		return printPolicy(stdout, services.CORSPolicy())
	}

	logger, err := logging.New(cfg.LogLevel, true)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetOutput(stderr)

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	app, err := services.InitFirebase(ctx, services.FirebaseOptions{
		CredentialsPath: *credPath,
		ProjectID:       cfg.Firebase.ProjectID,
		StorageBucket:   *bucketName,
	}, logger)
	if err != nil {
		return err
	}

	bucket, err := services.StorageBucket(ctx, app, *bucketName)
	if err != nil {
		return fmt.Errorf("failed to open bucket: %w", err)
	}

	cors, err := services.ApplyBucketCORS(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to set CORS policy: %w", err)
	}

	logger.WithField("bucket", *bucketName).Info("Set CORS policies for bucket")
	return printPolicy(stdout, cors)
}

func printPolicy(w io.Writer, policy []storage.CORS) error {
	out, err := json.MarshalIndent(policy, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode policy: %w", err)
	}
	_, err = fmt.Fprintf(w, "Current CORS: %s\n", out)
	return err
}
