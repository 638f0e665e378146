package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// FirebaseOptions selects the project, bucket and service account used by
// InitFirebase.
type FirebaseOptions struct {
	CredentialsPath string
	ProjectID       string
	StorageBucket   string
}

// InitFirebase initializes the Firebase Admin SDK bound to the given storage
// bucket. When the credentials file cannot be used it falls back to
// application default credentials.
func InitFirebase(ctx context.Context, opts FirebaseOptions, logger logrus.FieldLogger) (*firebase.App, error) {
	conf := &firebase.Config{
		ProjectID:     opts.ProjectID,
		StorageBucket: opts.StorageBucket,
	}

	var clientOpts []option.ClientOption
	creds, err := serviceAccountCredentials(opts.CredentialsPath)
	if err != nil {
		logger.WithError(err).WithField("credentials", opts.CredentialsPath).Warn("Could not load credentials file, using default credentials")
	} else {
		clientOpts = append(clientOpts, creds)
	}

	app, err := firebase.NewApp(ctx, conf, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase: %w", err)
	}

	if len(clientOpts) > 0 {
		logger.WithField("credentials", opts.CredentialsPath).Info("Firebase initialized with credentials file")
	} else {
		logger.Info("Firebase initialized with default credentials")
	}
	return app, nil
}

// serviceAccountCredentials reads a service account key file. The Admin SDK
// only opens credential files when the first client is created, so the file
// is checked here to decide between it and the default credentials.
func serviceAccountCredentials(path string) (option.ClientOption, error) {
	if path == "" {
		return nil, fmt.Errorf("no credentials file configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var key struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	if key.Type != "service_account" {
		return nil, fmt.Errorf("credentials file has type %q; want service_account", key.Type)
	}
	return option.WithCredentialsJSON(data), nil
}
