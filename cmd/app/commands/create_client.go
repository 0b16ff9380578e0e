package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	authUseCase "github.com/allisson/tenantvault/internal/auth/usecase"
)

// RunCreateClient creates a new API client and prints its id and plain
// secret in either text or JSON format. The plain secret is shown only
// once; only its argon2id hash is stored.
//
// Requirements: Database must be migrated and accessible.
func RunCreateClient(
	ctx context.Context,
	clientUseCase authUseCase.ClientUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	format string,
) error {
	logger.Info("creating new client", slog.String("name", name))

	client, plainSecret, err := clientUseCase.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	if format == "json" {
		result := map[string]string{
			"client_id": client.ID.String(),
			"secret":    plainSecret,
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(writer, string(jsonBytes))
	} else {
		_, _ = fmt.Fprintln(writer, "Client created successfully!")
		_, _ = fmt.Fprintf(writer, "Client ID: %s\n", client.ID.String())
		_, _ = fmt.Fprintf(writer, "Secret: %s\n", plainSecret)
		_, _ = fmt.Fprintln(writer, "\nIMPORTANT: The secret is shown only once. Store it securely.")
		_, _ = fmt.Fprintf(writer, "Use 'Authorization: Bearer %s.%s' to authenticate.\n", client.ID.String(), plainSecret)
	}

	logger.Info("client created successfully",
		slog.String("client_id", client.ID.String()),
		slog.String("name", name),
	)

	return nil
}
