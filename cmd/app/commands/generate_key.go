package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	vaultUseCase "github.com/allisson/tenantvault/internal/vault/usecase"
)

// RunGenerateKey creates a new encryption key and prints its id. Pass an
// empty explicitID to derive one from random material and the current time.
//
// Requirements: Database must be migrated and MASTER_KEY_URI configured.
func RunGenerateKey(
	ctx context.Context,
	keyService vaultUseCase.KeyService,
	logger *slog.Logger,
	writer io.Writer,
	explicitID string,
	format string,
) error {
	logger.Info("generating encryption key")

	keyID, err := keyService.GenerateKey(ctx, explicitID)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	if format == "json" {
		result := map[string]string{"key_id": keyID}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(writer, string(jsonBytes))
	} else {
		_, _ = fmt.Fprintf(writer, "Key generated successfully!\nKey ID: %s\n", keyID)
	}

	logger.Info("key generated", slog.String("key_id", keyID))
	return nil
}
