package commands

import (
	"fmt"
	"io"
	"log/slog"

	authService "github.com/allisson/binbot/internal/auth/service"
)

// RunCreateAPIKey prints a fresh admin API key and the hash to put in
// API_KEY_HASH. The plain key is shown once and never stored.
func RunCreateAPIKey(
	secretService authService.SecretService,
	logger *slog.Logger,
	w io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	plain, hashed, err := secretService.GenerateSecret()
	if err != nil {
		return fmt.Errorf("failed to generate api key: %w", err)
	}

	logger.Info("api key generated")

	if format == "json" {
		return writeJSON(w, map[string]string{
			"api_key":      plain,
			"api_key_hash": hashed,
		})
	}

	_, err = fmt.Fprintf(w,
		"API key (shown once, keep it safe):\n  %s\n\nSet this on the server:\n  API_KEY_HASH='%s'\n",
		plain,
		hashed,
	)
	return err
}
