package commands

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"strconv"
	"syscall"

	"golang.org/x/term"

	"github.com/Kiruse/kayring/internal/crypto"
	"github.com/Kiruse/kayring/internal/util/memzero"
)

// readSecret prompts on stdout and reads a line from the terminal without
// echoing it.
func readSecret(prompt string) (string, error) {
	fmt.Printf("%s ", prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	defer memzero.Zero(b)
	return string(b), nil
}

// resolvePassword returns the password for an operation: an explicitly set
// -p flag wins, then KAYRING_PASSWORD, then an interactive prompt. Under
// silent an absent password is the empty string. confirm asks twice and
// requires a match.
func resolvePassword(flagSet bool, flagVal string, silent, confirm bool) (string, error) {
	if flagSet {
		return flagVal, nil
	}
	if v, ok := os.LookupEnv("KAYRING_PASSWORD"); ok {
		return v, nil
	}
	if silent {
		return "", nil
	}
	pw, err := readSecret("Enter password:")
	if err != nil {
		return "", err
	}
	if confirm {
		pw2, err := readSecret("Confirm password:")
		if err != nil {
			return "", err
		}
		if subtle.ConstantTimeCompare([]byte(pw), []byte(pw2)) != 1 {
			return "", errors.New("passwords do not match")
		}
	}
	return pw, nil
}

// defaultRounds resolves the derivation round count from
// KAYRING_DERIVATION_ROUNDS, falling back to the built-in default.
func defaultRounds() uint32 {
	if v, ok := os.LookupEnv("KAYRING_DERIVATION_ROUNDS"); ok {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil && n > 0 {
			return uint32(n)
		}
	}
	return crypto.DefaultIterations
}
