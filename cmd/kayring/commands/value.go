package commands

import (
	"encoding/hex"
	"errors"
	"strings"
)

// Private keys cross the CLI boundary as 0x-prefixed hex strings; the core
// only ever sees the decoded bytes.

func decodeValue(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") {
		return nil, errors.New("value must be a hex string starting with '0x'")
	}
	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return nil, errors.New("value must be a valid hex string")
	}
	return b, nil
}

func encodeValue(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
