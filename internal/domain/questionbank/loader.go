package questionbank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrLoad means the question bank file could not be read at all.
	// Distinct from an empty bank: callers must be able to tell "no file"
	// from "no questions exist".
	ErrLoad = errors.New("question bank load failed")

	// ErrFormat means the file was read but its structure is not a valid
	// question bank.
	ErrFormat = errors.New("question bank malformed")
)

// bankFile is the on-disk shape: an object holding a questions array.
type bankFile struct {
	Questions []RawQuestion `json:"questions"`
}

// LoadFile reads and indexes a question bank file. The file is read once
// at startup; both failure modes are terminal for the call and the caller
// decides whether to retry, abort, or substitute an empty bank.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return Parse(data)
}

// Parse indexes question bank file contents.
func Parse(data []byte) (*Bank, error) {
	var f bankFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if f.Questions == nil {
		return nil, fmt.Errorf("%w: missing questions array", ErrFormat)
	}
	return Build(f.Questions)
}
