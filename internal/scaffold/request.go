package scaffold

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidRequest is wrapped by every NewRequest rejection.
var ErrInvalidRequest = errors.New("invalid project request")

// reservedNameChars cannot appear in a file name on Windows, where the
// engine editor runs.
const reservedNameChars = `<>:"/\|?*`

// Request identifies the project to create.
type Request struct {
	Name      string
	Directory string
}

// NewRequest validates raw user input. The name becomes both a directory
// and a file name, so it must be a single legal path element.
func NewRequest(name, directory string) (Request, error) {
	name = strings.TrimSpace(name)
	directory = strings.TrimSpace(directory)

	if err := ValidateName(name); err != nil {
		return Request{}, err
	}
	if err := ValidateDirectory(directory); err != nil {
		return Request{}, err
	}

	return Request{Name: name, Directory: directory}, nil
}

// ValidateDirectory checks a trimmed parent directory.
func ValidateDirectory(directory string) error {
	if directory == "" {
		return fmt.Errorf("%w: project directory is required", ErrInvalidRequest)
	}
	if strings.ContainsRune(directory, 0) {
		return fmt.Errorf("%w: project directory contains a NUL byte", ErrInvalidRequest)
	}
	return nil
}

// ValidateName checks a trimmed project name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: project name is required", ErrInvalidRequest)
	case name == "." || name == "..":
		return fmt.Errorf("%w: project name %q is not a valid file name", ErrInvalidRequest, name)
	case strings.HasSuffix(name, "."):
		return fmt.Errorf("%w: project name %q must not end with a dot", ErrInvalidRequest, name)
	}
	if i := strings.IndexAny(name, reservedNameChars); i >= 0 {
		return fmt.Errorf("%w: project name %q contains %q", ErrInvalidRequest, name, name[i])
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: project name %q contains a control character", ErrInvalidRequest, name)
		}
	}
	return nil
}
