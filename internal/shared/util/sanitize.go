package util

import (
	"errors"
	"strings"
)

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// DerivedResumeFileName builds the stored file name for a generated resume.
// "Ada Lovelace" becomes "Ada_Lovelace_Resume.pdf".
func DerivedResumeFileName(candidateName string) string {
	base := strings.Join(strings.Fields(strings.TrimSpace(candidateName)), "_")
	if base == "" {
		base = "Resume"
	}
	return base + "_Resume.pdf"
}
