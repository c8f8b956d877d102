package blob

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed policy/*.yaml
var policyFiles embed.FS

// UploadType describes one accepted upload format.
type UploadType struct {
	ContentType string   `yaml:"content_type" json:"contentType"`
	Extensions  []string `yaml:"extensions" json:"extensions"`
}

// UploadPolicy is the embedded upload acceptance policy: which content
// types the upload route takes and how large a file may be.
type UploadPolicy struct {
	MaxSizeBytes int64        `yaml:"max_size_bytes" json:"maxSizeBytes"`
	Types        []UploadType `yaml:"types" json:"types"`
}

// LoadUploadPolicy parses the embedded policy file.
func LoadUploadPolicy() (*UploadPolicy, error) {
	data, err := policyFiles.ReadFile("policy/upload.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read upload policy: %w", err)
	}

	var policy UploadPolicy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upload policy: %w", err)
	}
	if policy.MaxSizeBytes <= 0 || len(policy.Types) == 0 {
		return nil, fmt.Errorf("upload policy is incomplete")
	}

	return &policy, nil
}

// Allows reports whether the content type is accepted.
func (p *UploadPolicy) Allows(contentType string) bool {
	for _, t := range p.Types {
		if strings.EqualFold(t.ContentType, contentType) {
			return true
		}
	}
	return false
}
