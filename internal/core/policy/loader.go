package policy

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileFormat struct {
	Public []string `yaml:"public"`
	Rules  []Rule   `yaml:"rules"`
}

// LoadFile reads a policy from a YAML document of the form
//
//	public:
//	  - /authenticate
//	rules:
//	  - method: POST
//	    pattern: /hobbies
//	    roles: [BUSINESS_USER]
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Policy, error) {
	var f fileFormat
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode policy: %w", err)
	}
	if len(f.Public) == 0 && len(f.Rules) == 0 {
		return nil, fmt.Errorf("policy defines no public routes and no rules")
	}
	return New(f.Public, f.Rules)
}
