package testrun

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// flakinessFields mirrors Flakiness without its custom decoders.
type flakinessFields struct {
	Kind   FlakinessKind `json:"kind" yaml:"kind"`
	Reason string        `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// UnmarshalJSON accepts either the object form {"kind": "flaky", "reason": "..."}
// or the shorthand string form "flaky".
func (f *Flakiness) UnmarshalJSON(data []byte) error {
	var kind FlakinessKind
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if err := kind.UnmarshalText([]byte(s)); err != nil {
			return err
		}
		*f = Flakiness{Kind: kind}
		return nil
	}

	var fields flakinessFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("flakiness: %w", err)
	}
	*f = Flakiness(fields)
	return nil
}

// UnmarshalYAML accepts the same forms as UnmarshalJSON.
func (f *Flakiness) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var kind FlakinessKind
		if err := kind.UnmarshalText([]byte(value.Value)); err != nil {
			return err
		}
		*f = Flakiness{Kind: kind}
		return nil
	}

	var fields flakinessFields
	if err := value.Decode(&fields); err != nil {
		return fmt.Errorf("flakiness: %w", err)
	}
	*f = Flakiness(fields)
	return nil
}
