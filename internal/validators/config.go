package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Field name constants accepted by [ConfigValidator.Validate].
const (
	// FieldRoot requires the tree root to be a JSON object.
	FieldRoot = "root"

	// FieldDepth bounds the nesting depth of the tree by MaxConfigDepth.
	FieldDepth = "depth"

	// FieldKeys rejects empty keys and keys containing a dot, which could
	// never be addressed by a dot-path.
	FieldKeys = "keys"
)

// MaxConfigDepth is the deepest nesting accepted in a user config file.
const MaxConfigDepth = 32

// ConfigValidator checks the shape of user supplied configuration trees and
// variable paths before they are merged into or applied to the live config.
//
// The check is structural only: leaf types are not compared against the
// defaults, so a user may change the type of any value.
type ConfigValidator struct {
}

// NewConfigValidator constructs a new ConfigValidator and returns it as the
// Validator interface.
func NewConfigValidator() Validator {
	return &ConfigValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - *models.Node (FieldRoot, FieldDepth, FieldKeys; all by default)
//   - models.VariablePath (fields are ignored; at most MaxConfigDepth segments)
//
// Returns ErrUnsupportedType for anything else.
func (v *ConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.Node:
		if value == nil {
			return ErrConfigNotObject
		}
		return v.validateTree(ctx, value, fields...)
	case models.VariablePath:
		if err := value.Validate(); err != nil {
			return err
		}
		if len(value) > MaxConfigDepth {
			return fmt.Errorf("%w: %w", models.ErrInvalidPath, ErrConfigTooDeep)
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

func (v *ConfigValidator) validateTree(_ context.Context, tree *models.Node, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRoot, FieldDepth, FieldKeys}
	}

	for _, f := range fields {
		switch f {
		case FieldRoot:
			if !tree.IsMap() {
				return fmt.Errorf("%w: got %s", ErrConfigNotObject, tree.Kind())
			}
		case FieldDepth:
			if depth(tree) > MaxConfigDepth {
				return ErrConfigTooDeep
			}
		case FieldKeys:
			if err := validateKeys(tree, ""); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func depth(n *models.Node) int {
	if !n.IsMap() {
		return 0
	}
	deepest := 0
	for _, key := range n.Keys() {
		child, _ := n.Child(key)
		if d := depth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

func validateKeys(n *models.Node, prefix string) error {
	for _, key := range n.Keys() {
		if key == "" || strings.ContainsRune(key, '.') {
			return fmt.Errorf("%w: %q under %q", ErrInvalidConfigKey, key, prefix)
		}
		child, _ := n.Child(key)
		if child.IsMap() {
			childPrefix := key
			if prefix != "" {
				childPrefix = prefix + "." + key
			}
			if err := validateKeys(child, childPrefix); err != nil {
				return err
			}
		}
	}
	return nil
}
