// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// booleanKeys are the preferences that only accept true or false.
var booleanKeys = map[string]struct{}{
	models.ConfigKeyJSON:       {},
	models.ConfigKeyPretty:     {},
	models.ConfigKeyAPITestnet: {},
	models.ConfigKeyAPISSL:     {},
}

type clientConfigService struct {
	storage   store.ConfigStorage
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientConfigService constructs a [ClientConfigService] writing through
// to storage.
func NewClientConfigService(storage store.ConfigStorage, validator validators.Validator, logger *logger.Logger) ClientConfigService {
	return &clientConfigService{
		storage:   storage,
		validator: validator,
		logger:    logger,
	}
}

// Show implements [ClientConfigService].
func (s *clientConfigService) Show(cfg *models.Config) *models.Config {
	return cfg.Clone()
}

// Get implements [ClientConfigService].
func (s *clientConfigService) Get(cfg *models.Config, key string) (*models.Node, error) {
	path, err := models.ParseVariablePath(key)
	if err != nil {
		return nil, err
	}
	node, err := cfg.Get(path)
	if err != nil {
		return nil, err
	}
	return node.Clone(), nil
}

// SetVariable implements [ClientConfigService].
func (s *clientConfigService) SetVariable(ctx context.Context, cfg *models.Config, path models.VariablePath, value *models.Node) (models.SetResult, error) {
	if err := s.validator.Validate(ctx, path); err != nil {
		return models.SetResult{}, err
	}
	if value == nil {
		value = models.NewLeaf(nil)
	}
	value = value.Clone()

	// a map value can push the tree past the depth the loader accepts
	next := cfg.Clone()
	if err := next.Set(path, value); err != nil {
		return models.SetResult{}, err
	}
	if err := s.validator.Validate(ctx, next, validators.FieldDepth); err != nil {
		return models.SetResult{}, fmt.Errorf("%w: %w", models.ErrInvalidPath, err)
	}

	if err := cfg.Set(path, value); err != nil {
		return models.SetResult{}, err
	}

	s.logger.Debug().Str("path", path.String()).Msg("config variable updated in memory")

	result := models.SetResult{
		Message:   fmt.Sprintf("Successfully set %s to %s.", path, formatValue(value)),
		Persisted: true,
	}

	if err := s.storage.Persist(ctx, cfg); err != nil {
		result.Persisted = false
		result.Warning = err.Error()
		return result, err
	}
	return result, nil
}

// SetBoolean implements [ClientConfigService].
func (s *clientConfigService) SetBoolean(ctx context.Context, cfg *models.Config, path models.VariablePath, literal string) (models.SetResult, error) {
	var value bool
	switch literal {
	case "true":
		value = true
	case "false":
		value = false
	default:
		return models.SetResult{}, ErrValueNotBoolean
	}
	return s.SetVariable(ctx, cfg, path, models.NewLeaf(value))
}

// Set implements [ClientConfigService].
func (s *clientConfigService) Set(ctx context.Context, cfg *models.Config, key, raw string) (models.SetResult, error) {
	path, err := models.ParseVariablePath(key)
	if err != nil {
		return models.SetResult{}, err
	}

	if _, ok := booleanKeys[path.String()]; ok {
		return s.SetBoolean(ctx, cfg, path, raw)
	}
	return s.SetVariable(ctx, cfg, path, models.NewLeaf(raw))
}

func formatValue(n *models.Node) string {
	if n.IsMap() {
		data, err := n.MarshalJSON()
		if err != nil {
			return "{}"
		}
		return string(data)
	}
	if n.Value() == nil {
		return "null"
	}
	return fmt.Sprint(n.Value())
}
