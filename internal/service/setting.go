package service

import (
	"encoding/json"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"ordertrack/internal/models"
)

// decodeValue returns the stored value JSON-decoded when possible, otherwise
// the raw string. Arbitrary keys are allowed and treated as opaque.
func decodeValue(raw string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

func listFallback(key string) []string {
	switch key {
	case models.SettingStatuses:
		return models.DefaultStatuses()
	default:
		return models.DefaultVendors()
	}
}

func (s *Service) GetAllSettings() (map[string]interface{}, error) {
	rows, err := s.SettingStore.GetAll()
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(rows))
	for _, row := range rows {
		out[row.Key] = decodeValue(row.Value)
	}
	return out, nil
}

func (s *Service) GetSetting(key string) (interface{}, error) {
	row, err := s.SettingStore.Get(key)
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeValue(row.Value), nil
}

func (s *Service) SetSetting(key string, value interface{}) error {
	stored, ok := value.(string)
	if !ok {
		buf, err := json.Marshal(value)
		if err != nil {
			return errors.Wrap(err, "serialize setting value")
		}
		stored = string(buf)
	}
	return s.SettingStore.Set(key, stored)
}

// GetStringList reads one of the well-known list settings, falling back to
// the hardcoded defaults when the row is absent. An unparseable stored value
// is surfaced as a single-element list rather than an error.
func (s *Service) GetStringList(key string) ([]string, error) {
	row, err := s.SettingStore.Get(key)
	if gorm.IsRecordNotFoundError(err) {
		return listFallback(key), nil
	}
	if err != nil {
		return nil, err
	}

	var list []string
	if err := json.Unmarshal([]byte(row.Value), &list); err != nil {
		return []string{row.Value}, nil
	}
	return list, nil
}

func (s *Service) SetStringList(key string, value interface{}) error {
	if _, ok := value.([]interface{}); !ok {
		return ErrNotArray
	}
	buf, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "serialize list setting")
	}
	return s.SettingStore.Set(key, string(buf))
}
