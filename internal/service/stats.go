package service

import "ordertrack/internal/models"

func (s *Service) GetStats() (models.Stats, error) {
	return s.StatsStore.Collect()
}
