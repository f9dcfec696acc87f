package models

import "github.com/shopspring/decimal"

// ScenarioPoint — одна точка трехсценарной проекции накоплений.
type ScenarioPoint struct {
	PeriodLabel  string          `json:"period_label"`
	Conservative decimal.Decimal `json:"conservative"`
	Realistic    decimal.Decimal `json:"realistic"`
	Optimistic   decimal.Decimal `json:"optimistic"`
}

// ScenarioSeries строится по запросу для виджета прогноза и нигде не хранится.
type ScenarioSeries []ScenarioPoint
