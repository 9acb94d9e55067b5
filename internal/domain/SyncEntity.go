package domain

import (
	"encoding/json"
	"fmt"
)

// SyncEntityType identifica a tabela de destino de um lote recebido via webhook
type SyncEntityType string

const (
	SyncEntityAccounts    SyncEntityType = "accounts"
	SyncEntityCampaigns   SyncEntityType = "campaigns"
	SyncEntityAdSets      SyncEntityType = "ad_sets"
	SyncEntityAds         SyncEntityType = "ads"
	SyncEntityPerformance SyncEntityType = "performance"
)

// ParseSyncEntityType valida o discriminador de tipo de entidade do envelope
func ParseSyncEntityType(value string) (SyncEntityType, error) {
	switch SyncEntityType(value) {
	case SyncEntityAccounts, SyncEntityCampaigns, SyncEntityAdSets, SyncEntityAds, SyncEntityPerformance:
		return SyncEntityType(value), nil
	}
	return "", fmt.Errorf("tipo de entidade desconhecido: %s", value)
}

// AccountRecord representa uma conta de anúncios enviada pelo n8n.
// Campos extras no payload são ignorados.
type AccountRecord struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Status      string `json:"status"`
	Currency    string `json:"currency"`
	Timezone    string `json:"timezone"`
}

// CampaignRecord representa uma campanha enviada pelo n8n
type CampaignRecord struct {
	CampaignID      string  `json:"campaign_id"`
	AccountID       string  `json:"account_id"`
	CampaignName    string  `json:"campaign_name"`
	Status          string  `json:"status"`
	Objective       string  `json:"objective"`
	BuyingType      string  `json:"buying_type"`
	StartTime       *string `json:"start_time"`
	StopTime        *string `json:"stop_time"`
	BudgetRemaining *string `json:"budget_remaining"`
	DailyBudget     *string `json:"daily_budget"`
	LifetimeBudget  *string `json:"lifetime_budget"`
}

// AdSetRecord representa um conjunto de anúncios enviado pelo n8n.
// Targeting é um documento opaco, armazenado serializado sem interpretação.
type AdSetRecord struct {
	AdSetID          string          `json:"ad_set_id"`
	CampaignID       string          `json:"campaign_id"`
	AdSetName        string          `json:"ad_set_name"`
	Status           string          `json:"status"`
	BidStrategy      string          `json:"bid_strategy"`
	DailyBudget      *string         `json:"daily_budget"`
	LifetimeBudget   *string         `json:"lifetime_budget"`
	Targeting        json.RawMessage `json:"targeting"`
	OptimizationGoal string          `json:"optimization_goal"`
}

// AdRecord representa um anúncio enviado pelo n8n
type AdRecord struct {
	AdID       string `json:"ad_id"`
	AdSetID    string `json:"ad_set_id"`
	AdName     string `json:"ad_name"`
	Status     string `json:"status"`
	CreativeID string `json:"creative_id"`
	PreviewURL string `json:"preview_url"`
}

// PerformanceRecord é uma linha de métricas diárias com conjunto de colunas
// variável: os campos de identidade e breakdown formam a chave de conflito e
// todo o restante é repassado como coluna de métrica, sem schema fixo.
type PerformanceRecord map[string]interface{}

// PerformanceConflictColumns são as colunas que compõem a chave natural de
// ads_performance_daily. Exceto date_start e account_id, todas podem estar
// ausentes no registro e são canonizadas com COALESCE no índice único.
var PerformanceConflictColumns = []string{
	"date_start",
	"account_id",
	"campaign_id",
	"ad_set_id",
	"ad_id",
	"age_range",
	"gender",
	"platform",
	"placement",
	"device_platform",
	"country_code",
	"region",
}

// Validate garante a presença dos campos de identidade obrigatórios da linha
func (p PerformanceRecord) Validate() error {
	for _, required := range []string{"date_start", "account_id"} {
		value, ok := p[required]
		if !ok || value == nil || value == "" {
			return fmt.Errorf("registro de performance sem o campo obrigatório %q", required)
		}
	}
	return nil
}

// IsConflictColumn indica se o campo faz parte da chave de conflito
func IsConflictColumn(field string) bool {
	for _, column := range PerformanceConflictColumns {
		if field == column {
			return true
		}
	}
	return false
}
