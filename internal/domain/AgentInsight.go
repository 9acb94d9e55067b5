package domain

import (
	"time"
)

// AgentInsight representa um insight gerado pelo agente de análise (fora deste
// repositório) e armazenado em agent_insights para consumo do dashboard
type AgentInsight struct {
	ID            int64     `json:"id"`
	AccountID     *string   `json:"account_id"`
	InsightType   string    `json:"insight_type"`
	Priority      string    `json:"priority"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	IsRead        bool      `json:"is_read"`
	IsImplemented bool      `json:"is_implemented"`
	Timestamp     time.Time `json:"timestamp"`
}

// AgentInsightFilters são os filtros opcionais da listagem de insights
type AgentInsightFilters struct {
	IsRead      *bool
	Priority    string
	InsightType string
	AccountID   string
	Limit       int
	Page        int
}

// Pagination descreve a página retornada pela listagem de insights
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// AgentInsightPage é a resposta paginada da listagem de insights
type AgentInsightPage struct {
	Data       []*AgentInsight `json:"data"`
	Pagination Pagination      `json:"pagination"`
}
