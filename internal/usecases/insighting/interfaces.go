package insighting

import (
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
)

// AgentInsighter expõe a navegação dos insights gerados pelo agente de análise
type AgentInsighter interface {
	// ListInsights retorna uma página de insights ordenada do mais recente ao
	// mais antigo, aplicando os filtros opcionais
	ListInsights(filters *domain.AgentInsightFilters) (*domain.AgentInsightPage, error)

	// UnreadCount retorna a contagem de insights não lidos, opcionalmente
	// restrita a uma conta
	UnreadCount(accountID string) (int, error)

	// MarkRead atualiza o estado de leitura de um insight
	MarkRead(id int64, isRead bool) error

	// MarkImplemented atualiza o estado de implementação de um insight
	MarkImplemented(id int64, isImplemented bool) error
}

// CampaignInsighter expõe os relatórios de análise de campanha
type CampaignInsighter interface {
	ListCampaignInsights() ([]*domain.CampaignInsight, error)
	GetCampaignInsightByID(id string) (*domain.CampaignInsight, error)
	CreateCampaignInsight(input *domain.NewCampaignInsightInput) (*domain.CampaignInsight, error)
}

// InsightService combina as duas superfícies de leitura consumidas pelo dashboard
type InsightService interface {
	AgentInsighter
	CampaignInsighter
}
