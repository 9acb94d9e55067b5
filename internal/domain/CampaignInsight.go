package domain

import (
	"encoding/json"
	"time"
)

// CampaignInsight representa uma análise de campanha gravada em insights_campanha.
// Insights e Recomendacoes são listas serializadas como JSON no banco e
// devolvidas ao dashboard sem reinterpretação.
type CampaignInsight struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Periodo       string          `json:"periodo"`
	Insights      json.RawMessage `json:"insights"`
	Recomendacoes json.RawMessage `json:"recomendacoes"`
	Conclusao     string          `json:"conclusao"`
	CriadoEm      time.Time       `json:"criado_em"`
}

// NewCampaignInsightInput é o corpo aceito na criação de um insight de campanha.
// Insights e Recomendacoes podem chegar como array JSON ou como string já
// serializada — ambos são normalizados antes da gravação.
type NewCampaignInsightInput struct {
	Nome          string          `json:"nome"`
	Periodo       string          `json:"periodo"`
	Insights      json.RawMessage `json:"insights"`
	Recomendacoes json.RawMessage `json:"recomendacoes"`
	Conclusao     string          `json:"conclusao"`
}
