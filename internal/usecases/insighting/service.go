package insighting

import (
	"bytes"
	"database/sql"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/repository"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
	"github.com/vfg2006/marketing-analytics-api/pkg/utils"
)

var jsonDecoder = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultPageLimit = 10
)

type Service struct {
	agentInsightRepo    repository.AgentInsightRepository
	campaignInsightRepo repository.CampaignInsightRepository
}

func NewService(
	agentInsightRepo repository.AgentInsightRepository,
	campaignInsightRepo repository.CampaignInsightRepository,
) InsightService {
	return &Service{
		agentInsightRepo:    agentInsightRepo,
		campaignInsightRepo: campaignInsightRepo,
	}
}

func (s *Service) ListInsights(filters *domain.AgentInsightFilters) (*domain.AgentInsightPage, error) {
	if filters == nil {
		filters = &domain.AgentInsightFilters{}
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultPageLimit
	}
	if filters.Page <= 0 {
		filters.Page = 1
	}

	insights, err := s.agentInsightRepo.List(filters)
	if err != nil {
		return nil, pkgerrors.Wrap(ErrDatabaseOperation, err.Error())
	}

	total, err := s.agentInsightRepo.CountByFilters(filters)
	if err != nil {
		return nil, pkgerrors.Wrap(ErrDatabaseOperation, err.Error())
	}

	pages := total / filters.Limit
	if total%filters.Limit != 0 {
		pages++
	}

	return &domain.AgentInsightPage{
		Data: insights,
		Pagination: domain.Pagination{
			Page:  filters.Page,
			Limit: filters.Limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (s *Service) UnreadCount(accountID string) (int, error) {
	count, err := s.agentInsightRepo.CountUnread(accountID)
	if err != nil {
		return 0, pkgerrors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return count, nil
}

func (s *Service) MarkRead(id int64, isRead bool) error {
	if err := s.agentInsightRepo.SetRead(id, isRead); err != nil {
		if err == sql.ErrNoRows {
			return ErrInsightNotFound
		}
		return pkgerrors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return nil
}

func (s *Service) MarkImplemented(id int64, isImplemented bool) error {
	if err := s.agentInsightRepo.SetImplemented(id, isImplemented); err != nil {
		if err == sql.ErrNoRows {
			return ErrInsightNotFound
		}
		return pkgerrors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return nil
}

func (s *Service) ListCampaignInsights() ([]*domain.CampaignInsight, error) {
	insights, err := s.campaignInsightRepo.ListAll()
	if err != nil {
		return nil, pkgerrors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return insights, nil
}

func (s *Service) GetCampaignInsightByID(id string) (*domain.CampaignInsight, error) {
	insight, err := s.campaignInsightRepo.GetByID(id)
	if err != nil {
		return nil, pkgerrors.Wrap(ErrDatabaseOperation, err.Error())
	}
	if insight == nil {
		return nil, ErrInsightNotFound
	}
	return insight, nil
}

func (s *Service) CreateCampaignInsight(input *domain.NewCampaignInsightInput) (*domain.CampaignInsight, error) {
	if input == nil || input.Nome == "" || input.Periodo == "" || input.Conclusao == "" ||
		len(input.Insights) == 0 || len(input.Recomendacoes) == 0 {
		return nil, ErrMissingRequiredField
	}

	insights, err := normalizeJSONList(input.Insights)
	if err != nil {
		return nil, err
	}

	recomendacoes, err := normalizeJSONList(input.Recomendacoes)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao gerar ID do insight")
	}

	insight := &domain.CampaignInsight{
		ID:            id,
		Nome:          input.Nome,
		Periodo:       input.Periodo,
		Insights:      insights,
		Recomendacoes: recomendacoes,
		Conclusao:     input.Conclusao,
	}

	if err := s.campaignInsightRepo.Insert(insight); err != nil {
		return nil, pkgerrors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return insight, nil
}

// normalizeJSONList aceita o campo como array JSON ou como string contendo um
// array serializado, e devolve sempre o array serializado
func normalizeJSONList(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrMissingRequiredField
	}

	if trimmed[0] == '"' {
		var inner string
		if err := jsonDecoder.Unmarshal(trimmed, &inner); err != nil {
			return nil, ErrInvalidListPayload
		}
		trimmed = bytes.TrimSpace([]byte(inner))
	}

	var list []interface{}
	if err := jsonDecoder.Unmarshal(trimmed, &list); err != nil {
		return nil, ErrInvalidListPayload
	}

	return json.RawMessage(trimmed), nil
}
