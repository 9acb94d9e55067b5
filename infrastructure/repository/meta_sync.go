package repository

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
)

const performanceTable = "ads_performance_daily"

// performanceConflictTarget canoniza dimensões opcionais com COALESCE para que
// linhas que diferem apenas pela ausência de um breakdown não colidam. Exige o
// índice único por expressão criado pelo script de migração.
const performanceConflictTarget = `date_start, account_id, COALESCE(campaign_id, ''), COALESCE(ad_set_id, ''), COALESCE(ad_id, ''), ` +
	`COALESCE(age_range, ''), COALESCE(gender, ''), COALESCE(platform, ''), COALESCE(placement, ''), ` +
	`COALESCE(device_platform, ''), COALESCE(country_code, ''), COALESCE(region, '')`

// Nomes de colunas de métricas chegam no payload e entram na query como
// identificadores, então são restritos a snake_case simples.
var validColumnName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// MetaSyncRepository aplica os upserts das entidades sincronizadas via webhook.
// Todos os métodos recebem o Queryer explicitamente para rodarem dentro da
// transação do lote.
type MetaSyncRepository interface {
	UpsertAccount(q postgres.Queryer, record *domain.AccountRecord) error
	UpsertCampaign(q postgres.Queryer, record *domain.CampaignRecord) error
	UpsertAdSet(q postgres.Queryer, record *domain.AdSetRecord) error
	UpsertAd(q postgres.Queryer, record *domain.AdRecord) error
	UpsertPerformance(q postgres.Queryer, record domain.PerformanceRecord) error
}

type metaSyncRepository struct{}

func NewMetaSyncRepository() MetaSyncRepository {
	return &metaSyncRepository{}
}

func (r *metaSyncRepository) UpsertAccount(q postgres.Queryer, record *domain.AccountRecord) error {
	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("account_id", "account_name", "status", "currency", "timezone", "updated_at").
		Values(
			record.AccountID,
			record.AccountName,
			record.Status,
			record.Currency,
			record.Timezone,
			squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (account_id) DO UPDATE SET
				account_name = EXCLUDED.account_name,
				status = EXCLUDED.status,
				currency = EXCLUDED.currency,
				timezone = EXCLUDED.timezone,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(q, query)
}

func (r *metaSyncRepository) UpsertCampaign(q postgres.Queryer, record *domain.CampaignRecord) error {
	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns(
			"campaign_id", "account_id", "campaign_name", "status", "objective",
			"buying_type", "start_time", "stop_time", "budget_remaining",
			"daily_budget", "lifetime_budget", "updated_at",
		).
		Values(
			record.CampaignID,
			record.AccountID,
			record.CampaignName,
			record.Status,
			record.Objective,
			record.BuyingType,
			record.StartTime,
			record.StopTime,
			record.BudgetRemaining,
			record.DailyBudget,
			record.LifetimeBudget,
			squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (campaign_id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				campaign_name = EXCLUDED.campaign_name,
				status = EXCLUDED.status,
				objective = EXCLUDED.objective,
				buying_type = EXCLUDED.buying_type,
				start_time = EXCLUDED.start_time,
				stop_time = EXCLUDED.stop_time,
				budget_remaining = EXCLUDED.budget_remaining,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(q, query)
}

func (r *metaSyncRepository) UpsertAdSet(q postgres.Queryer, record *domain.AdSetRecord) error {
	// Targeting é opaco: persiste o documento como chegou, ou {} quando ausente
	targeting := "{}"
	if len(record.Targeting) > 0 {
		targeting = string(record.Targeting)
	}

	query := squirrel.StatementBuilder.
		Insert("ad_sets").
		Columns(
			"ad_set_id", "campaign_id", "ad_set_name", "status", "bid_strategy",
			"daily_budget", "lifetime_budget", "targeting", "optimization_goal", "updated_at",
		).
		Values(
			record.AdSetID,
			record.CampaignID,
			record.AdSetName,
			record.Status,
			record.BidStrategy,
			record.DailyBudget,
			record.LifetimeBudget,
			targeting,
			record.OptimizationGoal,
			squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (ad_set_id) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				ad_set_name = EXCLUDED.ad_set_name,
				status = EXCLUDED.status,
				bid_strategy = EXCLUDED.bid_strategy,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				targeting = EXCLUDED.targeting,
				optimization_goal = EXCLUDED.optimization_goal,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(q, query)
}

func (r *metaSyncRepository) UpsertAd(q postgres.Queryer, record *domain.AdRecord) error {
	query := squirrel.StatementBuilder.
		Insert("ads").
		Columns("ad_id", "ad_set_id", "ad_name", "status", "creative_id", "preview_url", "updated_at").
		Values(
			record.AdID,
			record.AdSetID,
			record.AdName,
			record.Status,
			record.CreativeID,
			record.PreviewURL,
			squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (ad_id) DO UPDATE SET
				ad_set_id = EXCLUDED.ad_set_id,
				ad_name = EXCLUDED.ad_name,
				status = EXCLUDED.status,
				creative_id = EXCLUDED.creative_id,
				preview_url = EXCLUDED.preview_url,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(q, query)
}

// UpsertPerformance monta o insert dinamicamente a partir dos campos presentes
// no registro: colunas ausentes não são tocadas na linha existente. Os campos
// são ordenados para que o SQL gerado seja determinístico.
func (r *metaSyncRepository) UpsertPerformance(q postgres.Queryer, record domain.PerformanceRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	fields := make([]string, 0, len(record))
	for field := range record {
		if field == "id" {
			continue
		}
		if !validColumnName.MatchString(field) {
			return fmt.Errorf("nome de coluna inválido no registro de performance: %q", field)
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)

	columns := make([]string, 0, len(fields)+1)
	values := make([]interface{}, 0, len(fields)+1)
	updateSets := make([]string, 0, len(fields)+1)

	for _, field := range fields {
		columns = append(columns, field)
		values = append(values, record[field])

		// Colunas da chave de conflito não entram no DO UPDATE SET
		if !domain.IsConflictColumn(field) {
			updateSets = append(updateSets, fmt.Sprintf("%s = EXCLUDED.%s", field, field))
		}
	}

	columns = append(columns, "last_fetched_time")
	values = append(values, squirrel.Expr("NOW()"))
	updateSets = append(updateSets, "last_fetched_time = NOW()")

	query := squirrel.StatementBuilder.
		Insert(performanceTable).
		Columns(columns...).
		Values(values...).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%s) DO UPDATE SET %s",
			performanceConflictTarget,
			strings.Join(updateSets, ", "),
		)).
		PlaceholderFormat(squirrel.Dollar)

	return r.exec(q, query)
}

func (r *metaSyncRepository) exec(q postgres.Queryer, query squirrel.InsertBuilder) error {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = q.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
