package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	metadomain "github.com/kayesami/roas-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/upstream"
	"github.com/kayesami/roas-dashboard-api/internal/config"
	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type timeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// AccountPath garante o prefixo act_ exigido pela Graph API
func AccountPath(accountID string) string {
	accountID = strings.TrimSpace(accountID)
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}

// GetDailyInsights busca o gasto diário da conta, seguindo paging.next até
// a última página ou até o limite de páginas
func (c *MetaClient) GetDailyInsights(ctx context.Context, account config.MetaAccount, params metadomain.InsightsParams) ([]domain.InsightRecord, error) {
	rangeJSON, err := json.Marshal(timeRange{Since: params.Since, Until: params.Until})
	if err != nil {
		return nil, &upstream.Error{Source: upstream.SourceMeta, Err: err}
	}

	query := url.Values{}
	query.Set("fields", params.Fields)
	query.Set("time_range", string(rangeJSON))
	if params.TimeIncrement > 0 {
		query.Set("time_increment", strconv.Itoa(params.TimeIncrement))
	}
	query.Set("access_token", account.AccessToken)

	next := fmt.Sprintf("%s/%s/insights?%s", account.URL(), AccountPath(account.AccountID), query.Encode())
	records := make([]domain.InsightRecord, 0)

	for page := 1; next != ""; page++ {
		if page > c.maxPages {
			logrus.WithFields(logrus.Fields{
				"account_id": account.AccountID,
				"max_pages":  c.maxPages,
				"records":    len(records),
			}).Error("meta: pagination limit exceeded")
			return nil, &upstream.PaginationError{Source: upstream.SourceMeta, MaxPages: c.maxPages}
		}

		resp, err := upstream.Get(ctx, c.httpClient, upstream.SourceMeta, next, nil)
		if err != nil {
			logUpstreamError(account, err)
			return nil, err
		}

		var response metadomain.InsightsResponse
		err = json.NewDecoder(resp.Body).Decode(&response)
		resp.Body.Close()
		if err != nil {
			return nil, &upstream.Error{Source: upstream.SourceMeta, Err: fmt.Errorf("erro ao decodificar a resposta: %w", err)}
		}

		records = append(records, response.Data...)
		next = response.NextPage()

		logrus.WithFields(logrus.Fields{
			"account_id":   account.AccountID,
			"page":         page,
			"page_records": len(response.Data),
			"has_next":     next != "",
		}).Debug("meta: insights page fetched")
	}

	return records, nil
}

func logUpstreamError(account config.MetaAccount, err error) {
	var upstreamErr *upstream.Error
	if !errors.As(err, &upstreamErr) || upstreamErr.StatusCode == 0 {
		return
	}

	metaErr, ok := metadomain.ParseErrorDetails(upstreamErr.Details)
	if !ok {
		return
	}

	entry := logrus.WithFields(logrus.Fields{
		"account_id":    account.AccountID,
		"upstream_code": metaErr.Error.Code,
		"fbtrace_id":    metaErr.Error.FBTraceID,
	})

	switch {
	case metaErr.IsTokenExpired():
		entry.Warn("meta: access token expired or invalidated, renew the store token")
	case metaErr.IsRateLimited():
		entry.Warn("meta: rate limit reached")
	default:
		entry.WithField("upstream_message", metaErr.Error.Message).Debug("meta: request rejected")
	}
}
