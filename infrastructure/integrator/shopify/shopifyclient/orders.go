package shopifyclient

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	shopifydomain "github.com/kayesami/roas-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/upstream"
	"github.com/kayesami/roas-dashboard-api/internal/config"
	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetOrders busca todas as páginas de pedidos do período, seguindo o
// header Link (rel="next") até a última página ou até o limite de páginas
func (c *ShopifyClient) GetOrders(ctx context.Context, store config.ShopifyStore, params shopifydomain.OrdersParams) ([]domain.Order, error) {
	endpoint, err := url.Parse(store.URL())
	if err != nil {
		return nil, &upstream.Error{Source: upstream.SourceShopify, Err: fmt.Errorf("erro ao analisar a URL base: %w", err)}
	}
	endpoint.Path = path.Join(endpoint.Path, "admin/api", store.APIVersion, "orders.json")

	query := endpoint.Query()
	query.Set("created_at_min", params.CreatedAtMin)
	query.Set("created_at_max", params.CreatedAtMax)
	query.Set("status", params.Status)
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	endpoint.RawQuery = query.Encode()

	headers := map[string]string{
		"X-Shopify-Access-Token": store.AccessToken,
		"Content-Type":           "application/json",
	}

	orders := make([]domain.Order, 0)
	next := endpoint.String()

	for page := 1; next != ""; page++ {
		if page > c.maxPages {
			logrus.WithFields(logrus.Fields{
				"store_domain": store.StoreDomain,
				"max_pages":    c.maxPages,
				"orders":       len(orders),
			}).Error("shopify: pagination limit exceeded")
			return nil, &upstream.PaginationError{Source: upstream.SourceShopify, MaxPages: c.maxPages}
		}

		resp, err := upstream.Get(ctx, c.httpClient, upstream.SourceShopify, next, headers)
		if err != nil {
			return nil, err
		}

		var response shopifydomain.OrdersResponse
		err = json.NewDecoder(resp.Body).Decode(&response)
		link := resp.Header.Get("Link")
		resp.Body.Close()
		if err != nil {
			return nil, &upstream.Error{Source: upstream.SourceShopify, Err: fmt.Errorf("erro ao decodificar a resposta: %w", err)}
		}

		orders = append(orders, response.Orders...)
		next = NextPageURL(link)

		logrus.WithFields(logrus.Fields{
			"store_domain": store.StoreDomain,
			"page":         page,
			"page_orders":  len(response.Orders),
			"has_next":     next != "",
		}).Debug("shopify: orders page fetched")
	}

	return orders, nil
}

// NextPageURL extrai a URL rel="next" de um header Link no formato
// <https://...page_info=abc>; rel="next", <https://...>; rel="previous"
func NextPageURL(header string) string {
	for _, part := range strings.Split(header, ",") {
		segments := strings.Split(part, ";")
		if len(segments) < 2 {
			continue
		}

		target := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}

		for _, param := range segments[1:] {
			param = strings.ReplaceAll(strings.TrimSpace(param), " ", "")
			if strings.EqualFold(param, `rel="next"`) || strings.EqualFold(param, "rel=next") {
				return strings.TrimSuffix(strings.TrimPrefix(target, "<"), ">")
			}
		}
	}

	return ""
}
