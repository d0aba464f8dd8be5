package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos ao dashboard
const (
	// Erros de validação
	ErrInvalidStore     = "VAL_001" // Loja desconhecida
	ErrInvalidDateRange = "VAL_002" // Datas ausentes, mal formatadas ou invertidas
	ErrInvalidRequest   = "VAL_003" // Requisição inválida
	ErrNotFound         = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed = "VAL_005" // Método não suportado na rota

	// Erros de serviços externos
	ErrUpstream                = "UPS_001" // Falha na Shopify ou na Meta
	ErrPaginationLimitExceeded = "UPS_002" // Upstream não terminou a paginação dentro do limite
	ErrUpstreamTimeout         = "UPS_003" // Upstream não respondeu dentro do tempo

	// Erros do servidor
	ErrInternalServer = "SRV_001"
)

var httpStatusMap = map[string]int{
	ErrInvalidStore:            http.StatusBadRequest,
	ErrInvalidDateRange:        http.StatusBadRequest,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrNotFound:                http.StatusNotFound,
	ErrMethodNotAllowed:        http.StatusMethodNotAllowed,
	ErrUpstream:                http.StatusInternalServerError,
	ErrPaginationLimitExceeded: http.StatusBadGateway,
	ErrUpstreamTimeout:         http.StatusGatewayTimeout,
	ErrInternalServer:          http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Error   string `json:"error"`             // Mensagem para o banner do dashboard
	Code    string `json:"code"`              // Código de erro para o cliente
	Details any    `json:"details,omitempty"` // Detalhes vindos do upstream, quando houver
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Error:   message,
		Code:    code,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
