package upstream

import (
	"context"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Get executa um GET e devolve a resposta somente quando o status é 2xx.
// O chamador é responsável por fechar o corpo.
func Get(ctx context.Context, client *http.Client, source Source, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Source: source, Err: err}
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		// Deadline e cancelamento continuam detectáveis com errors.Is
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &Error{Source: source, Err: ctxErr}
		}
		return nil, &Error{Source: source, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, &Error{
			Source:     source,
			StatusCode: resp.StatusCode,
			Details:    DecodeDetails(body),
		}
	}

	return resp, nil
}

// DecodeDetails devolve o corpo como JSON genérico quando possível, senão como texto
func DecodeDetails(body []byte) any {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil
	}

	var details any
	if err := json.Unmarshal(body, &details); err == nil {
		return details
	}

	return trimmed
}
