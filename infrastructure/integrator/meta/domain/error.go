package metadomain

import "github.com/mitchellh/mapstructure"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
	ErrorData    any    `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado ou invalidado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 é "access token inválido"; 460, 463 e 467 são os subcódigos de sessão
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsRateLimited cobre os limites de chamadas da Marketing API
func (e *ErrorResponse) IsRateLimited() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613, 80000, 80004:
		return true
	}
	return false
}

// ParseErrorDetails tenta ler o corpo de erro já decodificado como ErrorResponse
func ParseErrorDetails(details any) (*ErrorResponse, bool) {
	body, ok := details.(map[string]any)
	if !ok {
		return nil, false
	}

	if _, ok := body["error"].(map[string]any); !ok {
		return nil, false
	}

	resp := &ErrorResponse{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           resp,
	})
	if err != nil {
		return nil, false
	}

	if err := decoder.Decode(body); err != nil {
		return nil, false
	}

	return resp, true
}
