package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRunID gera um id curto para identificar uma execução agendada nos logs
func GenerateRunID() string {
	id, err := gonanoid.Generate(idAlphabet, 8)
	if err != nil {
		return "unknown"
	}

	return id
}
