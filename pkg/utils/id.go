package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Comprimento dos IDs públicos, compatível com as colunas VARCHAR(6)
const idLength = 6

// GenerateID gera o identificador curto usado por campanhas, leads,
// automações e relatórios
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
