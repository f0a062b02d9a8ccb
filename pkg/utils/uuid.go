package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera identificadores curtos para registros de interação
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// GenerateSessionID usa o tamanho padrão do nanoid (21)
func GenerateSessionID() (string, error) {
	return gonanoid.New()
}
