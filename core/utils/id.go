package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateOrderRef returns a short human-readable order reference
func GenerateOrderRef() string {
	ref, err := gonanoid.Generate("0123456789ABCDEFGHJKLMNPQRSTUVWXYZ", 8)
	if err != nil {
		return ""
	}
	return "PB-" + ref
}
