package slug_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"lookdehoje/internal/slug"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Vestidos":                "vestidos",
		"  Look de Hoje  ":        "look-de-hoje",
		"Saia Midi Plissê":        "saia-midi-plisse",
		"Conjunto___Linho":        "conjuntolinho",
		"under_score peça":        "underscore-peca",
		"Acessórios & Bolsas":     "acessorios-bolsas",
		"--- Promoção!!! ---":     "promocao",
		"Ção É Ãgua":              "cao-e-agua",
		"":                        "",
		"!!!":                     "",
		"vestido-de-festa":        "vestido-de-festa",
		"Blusa   com    espaços":  "blusa-com-espacos",
		"UPPER lower MiXeD":       "upper-lower-mixed",
		"123 Números no nome 456": "123-numeros-no-nome-456",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), "input %q", in)
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"Vestidos de Festa", "Çäőü ñ", "a_b-c d", "🙂 emoji café", "123", "-_-",
	}
	for _, in := range inputs {
		once := slug.Make(in)
		assert.Equal(t, once, slug.Make(once), "input %q", in)
	}
}

func TestMakeCharset(t *testing.T) {
	ok := regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	inputs := []string{
		"Vestidos", "Peça Única", "  --weird--  input__ ", "ÁÉÍÓÚ àèìòù",
		"tabs\tand\nnewlines", "slash/back\\slash", "quote\"'quote",
	}
	for _, in := range inputs {
		got := slug.Make(in)
		if got == "" {
			continue
		}
		assert.Regexp(t, ok, got, "input %q", in)
	}
}
