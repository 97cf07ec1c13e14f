package viacep

import (
	"bytes"
	"encoding/json"
)

// Address is a lookup result as returned by the API. Fields pass through
// verbatim; missing ones decode as empty strings.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

// envelope is the raw response: an address, or {"erro": true}.
// Older deployments send the flag as the string "true".
type envelope struct {
	Address
	Erro json.RawMessage `json:"erro,omitempty"`
}

func (e envelope) notFound() bool {
	raw := bytes.TrimSpace(e.Erro)
	if len(raw) == 0 {
		return false
	}
	switch string(raw) {
	case "false", `"false"`, "null":
		return false
	}
	return true
}
