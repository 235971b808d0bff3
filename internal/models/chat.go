package models

import "encoding/json"

// GenerateRequest is the payload sent to POST /generate.
type GenerateRequest struct {
	Prompt Prompt `json:"prompt"`
}

// Prompt accepts any JSON value for the "prompt" field. Falsy values (null, false, 0
// and "") decode to the empty prompt. Other strings are kept verbatim; remaining
// values keep their JSON text.
type Prompt string

func (p *Prompt) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case nil:
		*p = ""
	case string:
		*p = Prompt(val)
	case bool:
		*p = ""
		if val {
			*p = "true"
		}
	case float64:
		*p = ""
		if val != 0 {
			*p = Prompt(data)
		}
	default:
		*p = Prompt(data)
	}
	return nil
}

// GenerateResponse is the successful reply from the gateway.
type GenerateResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the failure body returned by the gateway.
type ErrorResponse struct {
	Error string `json:"error"`
}
