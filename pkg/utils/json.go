package utils

import (
	"encoding/json"
)

// PrettyJson formata qualquer valor como JSON indentado para logs de debug.
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}

	return string(buffer)
}
