package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarAlertaConflito dispara um webhook avisando que uma tentativa de
// agendamento colidiu com um horário já ocupado. Melhor esforço: sem URL
// configurada ou com falha de rede, só registra no log.
func EnviarAlertaConflito(clienteID uint, data string, hora *string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"mensagem":  "Alerta: tentativa de agendamento em horário já ocupado",
		"clienteId": clienteID,
		"data":      data,
	}
	if hora != nil {
		payload["hora"] = *hora
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
