// models/status.go
package models

// Convenção de status textual para orçamentos e vendas
const (
	StatusPendente   = "Pendente"
	StatusAprovado   = "Aprovado"
	StatusRecusado   = "Recusado"
	StatusConvertido = "Convertido"
	StatusConcluido  = "Concluído"
)
