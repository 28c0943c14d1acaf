// internal/orcamento/model.go
package orcamento

import (
	"time"

	"github.com/Arkyehub/Precifix-sub000/internal/cliente"
	"github.com/Arkyehub/Precifix-sub000/internal/models"
	"gorm.io/gorm"
)

// Orcamento é uma proposta de serviços para um cliente, opcionalmente
// agendada para uma data e hora.
type Orcamento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	UsuarioID uint            `gorm:"not null;index" json:"usuarioId"`
	ClienteID uint            `gorm:"not null;index;uniqueIndex:idx_agendamento,where:deleted_at IS NULL" json:"clienteId"`
	Cliente   cliente.Cliente `gorm:"foreignKey:ClienteID" json:"cliente"`

	// Agendamento: nil = sem data/hora definida. O índice único composto
	// segura sessões concorrentes; é parcial sobre deleted_at para um registro
	// com soft delete não bloquear o reagendamento do mesmo horário. A
	// verificação explícita na transação cobre o caso de hora nula (NULL não
	// colide com NULL no índice).
	DataServico *string `gorm:"size:10;uniqueIndex:idx_agendamento,where:deleted_at IS NULL" json:"dataServico"` // "2006-01-02"
	HoraServico *string `gorm:"size:5;uniqueIndex:idx_agendamento,where:deleted_at IS NULL" json:"horaServico"`  // "15:04"

	Status string `gorm:"size:50;not null;default:'Pendente';index" json:"status"`

	MargemLucro   float64 `gorm:"not null;default:0" json:"margemLucro"`
	CustosGlobais float64 `gorm:"not null;default:0" json:"custosGlobais"`
	// Valor fechado com o cliente; 0 enquanto só existe o preço sugerido
	ValorCobrado float64 `gorm:"not null;default:0" json:"valorCobrado"`

	MetodoPagamentoID *uint `json:"metodoPagamentoId"`
	NumeroParcelas    *int  `json:"numeroParcelas"`

	// Fotografia dos serviços orçados, persistida verbatim
	ResumoServicos []models.ResumoServico `gorm:"type:jsonb;serializer:json" json:"resumoServicos"`

	Observacoes string `json:"observacoes"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Orcamento{})
}
