// internal/custooperacional/model.go
package custooperacional

import (
	"time"

	"gorm.io/gorm"
)

// NomeProdutosGastosNoMes é o lançamento especial que ativa o custeio por
// média mensal: enquanto ele existir, os custos de produto por serviço são
// substituídos por esse valor fixo.
const NomeProdutosGastosNoMes = "Produtos Gastos no Mês"

// CustoOperacional é um gasto fixo da operação (aluguel, água, energia...).
type CustoOperacional struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UsuarioID uint           `gorm:"not null;index" json:"usuarioId"`
	Nome      string         `gorm:"size:255;not null" json:"nome"`
	Valor     float64        `gorm:"not null;default:0" json:"valor"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CustoOperacional{})
}
