// internal/pagamento/model.go
package pagamento

import (
	"time"

	"github.com/Arkyehub/Precifix-sub000/internal/precificacao"
	"gorm.io/gorm"
)

// MetodoPagamento é um método aceito pela conta, com taxa percentual base e,
// no crédito, faixas de taxa por número de parcelas.
type MetodoPagamento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UsuarioID uint           `gorm:"not null;index" json:"usuarioId"`
	Tipo      string         `gorm:"size:50;not null" json:"tipo"` // "dinheiro" | "pix" | "cartao_debito" | "cartao_credito"
	Taxa      float64        `gorm:"not null;default:0" json:"taxa"`
	Parcelas  []TaxaParcela  `gorm:"foreignKey:MetodoPagamentoID;constraint:OnDelete:CASCADE" json:"parcelas"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// TaxaParcela é a taxa de uma quantidade específica de parcelas no crédito.
type TaxaParcela struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	MetodoPagamentoID uint    `gorm:"not null;index" json:"metodoPagamentoId"`
	NumeroParcelas    int     `gorm:"not null" json:"numeroParcelas"`
	Taxa              float64 `gorm:"not null;default:0" json:"taxa"`
}

// ParaCalculo converte o registro persistido no tipo consumido pelo núcleo de
// precificação.
func (m MetodoPagamento) ParaCalculo() precificacao.MetodoPagamento {
	calc := precificacao.MetodoPagamento{Tipo: m.Tipo, Taxa: m.Taxa}
	for _, p := range m.Parcelas {
		calc.Parcelas = append(calc.Parcelas, precificacao.TaxaParcela{
			NumeroParcelas: p.NumeroParcelas,
			Taxa:           p.Taxa,
		})
	}
	return calc
}

// Migrate cria as tabelas no banco de dados e aplica relacionamentos
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MetodoPagamento{}, &TaxaParcela{})
}
