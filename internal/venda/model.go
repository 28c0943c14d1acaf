// internal/venda/model.go
package venda

import (
	"time"

	"github.com/Arkyehub/Precifix-sub000/internal/cliente"
	"github.com/Arkyehub/Precifix-sub000/internal/models"
	"github.com/Arkyehub/Precifix-sub000/internal/precificacao"
	"gorm.io/gorm"
)

// Venda é um serviço fechado: o que foi cobrado e quanto custou executar.
// Os custos são fotografados na conversão do orçamento (ou digitados na venda
// avulsa) para a análise retrospectiva não mudar quando o catálogo mudar.
type Venda struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	UsuarioID   uint            `gorm:"not null;index" json:"usuarioId"`
	ClienteID   uint            `gorm:"not null;index" json:"clienteId"`
	Cliente     cliente.Cliente `gorm:"foreignKey:ClienteID" json:"cliente"`
	OrcamentoID *uint           `gorm:"index" json:"orcamentoId"` // nil em venda avulsa

	DataServico *string `gorm:"size:10" json:"dataServico"`
	HoraServico *string `gorm:"size:5" json:"horaServico"`
	Status      string  `gorm:"size:50;not null;default:'Concluído'" json:"status"`

	ValorCobrado   float64 `gorm:"not null;default:0" json:"valorCobrado"`
	CustoProdutos  float64 `gorm:"not null;default:0" json:"custoProdutos"`
	CustoMaoDeObra float64 `gorm:"not null;default:0" json:"custoMaoDeObra"`
	OutrosCustos   float64 `gorm:"not null;default:0" json:"outrosCustos"`

	ComissaoValor float64 `gorm:"not null;default:0" json:"comissaoValor"`
	ComissaoTipo  string  `gorm:"size:20;not null;default:'valor'" json:"comissaoTipo"` // "valor" | "percentual"

	MetodoPagamentoID *uint `json:"metodoPagamentoId"`
	NumeroParcelas    *int  `json:"numeroParcelas"`

	ResumoServicos []models.ResumoServico `gorm:"type:jsonb;serializer:json" json:"resumoServicos"`
}

// Comissao devolve a configuração de comissão no tipo do núcleo.
func (v Venda) Comissao() precificacao.Comissao {
	return precificacao.Comissao{Valor: v.ComissaoValor, Tipo: v.ComissaoTipo}
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Venda{})
}
