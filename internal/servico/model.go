// internal/servico/model.go
package servico

import (
	"time"

	"github.com/Arkyehub/Precifix-sub000/internal/precificacao"
	"github.com/Arkyehub/Precifix-sub000/internal/produto"
	"gorm.io/gorm"
)

// Servico é um serviço do catálogo (lavagem, polimento, vitrificação...) com
// preço de tabela, custo de mão de obra e produtos vinculados.
type Servico struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UsuarioID uint           `gorm:"not null;index" json:"usuarioId"`
	Nome      string         `gorm:"size:255;not null" json:"nome"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Preco                 float64 `gorm:"not null;default:0" json:"preco"`
	CustoMaoDeObraPorHora float64 `gorm:"not null;default:0" json:"custoMaoDeObraPorHora"`
	TempoExecucaoMinutos  int     `gorm:"not null;default:0" json:"tempoExecucaoMinutos"`
	OutrosCustos          float64 `gorm:"not null;default:0" json:"outrosCustos"`

	// Vínculos com o catálogo de produtos (custeio por serviço)
	Produtos []produto.Produto `gorm:"many2many:servico_produtos;" json:"produtos"`
}

// ParaOrcado converte o serviço de catálogo no tipo do núcleo, sem nenhum
// ajuste aplicado.
func (s Servico) ParaOrcado() precificacao.ServicoOrcado {
	o := precificacao.ServicoOrcado{
		ID:                    s.ID,
		Nome:                  s.Nome,
		Preco:                 s.Preco,
		CustoMaoDeObraPorHora: s.CustoMaoDeObraPorHora,
		TempoExecucaoMinutos:  s.TempoExecucaoMinutos,
		OutrosCustos:          s.OutrosCustos,
	}
	for _, p := range s.Produtos {
		o.Produtos = append(o.Produtos, p.ParaCalculo())
	}
	return o
}

// Migrate cria a tabela no banco de dados e a tabela de vínculo
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Servico{})
}
