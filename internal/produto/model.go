// internal/produto/model.go
package produto

import (
	"time"

	"github.com/Arkyehub/Precifix-sub000/internal/precificacao"
	"gorm.io/gorm"
)

// Produto é um item do catálogo de produtos químicos (shampoo, cera, APC...).
// Volumes em mililitros; FatorDiluicao segue a convenção "1:N" e só tem
// significado quando Tipo é "diluido".
type Produto struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UsuarioID uint           `gorm:"not null;index" json:"usuarioId"`
	Nome      string         `gorm:"size:255;not null" json:"nome"`
	Tipo      string         `gorm:"size:50;not null;default:'diluido'" json:"tipo"` // "diluido" | "pronto_uso"
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	PrecoGalao          float64 `gorm:"not null;default:0" json:"precoGalao"`
	VolumeGalaoML       float64 `gorm:"not null;default:0" json:"volumeGalaoMl"`
	FatorDiluicao       float64 `gorm:"not null;default:0" json:"fatorDiluicao"`
	ConsumoPorVeiculoML float64 `gorm:"not null;default:0" json:"consumoPorVeiculoMl"`
}

// ParaCalculo converte o registro no tipo consumido pelo núcleo de
// precificação.
func (p Produto) ParaCalculo() precificacao.ProdutoParaCalculo {
	return precificacao.ProdutoParaCalculo{
		ID:                  p.ID,
		Nome:                p.Nome,
		PrecoGalao:          p.PrecoGalao,
		VolumeGalaoML:       p.VolumeGalaoML,
		FatorDiluicao:       p.FatorDiluicao,
		ConsumoPorVeiculoML: p.ConsumoPorVeiculoML,
		Tipo:                p.Tipo,
	}
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Produto{})
}
