package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é o operador de estética automotiva dono da conta.
type Usuario struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome        string `gorm:"size:100;not null" json:"nome"`
	Sobrenome   string `gorm:"size:100" json:"sobrenome"`
	NomeEmpresa string `gorm:"size:255" json:"nomeEmpresa"`
	Email       string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Telefone    string `gorm:"size:20" json:"telefone"`
	Foto        string `gorm:"size:255" json:"foto"` // URL do avatar no storage externo
	Senha       string `gorm:"size:255;not null" json:"-"`
	IsAdmin     bool   `gorm:"default:false" json:"isAdmin"`

	// Valor da hora de mão de obra usado como padrão nos serviços novos
	CustoHoraPadrao float64 `gorm:"not null;default:0" json:"custoHoraPadrao"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
