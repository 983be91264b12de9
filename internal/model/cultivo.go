// /internal/model/cultivo.go
package model

import "time"

// Tipos de usuário aceitos no login (valor do campo user_type do formulário).
const (
	TipoAgricultor = "farmer"
	TipoComprador  = "buyer"
)

// Cultivo representa um anúncio de produto na feira, pertencente a
// exatamente um Agricultor.
//
// Quantidade e Preco são texto livre de propósito: o agricultor escreve
// "50 kg", "R$ 3,00/kg" etc. Não converter para numérico.
type Cultivo struct {
	ID           uint       `gorm:"primaryKey"`
	AgricultorID uint       `gorm:"not null"`
	Agricultor   Agricultor `gorm:"foreignKey:AgricultorID"`
	Nome         string     `gorm:"not null"`
	Quantidade   string     `gorm:"not null"`
	Preco        string     `gorm:"not null"`
	Descricao    string     `gorm:"type:text"`
	CreatedAt    time.Time
}

func (Cultivo) TableName() string {
	return "cultivos"
}
