package domain

import "time"

// Valores de contratandoAgora.
const (
	HiringYes = "Y"
	HiringNo  = "N"
)

// Company representa uma empresa com vagas remotas.
// @Description Empresa cadastrada.
type Company struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"nome" db:"name" example:"Remote Inc"`
	Description *string   `json:"descricao" db:"description"`
	Area        *string   `json:"area" db:"area" example:"Tecnologia"`
	HiringNow   string    `json:"contratandoAgora" db:"hiring_now" example:"Y"`
	LogoURL     *string   `json:"logoUrl" db:"logo_url"`
	Website     *string   `json:"website" db:"website"`
	CreatedAt   time.Time `json:"dataCriacao" db:"created_at"`
}

// CompanyRequest é o payload de criação e atualização de empresa.
type CompanyRequest struct {
	Name        string  `json:"nome" validate:"required,max=120" example:"Remote Inc"`
	Description *string `json:"descricao" validate:"omitempty,max=300"`
	Area        *string `json:"area" validate:"omitempty,max=60" example:"Tecnologia"`
	HiringNow   string  `json:"contratandoAgora" validate:"omitempty,oneof=Y N" example:"Y"`
	LogoURL     *string `json:"logoUrl" validate:"omitempty,max=300"`
	Website     *string `json:"website" validate:"omitempty,max=150"`
}

// CompanyFilter restringe a listagem de empresas.
type CompanyFilter struct {
	Area       string // substring, sem diferenciar maiúsculas
	HiringOnly bool
}
