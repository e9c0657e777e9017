package domain

import "time"

// Status de leitura. Apenas StatusRead conta para o certificado.
const (
	StatusRead       = "LIDO"
	StatusInProgress = "EM_ANDAMENTO"
)

// UserPostRead registra a interação de um usuário com um post.
// @Description Registro de leitura de um post por um usuário.
type UserPostRead struct {
	ID     int64        `json:"id" example:"1"`
	UserID int64        `json:"idUsuario" example:"1"`
	PostID int64        `json:"idPost" example:"3"`
	Status string       `json:"status" example:"LIDO"`
	ReadAt time.Time    `json:"dataLeitura"`
	User   *UserSummary `json:"usuario,omitempty"`
	Post   *PostSummary `json:"post,omitempty"`
}

// UserSummary é a projeção do usuário usada nas listagens de leitura.
type UserSummary struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// PostSummary é a projeção do post usada nas listagens de leitura.
type PostSummary struct {
	Title string  `json:"titulo"`
	Tag   *string `json:"tag"`
}

// UserPostStatusRequest é o payload de atualização do status de leitura.
type UserPostStatusRequest struct {
	Status string `json:"status" validate:"required,max=20" example:"LIDO"`
}
