package domain

import "time"

// BlogPost representa um artigo do blog.
// @Description Post do blog.
type BlogPost struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Title       string    `json:"titulo" db:"title" example:"Como trabalhar remoto"`
	Description *string   `json:"descricao" db:"description"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	Tag         *string   `json:"tag" db:"tag" example:"carreira"`
	CreatedAt   time.Time `json:"dataCriacao" db:"created_at"`
}

// BlogPostRequest é o payload de criação e atualização de post.
type BlogPostRequest struct {
	Title       string  `json:"titulo" validate:"required,max=120" example:"Como trabalhar remoto"`
	Description *string `json:"descricao" validate:"omitempty,max=600"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=300"`
	Tag         *string `json:"tag" validate:"omitempty,max=50" example:"carreira"`
}

// BlogPostFilter restringe a listagem de posts.
type BlogPostFilter struct {
	Tag string // substring, sem diferenciar maiúsculas
}
