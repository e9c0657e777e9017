package domain

import "fmt"

// PostsForCertificate é a quantidade de posts lidos exigida para o certificado.
const PostsForCertificate = 10

// CertificateProgress é o resultado puro do cálculo de elegibilidade.
type CertificateProgress struct {
	ReadCount int
	Required  int
	Remaining int
	Eligible  bool
	Percent   float64
}

// Eligibility calcula a elegibilidade ao certificado a partir da quantidade de leituras.
// O percentual não é limitado a 100.
func Eligibility(readCount int) CertificateProgress {
	if readCount < 0 {
		readCount = 0
	}
	remaining := PostsForCertificate - readCount
	if remaining < 0 {
		remaining = 0
	}
	return CertificateProgress{
		ReadCount: readCount,
		Required:  PostsForCertificate,
		Remaining: remaining,
		Eligible:  readCount >= PostsForCertificate,
		Percent:   float64(readCount) * 100.0 / float64(PostsForCertificate),
	}
}

// ProgressReport é a resposta do endpoint de progresso de leitura.
// @Description Progresso do usuário rumo ao certificado.
type ProgressReport struct {
	UserID    int64   `json:"idUsuario" example:"1"`
	TotalRead int     `json:"totalPostsLidos" example:"4"`
	Required  int     `json:"postsNecessariosParaCertificado" example:"10"`
	Remaining int     `json:"postsFaltantes" example:"6"`
	Eligible  bool    `json:"elegivelParaCertificado" example:"false"`
	Percent   float64 `json:"percentualConcluido" example:"40"`
	Message   string  `json:"mensagem" example:"Continue lendo! Faltam apenas 6 posts para você gerar seu certificado."`
}

// NewProgressReport monta o relatório de progresso de um usuário.
func NewProgressReport(userID int64, readCount int) ProgressReport {
	p := Eligibility(readCount)
	msg := "Parabéns! Você já pode gerar seu certificado de conclusão!"
	if !p.Eligible {
		msg = fmt.Sprintf("Continue lendo! Faltam apenas %d posts para você gerar seu certificado.", p.Remaining)
	}
	return ProgressReport{
		UserID:    userID,
		TotalRead: p.ReadCount,
		Required:  p.Required,
		Remaining: p.Remaining,
		Eligible:  p.Eligible,
		Percent:   p.Percent,
		Message:   msg,
	}
}

// CertificateStatus é a resposta do endpoint de elegibilidade ao certificado.
type CertificateStatus struct {
	UserID   int64  `json:"idUsuario" example:"1"`
	Eligible bool   `json:"elegivelParaCertificado" example:"true"`
	Message  string `json:"mensagem" example:"Parabéns! Você está elegível para gerar seu certificado."`
}

// NewCertificateStatus monta a resposta de elegibilidade.
func NewCertificateStatus(userID int64, readCount int) CertificateStatus {
	p := Eligibility(readCount)
	msg := "Parabéns! Você está elegível para gerar seu certificado."
	if !p.Eligible {
		msg = "Você ainda não completou os requisitos para o certificado. Continue lendo!"
	}
	return CertificateStatus{UserID: userID, Eligible: p.Eligible, Message: msg}
}
